package outwriter

import (
	"os"

	"github.com/huangsam/chakra/internal/contract"
	"golang.org/x/term"
)

// terminalWidth returns the configured override, the detected terminal width
// or a conservative fallback for pipes and CI.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80
	}
	return detected
}

// getMaxShareBarWidth sizes the influence bar column of the summary table
// from whatever the fixed columns leave over.
func getMaxShareBarWidth(cfg *contract.Config) int {
	// Chakra + Influence + W_k + Level with borders and padding
	baseWidth := 60
	available := terminalWidth(cfg) - baseWidth
	if available < 5 {
		return 5
	}
	if available > 30 {
		return 30
	}
	return available
}
