// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"
)

const ruleWidth = 60

// LogAnalysisHeader prints the banner shown before a pipeline run.
func LogAnalysisHeader(cfg *contract.Config) {
	writeAnalysisHeader(os.Stdout, cfg)
}

func writeAnalysisHeader(w io.Writer, cfg *contract.Config) {
	title := "Generating Nuvidya Chakra-AI Mathematical Analysis..."
	if cfg.UseEmojis {
		title = "🧘‍♀️ " + title
	}
	step := (cfg.End - cfg.Start) / float64(cfg.Samples-1)
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	_, _ = fmt.Fprintf(w, "Domain: %d samples over [%g, %g] (dt = %.5f)\n", cfg.Samples, cfg.Start, cfg.End, step)
}

// LogProgress prints one stage message, prefixed with its icon when emojis are on.
func LogProgress(cfg *contract.Config, icon, msg string) {
	writeProgress(os.Stdout, cfg, icon, msg)
}

func writeProgress(w io.Writer, cfg *contract.Config, icon, msg string) {
	if cfg.UseEmojis && icon != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", icon, msg)
		return
	}
	_, _ = fmt.Fprintln(w, msg)
}

// LogCompletion lists the written charts and the closing line.
func LogCompletion(cfg *contract.Config, artifacts []schema.ChartArtifact) {
	writeCompletion(os.Stdout, cfg, artifacts)
}

func writeCompletion(w io.Writer, cfg *contract.Config, artifacts []schema.ChartArtifact) {
	for _, a := range artifacts {
		prefix := "  -"
		if cfg.UseEmojis {
			prefix = "  🖼️ "
		}
		_, _ = fmt.Fprintf(w, "%s %s (%s)\n", prefix, a.Path, formatBytes(a.Bytes))
	}
	done := fmt.Sprintf("Analysis complete! Check %s/ for generated plots.", filepath.ToSlash(filepath.Clean(cfg.OutputDir)))
	if cfg.UseEmojis {
		done = "✅ " + done
	}
	_, _ = fmt.Fprintln(w, done)
}

// formatBytes renders a file size with a binary unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
