package schema

import (
	"fmt"
	"strings"
)

// DisplayNames returns the display name of every signal in fixed order.
func DisplayNames() []string {
	names := make([]string, len(AllSignals))
	for i, s := range AllSignals {
		names[i] = MustInfo(s).Display
	}
	return names
}

// FormatPercent renders a fraction in [0,1] as a percentage with the given precision.
func FormatPercent(fraction float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, fraction*100)
}

// FormatDominant renders dominant signals as "Heart (Harmony): 31%, Solar (Drive): 22%".
func FormatDominant(dominant []SignalName, results []SignalResult) string {
	byName := make(map[SignalName]float64, len(results))
	for _, r := range results {
		byName[r.Name] = r.Influence
	}
	parts := make([]string, 0, len(dominant))
	for _, name := range dominant {
		info := MustInfo(name)
		parts = append(parts, fmt.Sprintf("%s (%s): %s", info.Display, info.Role, FormatPercent(byName[name], 0)))
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}
