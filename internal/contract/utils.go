package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/chakra/schema"
)

// Influence band thresholds. A uniform allocation puts every signal at 1/7.
const (
	DominantThreshold = 0.25
	StrongThreshold   = 1.0 / schema.SignalCount
	ModerateThreshold = 0.07
)

// Color variables for console output.
var (
	DominantColor = color.New(color.FgRed, color.Bold)     // DominantColor marks a signal that outweighs the rest.
	StrongColor   = color.New(color.FgMagenta, color.Bold) // StrongColor marks an above-uniform share.
	ModerateColor = color.New(color.FgYellow)              // ModerateColor marks a below-uniform but visible share.
	FaintColor    = color.New(color.FgCyan)                // FaintColor marks a barely contributing signal.
)

// GetInfluenceLevel returns the band an influence fraction falls into.
// This is the core logic used for CSV, JSON, and table printing.
func GetInfluenceLevel(influence float64) schema.InfluenceLevel {
	switch {
	case influence >= DominantThreshold:
		return schema.DominantLevel
	case influence >= StrongThreshold:
		return schema.StrongLevel
	case influence >= ModerateThreshold:
		return schema.ModerateLevel
	default:
		return schema.FaintLevel
	}
}

// GetPlainLabel returns a plain text label for the influence band.
func GetPlainLabel(influence float64) string {
	return string(GetInfluenceLevel(influence))
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetInfluenceLevel to determine the string, and then applies the appropriate color.
func GetColorLabel(influence float64) string {
	level := GetInfluenceLevel(influence)
	text := string(level)

	switch level {
	case schema.DominantLevel:
		return DominantColor.Sprint(text)
	case schema.StrongLevel:
		return StrongColor.Sprint(text)
	case schema.ModerateLevel:
		return ModerateColor.Sprint(text)
	default:
		return FaintColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetAnalysisDBFilePath returns the path to the SQLite DB file for run history.
func GetAnalysisDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".chakra_history.db"
	}
	return filepath.Join(homeDir, ".chakra_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
