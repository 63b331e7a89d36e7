package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/schema"
)

// dominantCount is how many signals are reported as dominant.
const dominantCount = 2

// presets are the named influence allocations, in display order.
var presets = []schema.Preset{
	{
		Key:         "balanced",
		Name:        "Balanced",
		Description: "Harmonious balance across all core agents",
		Weights:     []float64{0.14, 0.14, 0.14, 0.16, 0.14, 0.14, 0.14},
	},
	{
		Key:         "grounded",
		Name:        "Grounded",
		Description: "Practical, stability-centered approach",
		Weights:     []float64{0.30, 0.20, 0.15, 0.10, 0.10, 0.10, 0.05},
	},
	{
		Key:         "creative",
		Name:        "Creative",
		Description: "Flowing, innovative, and expressive",
		Weights:     []float64{0.10, 0.30, 0.20, 0.15, 0.15, 0.10, 0.00},
	},
	{
		Key:         "wise",
		Name:        "Wise",
		Description: "Intuitive, insightful, and transcendent",
		Weights:     []float64{0.05, 0.05, 0.10, 0.15, 0.15, 0.25, 0.25},
	},
	{
		Key:         "compassionate",
		Name:        "Compassionate",
		Description: "Empathetic, loving, and communicative",
		Weights:     []float64{0.10, 0.10, 0.10, 0.40, 0.20, 0.05, 0.05},
	},
	{
		Key:         "decisive",
		Name:        "Decisive",
		Description: "Confident, action-oriented, and powerful",
		Weights:     []float64{0.20, 0.15, 0.35, 0.10, 0.10, 0.05, 0.05},
	},
}

// Presets returns a copy of every named preset.
func Presets() []schema.Preset {
	out := make([]schema.Preset, len(presets))
	for i, p := range presets {
		p.Weights = append([]float64(nil), p.Weights...)
		out[i] = p
	}
	return out
}

// LookupPreset finds a preset by key or display name, case-insensitively.
func LookupPreset(key string) (schema.Preset, error) {
	key = strings.TrimSpace(key)
	for _, p := range Presets() {
		if strings.EqualFold(p.Key, key) || strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return schema.Preset{}, fmt.Errorf("unknown preset %q", key)
}

// BalanceOf measures how close an influence vector is to the uniform 1/7 allocation.
// The vector resonates when its variance against uniform is below algo.ResonanceThreshold.
// The two largest entries are dominant; ties keep signal order.
func BalanceOf(influences []float64) schema.Balance {
	variance := algo.UniformVariance(influences)
	var dominant []schema.SignalName
	for _, i := range algo.TopIndices(influences, dominantCount) {
		if i < len(schema.AllSignals) {
			dominant = append(dominant, schema.AllSignals[i])
		}
	}
	return schema.Balance{
		Variance:   variance,
		Resonating: variance < algo.ResonanceThreshold,
		Dominant:   dominant,
	}
}

// PresetReports evaluates the balance of every preset after normalization.
func PresetReports() ([]schema.PresetReport, error) {
	var reports []schema.PresetReport
	for _, p := range Presets() {
		normalized, err := algo.Normalize(p.Weights)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Key, err)
		}
		reports = append(reports, schema.PresetReport{Preset: p, Balance: BalanceOf(normalized)})
	}
	return reports, nil
}
