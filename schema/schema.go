// Package schema has models and shared constants for all parts of chakra.
package schema

// Domain describes the sampled time interval of an analysis.
type Domain struct {
	Samples int     `json:"samples"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Step    float64 `json:"step"`
}

// SignalResult is the per-signal outcome of weight derivation.
type SignalResult struct {
	Name      SignalName     `json:"name"`
	Display   string         `json:"display"`
	Weight    float64        `json:"weight"`    // integral of |E_k(t)| over the domain
	Influence float64        `json:"influence"` // weight over the total weight
	Level     InfluenceLevel `json:"level"`
}

// Balance describes how far an influence vector is from a uniform allocation.
type Balance struct {
	Variance   float64      `json:"variance"`
	Resonating bool         `json:"resonating"`
	Dominant   []SignalName `json:"dominant"`
}

// AnalysisResult is the serializable outcome of one analysis pass.
type AnalysisResult struct {
	Domain      Domain         `json:"domain"`
	Signals     []SignalResult `json:"signals"`
	TotalWeight float64        `json:"total_weight"`
	Balance     Balance        `json:"balance"`
}

// Influences returns the influence vector in signal order.
func (r *AnalysisResult) Influences() []float64 {
	out := make([]float64, len(r.Signals))
	for i, s := range r.Signals {
		out[i] = s.Influence
	}
	return out
}

// SignalSeries is one signal's raw samples, used by exports and the MCP server.
type SignalSeries struct {
	Name   SignalName `json:"name"`
	Time   []float64  `json:"time"`
	Values []float64  `json:"values"`
}

// Preset is a named influence allocation.
type Preset struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Weights     []float64 `json:"weights"`
}

// PresetReport pairs a preset with its balance metrics.
type PresetReport struct {
	Preset
	Balance Balance `json:"balance"`
}

// ChartArtifact records a rendered chart file.
type ChartArtifact struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// DecisionFlow holds the illustrative reasoning curves f_k(x), their weighted
// contributions alpha_k * f_k(x) and the combined output.
type DecisionFlow struct {
	X             []float64   `json:"x"`
	Functions     [][]float64 `json:"functions"`
	Contributions [][]float64 `json:"contributions"`
	Output        []float64   `json:"output"`
}
