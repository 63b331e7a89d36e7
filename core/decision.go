package core

import (
	"fmt"
	"math"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/schema"
)

// Input range of the illustrative reasoning functions.
const (
	decisionMin     = -5.0
	decisionMax     = 5.0
	decisionSamples = 100
)

// reasoningFuncs are fixed example curves, one per signal in display order.
// They are not derived from the computed signals.
var reasoningFuncs = []func(x float64) float64{
	// Root: stable, saturating
	math.Tanh,
	// Sacral: flowing
	func(x float64) float64 { return math.Sin(2*x) * math.Exp(-x*x/10) },
	// Solar: decisive
	func(x float64) float64 { return sign(x) * math.Pow(math.Abs(x), 0.7) },
	// Heart: bell-shaped
	func(x float64) float64 { return x * math.Exp(-x*x/8) },
	// Throat: direct
	func(x float64) float64 { return x },
	// Third Eye: oscillating
	func(x float64) float64 { return math.Cos(x) * math.Exp(-math.Abs(x)/3) },
	// Crown: constant
	func(float64) float64 { return 0.5 },
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ReasoningFunctions evaluates every reasoning curve over x.
func ReasoningFunctions(x []float64) [][]float64 {
	out := make([][]float64, len(reasoningFuncs))
	for i, fn := range reasoningFuncs {
		out[i] = algo.Map(x, fn)
	}
	return out
}

// NewDecisionFlow weights each reasoning curve by its influence and sums them.
func NewDecisionFlow(influences []float64) (schema.DecisionFlow, error) {
	if len(influences) != len(reasoningFuncs) {
		return schema.DecisionFlow{}, fmt.Errorf("expected %d influences, got %d", len(reasoningFuncs), len(influences))
	}
	x := algo.Linspace(decisionMin, decisionMax, decisionSamples)
	funcs := ReasoningFunctions(x)
	contributions := make([][]float64, len(funcs))
	output := make([]float64, len(x))
	for i, f := range funcs {
		contributions[i] = algo.Scale(f, influences[i])
		output = algo.Add(output, contributions[i])
	}
	return schema.DecisionFlow{X: x, Functions: funcs, Contributions: contributions, Output: output}, nil
}

// CumulativeEnergy returns the running integral cumsum(|E_k|)*dt of every signal in display order.
func (a *Analyzer) CumulativeEnergy() ([][]float64, error) {
	if a.signals == nil {
		return nil, fmt.Errorf("%w: activations", ErrNotComputed)
	}
	out := make([][]float64, len(schema.AllSignals))
	for i, name := range schema.AllSignals {
		out[i] = algo.CumSum(algo.Abs(a.signals[name]), a.dt)
	}
	return out, nil
}
