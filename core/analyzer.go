package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"
)

// ErrNotComputed is returned when a later stage is requested before an earlier one ran.
var ErrNotComputed = errors.New("analysis stage has not run")

// Analyzer is one analysis session. It owns the time vector, the signals,
// the weights and the influences. It is not safe for concurrent use.
type Analyzer struct {
	domain TimeDomain
	t      []float64
	dt     float64
	rules  []signalRule

	signals    map[schema.SignalName][]float64
	weights    []float64 // schema.AllSignals order
	influences []float64
}

// NewAnalyzer validates the domain and resolves the signal evaluation order.
func NewAnalyzer(domain TimeDomain) (*Analyzer, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	rules, err := topoOrder(signalRules())
	if err != nil {
		return nil, err
	}
	t := domain.Vector()
	return &Analyzer{
		domain: domain,
		t:      t,
		dt:     t[1] - t[0],
		rules:  rules,
	}, nil
}

// Domain returns the sampled interval.
func (a *Analyzer) Domain() TimeDomain {
	return a.domain
}

// Time returns a copy of the time vector.
func (a *Analyzer) Time() []float64 {
	return slices.Clone(a.t)
}

// Step returns the sample spacing used by cumulative sums, gradients and convolution.
func (a *Analyzer) Step() float64 {
	return a.dt
}

// EvaluationOrder returns the order in which signals are computed.
func (a *Analyzer) EvaluationOrder() []schema.SignalName {
	order := make([]schema.SignalName, len(a.rules))
	for i, r := range a.rules {
		order[i] = r.name
	}
	return order
}

// ComputeActivations evaluates every signal rule in dependency order.
// Calling it again is a no-op.
func (a *Analyzer) ComputeActivations() error {
	if a.signals != nil {
		return nil
	}
	env := &evalEnv{t: a.t, dt: a.dt, signals: make(map[schema.SignalName][]float64, len(a.rules))}
	for _, r := range a.rules {
		values := r.eval(env)
		if len(values) != len(a.t) {
			return fmt.Errorf("signal %s has %d samples, expected %d", r.name, len(values), len(a.t))
		}
		env.signals[r.name] = values
	}
	a.signals = env.signals
	return nil
}

// ComputeWeights integrates |E_k| over the domain and normalizes the weights into influences.
// It returns algo.ErrDegenerateWeights when the total weight is zero or not finite.
func (a *Analyzer) ComputeWeights() error {
	if a.signals == nil {
		return fmt.Errorf("%w: activations", ErrNotComputed)
	}
	if a.influences != nil {
		return nil
	}
	weights := make([]float64, len(schema.AllSignals))
	for i, name := range schema.AllSignals {
		weights[i] = algo.Trapz(algo.Abs(a.signals[name]), a.t)
	}
	influences, err := algo.Normalize(weights)
	if err != nil {
		return err
	}
	a.weights = weights
	a.influences = influences
	return nil
}

// Run performs signal generation and weight derivation and returns the result.
func (a *Analyzer) Run() (*schema.AnalysisResult, error) {
	if err := a.ComputeActivations(); err != nil {
		return nil, err
	}
	if err := a.ComputeWeights(); err != nil {
		return nil, err
	}
	return a.Result()
}

// Signal returns a copy of one computed signal.
func (a *Analyzer) Signal(name schema.SignalName) ([]float64, bool) {
	values, ok := a.signals[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// Series returns every computed signal with its time vector, in display order.
func (a *Analyzer) Series() ([]schema.SignalSeries, error) {
	if a.signals == nil {
		return nil, fmt.Errorf("%w: activations", ErrNotComputed)
	}
	series := make([]schema.SignalSeries, len(schema.AllSignals))
	for i, name := range schema.AllSignals {
		series[i] = schema.SignalSeries{Name: name, Time: slices.Clone(a.t), Values: slices.Clone(a.signals[name])}
	}
	return series, nil
}

// Weights returns a copy of the raw weights in display order.
func (a *Analyzer) Weights() []float64 {
	return slices.Clone(a.weights)
}

// Influences returns a copy of the influences in display order.
func (a *Analyzer) Influences() []float64 {
	return slices.Clone(a.influences)
}

// Result assembles the serializable result. Weights must have been computed.
func (a *Analyzer) Result() (*schema.AnalysisResult, error) {
	if a.influences == nil {
		return nil, fmt.Errorf("%w: weights", ErrNotComputed)
	}
	signals := make([]schema.SignalResult, len(schema.AllSignals))
	for i, name := range schema.AllSignals {
		signals[i] = schema.SignalResult{
			Name:      name,
			Display:   schema.MustInfo(name).Display,
			Weight:    a.weights[i],
			Influence: a.influences[i],
			Level:     contract.GetInfluenceLevel(a.influences[i]),
		}
	}
	return &schema.AnalysisResult{
		Domain:      a.domain.Schema(),
		Signals:     signals,
		TotalWeight: algo.Sum(a.weights),
		Balance:     BalanceOf(a.influences),
	}, nil
}
