package core

import (
	"math"
	"testing"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(DefaultDomain())
	require.NoError(t, err)
	return a
}

func TestTimeDomain(t *testing.T) {
	d := DefaultDomain()
	require.NoError(t, d.Validate())

	ts := d.Vector()
	require.Len(t, ts, 1000)
	assert.Equal(t, 0.0, ts[0])
	assert.Equal(t, 10.0, ts[len(ts)-1])
	assert.InDelta(t, 10.0/999.0, d.Step(), 1e-15)

	sd := d.Schema()
	assert.Equal(t, 1000, sd.Samples)
	assert.Equal(t, d.Step(), sd.Step)

	invalid := []TimeDomain{
		{Samples: 1, Start: 0, End: 10},
		{Samples: 100, Start: 5, End: 5},
		{Samples: 100, Start: 10, End: 0},
		{Samples: 100, Start: math.NaN(), End: 1},
		{Samples: 100, Start: 0, End: math.Inf(1)},
		{Samples: 1 << 20, Start: 0, End: 1},
	}
	for _, d := range invalid {
		assert.ErrorIs(t, d.Validate(), ErrDomain, "%+v", d)
		_, err := NewAnalyzer(d)
		assert.ErrorIs(t, err, ErrDomain)
	}
}

func TestSignalLengths(t *testing.T) {
	a := newDefaultAnalyzer(t)
	require.NoError(t, a.ComputeActivations())

	for _, name := range schema.AllSignals {
		values, ok := a.Signal(name)
		require.True(t, ok, "missing %s", name)
		assert.Len(t, values, 1000, "signal %s", name)
		for i, v := range values {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s[%d] is %v", name, i, v)
		}
	}

	_, ok := a.Signal("E8_Unknown")
	assert.False(t, ok)
}

func TestInfluencesSumToOne(t *testing.T) {
	a := newDefaultAnalyzer(t)
	result, err := a.Run()
	require.NoError(t, err)

	require.Len(t, result.Signals, schema.SignalCount)
	var sum float64
	for i, s := range result.Signals {
		assert.Equal(t, schema.AllSignals[i], s.Name)
		assert.GreaterOrEqual(t, s.Influence, 0.0)
		assert.LessOrEqual(t, s.Influence, 1.0)
		assert.Greater(t, s.Weight, 0.0)
		assert.NotEmpty(t, s.Level)
		sum += s.Influence
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, algo.Sum(a.Weights()), result.TotalWeight, 1e-12)
	assert.Len(t, result.Balance.Dominant, 2)
}

func TestWeightIsTrapezoidOfAbsoluteSignal(t *testing.T) {
	a := newDefaultAnalyzer(t)
	_, err := a.Run()
	require.NoError(t, err)

	ts := a.Time()
	weights := a.Weights()
	for i, name := range schema.AllSignals {
		values, _ := a.Signal(name)
		assert.Equal(t, algo.Trapz(algo.Abs(values), ts), weights[i], "weight of %s", name)
	}
}

func TestHeartDivisor(t *testing.T) {
	assert.Equal(t, 1.0, heartDivisor(0))
	assert.InDelta(t, 1.1, heartDivisor(1), 1e-15)
	assert.InDelta(t, 10.1, heartDivisor(10), 1e-12)
	assert.InDelta(t, 0.1+1e-9, heartDivisor(1e-9), 1e-15)

	// The first sample sits exactly on t == 0 and must stay finite.
	a := newDefaultAnalyzer(t)
	require.NoError(t, a.ComputeActivations())
	heart, _ := a.Signal(schema.HeartSignal)
	assert.Equal(t, 0.0, a.Time()[0])
	assert.False(t, math.IsNaN(heart[0]) || math.IsInf(heart[0], 0))
}

func TestEvaluationOrderRespectsDependencies(t *testing.T) {
	a := newDefaultAnalyzer(t)
	order := a.EvaluationOrder()
	assert.Equal(t, schema.AllSignals, order)

	pos := make(map[schema.SignalName]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	for _, r := range signalRules() {
		for _, d := range r.deps {
			assert.Less(t, pos[d], pos[r.name], "%s must come after %s", r.name, d)
		}
	}
}

func TestIdempotence(t *testing.T) {
	first := newDefaultAnalyzer(t)
	second := newDefaultAnalyzer(t)
	r1, err := first.Run()
	require.NoError(t, err)
	r2, err := second.Run()
	require.NoError(t, err)

	s1, err := first.Series()
	require.NoError(t, err)
	s2, err := second.Series()
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, first.Weights(), second.Weights())
	assert.Equal(t, r1, r2)

	// Running the same analyzer again changes nothing
	again, err := first.Run()
	require.NoError(t, err)
	assert.Equal(t, r1, again)
}

func TestStageOrdering(t *testing.T) {
	a := newDefaultAnalyzer(t)
	assert.ErrorIs(t, a.ComputeWeights(), ErrNotComputed)
	_, err := a.Result()
	assert.ErrorIs(t, err, ErrNotComputed)
	_, err = a.Series()
	assert.ErrorIs(t, err, ErrNotComputed)
	_, err = a.CumulativeEnergy()
	assert.ErrorIs(t, err, ErrNotComputed)
	assert.Nil(t, a.Influences())
}

func TestSignalCopiesAreIsolated(t *testing.T) {
	a := newDefaultAnalyzer(t)
	require.NoError(t, a.ComputeActivations())

	values, _ := a.Signal(schema.RootSignal)
	original := values[10]
	values[10] = 42

	again, _ := a.Signal(schema.RootSignal)
	assert.Equal(t, original, again[10])
}

func TestSmallDomain(t *testing.T) {
	a, err := NewAnalyzer(TimeDomain{Samples: 2, Start: 0, End: 1})
	require.NoError(t, err)
	result, err := a.Run()
	if err != nil {
		assert.ErrorIs(t, err, algo.ErrDegenerateWeights)
		return
	}
	assert.InDelta(t, 1.0, algo.Sum(result.Influences()), 1e-9)
}

func TestCumulativeEnergy(t *testing.T) {
	a := newDefaultAnalyzer(t)
	require.NoError(t, a.ComputeActivations())
	energy, err := a.CumulativeEnergy()
	require.NoError(t, err)
	require.Len(t, energy, schema.SignalCount)
	for k, curve := range energy {
		require.Len(t, curve, 1000)
		for i := 1; i < len(curve); i++ {
			require.GreaterOrEqual(t, curve[i], curve[i-1], "energy of signal %d must not decrease", k)
		}
	}
}
