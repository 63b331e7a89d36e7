package core

import (
	"testing"

	"github.com/huangsam/chakra/core/algo"
	"github.com/huangsam/chakra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsSumToOne(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Key, func(t *testing.T) {
			require.Len(t, p.Weights, schema.SignalCount)
			assert.InDelta(t, 1.0, algo.Sum(p.Weights), 1e-9)
		})
	}
}

func TestPresetsReturnsCopies(t *testing.T) {
	first := Presets()
	first[0].Weights[0] = 99
	assert.NotEqual(t, 99.0, Presets()[0].Weights[0])
}

func TestPresetReports(t *testing.T) {
	reports, err := PresetReports()
	require.NoError(t, err)
	require.Len(t, reports, 6)

	byKey := make(map[string]schema.PresetReport, len(reports))
	for _, r := range reports {
		byKey[r.Key] = r
	}

	tests := []struct {
		key        string
		resonating bool
		dominant   []schema.SignalName
	}{
		{"balanced", true, []schema.SignalName{schema.HeartSignal, schema.RootSignal}},
		{"grounded", true, []schema.SignalName{schema.RootSignal, schema.SacralSignal}},
		{"compassionate", false, []schema.SignalName{schema.HeartSignal, schema.ThroatSignal}},
		{"decisive", true, []schema.SignalName{schema.SolarSignal, schema.RootSignal}},
		{"wise", true, []schema.SignalName{schema.ThirdEyeSignal, schema.CrownSignal}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			r, ok := byKey[tt.key]
			require.True(t, ok)
			assert.Equal(t, tt.resonating, r.Balance.Resonating, "variance %v", r.Balance.Variance)
			assert.Equal(t, tt.dominant, r.Balance.Dominant)
		})
	}

	assert.InDelta(t, 0.013163, byKey["compassionate"].Balance.Variance, 1e-5)
}

func TestBalanceOfUniform(t *testing.T) {
	uniform := make([]float64, schema.SignalCount)
	for i := range uniform {
		uniform[i] = 1.0 / schema.SignalCount
	}
	b := BalanceOf(uniform)
	assert.InDelta(t, 0, b.Variance, 1e-15)
	assert.True(t, b.Resonating)
	assert.Equal(t, []schema.SignalName{schema.RootSignal, schema.SacralSignal}, b.Dominant)
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		wantErr bool
	}{
		{"balanced", "balanced", false},
		{"Compassionate", "compassionate", false},
		{"  WISE ", "wise", false},
		{"nirvana", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := LookupPreset(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, p.Key)
		})
	}
}
