package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		stop  float64
		n     int
		want  []float64
	}{
		{"quarters", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"single sample", 3, 9, 1, []float64{3}},
		{"empty", 0, 1, 0, nil},
		{"negative range", 1, -1, 3, []float64{1, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Linspace(tt.start, tt.stop, tt.n))
		})
	}

	t.Run("last sample is exact", func(t *testing.T) {
		ts := Linspace(0, 10, 1000)
		require.Len(t, ts, 1000)
		assert.Equal(t, 0.0, ts[0])
		assert.Equal(t, 10.0, ts[999])
	})
}

func TestElementwise(t *testing.T) {
	a := []float64{1, -2, 3}
	b := []float64{2, 2, 2, 2}

	assert.Equal(t, []float64{1, 2, 3}, Abs(a))
	assert.Equal(t, []float64{2, -4, 6}, Mul(a, b))
	assert.Equal(t, []float64{3, 0, 5}, Add(a, b))
	assert.Equal(t, []float64{0.5, -1, 1.5}, Scale(a, 0.5))
	assert.Equal(t, []float64{-2, 8, -18}, Mul(a, a, []float64{-2, 2, -2}))
}

func TestWaveforms(t *testing.T) {
	ts := []float64{0, 0.25, 0.5}

	s := Sine(ts, 1)
	assert.InDelta(t, 0, s[0], 1e-12)
	assert.InDelta(t, 1, s[1], 1e-12)
	assert.InDelta(t, 0, s[2], 1e-12)

	abs := AbsSine([]float64{0.75}, 1)
	assert.InDelta(t, 1, abs[0], 1e-12)

	g := GaussianPulse([]float64{1, 1.2}, 1, 0.2)
	assert.Equal(t, 1.0, g[0])
	assert.InDelta(t, math.Exp(-0.5), g[1], 1e-12)
}

func TestTrapz(t *testing.T) {
	t.Run("constant one over [0,10]", func(t *testing.T) {
		x := Linspace(0, 10, 1000)
		y := make([]float64, len(x))
		for i := range y {
			y[i] = 1
		}
		assert.InDelta(t, 10, Trapz(y, x), 1e-9)
	})

	t.Run("identity over [0,2]", func(t *testing.T) {
		x := Linspace(0, 2, 201)
		assert.InDelta(t, 2, Trapz(x, x), 1e-9)
	})

	t.Run("fewer than two points", func(t *testing.T) {
		assert.Equal(t, 0.0, Trapz([]float64{5}, []float64{1}))
		assert.Equal(t, 0.0, Trapz(nil, nil))
	})
}

func TestCumSum(t *testing.T) {
	assert.Equal(t, []float64{0.5, 1.5, 3}, CumSum([]float64{1, 2, 3}, 0.5))
	assert.Empty(t, CumSum(nil, 1))
	// Rectangle rule: a constant 1 over four samples accumulates 4*dx, the trapezoid would give 3*dx.
	assert.InDelta(t, 1.0, CumSum([]float64{1, 1, 1, 1}, 0.25)[3], 1e-12)
}

func TestGradient(t *testing.T) {
	t.Run("central interior and one-sided edges", func(t *testing.T) {
		f := []float64{1, 4, 9, 16}
		assert.Equal(t, []float64{3, 4, 6, 7}, Gradient(f, 1))
	})

	t.Run("spacing", func(t *testing.T) {
		f := []float64{0, 1, 2}
		assert.Equal(t, []float64{2, 2, 2}, Gradient(f, 0.5))
	})

	t.Run("short input", func(t *testing.T) {
		assert.Equal(t, []float64{0}, Gradient([]float64{42}, 1))
		assert.Empty(t, Gradient(nil, 1))
	})
}

func TestCausalKernel(t *testing.T) {
	ts := Linspace(0, 2, 9)
	k := CausalKernel(ts, 0.5)

	r, c := k.Dims()
	require.Equal(t, len(ts), r)
	require.Equal(t, len(ts), c)

	for i := range r {
		for j := range c {
			if j > i {
				assert.Zero(t, k.At(i, j), "K[%d,%d] must be zero above the diagonal", i, j)
				continue
			}
			assert.Greater(t, k.At(i, j), 0.0)
		}
		assert.Equal(t, 0.5, k.At(i, i))
	}
}

func TestCausalConvolve(t *testing.T) {
	t.Run("impulse response decays", func(t *testing.T) {
		out := CausalConvolve([]float64{0, 1, 2}, []float64{1, 0, 0}, 1, 1)
		require.Len(t, out, 3)
		assert.InDelta(t, 1, out[0], 1e-12)
		assert.InDelta(t, math.Exp(-1), out[1], 1e-12)
		assert.InDelta(t, math.Exp(-2), out[2], 1e-12)
	})

	t.Run("future samples do not leak", func(t *testing.T) {
		out := CausalConvolve([]float64{0, 1, 2}, []float64{0, 0, 1}, 1, 1)
		assert.Equal(t, 0.0, out[0])
		assert.Equal(t, 0.0, out[1])
		assert.InDelta(t, 1, out[2], 1e-12)
	})

	t.Run("dt scaling", func(t *testing.T) {
		out := CausalConvolve([]float64{0}, []float64{2}, 0.5, 0.1)
		assert.InDelta(t, 0.1, out[0], 1e-12)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, CausalConvolve(nil, nil, 0.5, 0.01))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("sums to one", func(t *testing.T) {
		got, err := Normalize([]float64{1, 1, 2})
		require.NoError(t, err)
		assert.Equal(t, []float64{0.25, 0.25, 0.5}, got)
	})

	degenerate := []struct {
		name    string
		weights []float64
	}{
		{"all zero", []float64{0, 0, 0}},
		{"empty", nil},
		{"negative", []float64{1, -1, 2}},
		{"nan", []float64{1, math.NaN()}},
		{"infinite", []float64{1, math.Inf(1)}},
		{"overflow", []float64{math.MaxFloat64, math.MaxFloat64}},
	}
	for _, tt := range degenerate {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.weights)
			assert.ErrorIs(t, err, ErrDegenerateWeights)
			assert.Nil(t, got)
		})
	}
}

func TestUniformVariance(t *testing.T) {
	uniform := []float64{0.25, 0.25, 0.25, 0.25}
	assert.InDelta(t, 0, UniformVariance(uniform), 1e-15)

	skewed := []float64{1, 0}
	assert.InDelta(t, 0.25, UniformVariance(skewed), 1e-15)

	assert.Equal(t, 0.0, UniformVariance(nil))
}

func TestTopIndices(t *testing.T) {
	xs := []float64{0.1, 0.3, 0.3, 0.2}
	assert.Equal(t, []int{1, 2}, TopIndices(xs, 2))
	assert.Equal(t, []int{1, 2, 3, 0}, TopIndices(xs, 10))
	assert.Empty(t, TopIndices(xs, 0))
	assert.InDelta(t, 0.8, Sum(xs[1:]), 1e-12)
}
