package algo

import (
	"errors"
	"math"
	"testing"
)

// FuzzNormalize checks that every accepted weight vector maps onto the unit simplex.
func FuzzNormalize(f *testing.F) {
	seeds := [][3]float64{
		{1, 2, 3},
		{0, 0, 0},
		{0, 0, 1e-300},
		{-1, 2, 3},
		{math.MaxFloat64, 1, 1},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1], s[2])
	}

	f.Fuzz(func(t *testing.T, a, b, c float64) {
		got, err := Normalize([]float64{a, b, c})
		if err != nil {
			if !errors.Is(err, ErrDegenerateWeights) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		var sum float64
		for i, v := range got {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("influence %d out of range: %v", i, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("influences sum to %v", sum)
		}
	})
}

// FuzzTrapz checks that integration over a uniform grid never panics and
// that a non-negative integrand integrates to a non-negative value.
func FuzzTrapz(f *testing.F) {
	f.Add(0.0, 10.0, 1000, 1.0)
	f.Add(-5.0, 5.0, 2, 0.0)
	f.Add(1.0, 1.0, 1, 3.0)

	f.Fuzz(func(t *testing.T, start, stop float64, n int, level float64) {
		if n < 0 || n > 4096 || !(math.Abs(start) <= 1e6) || !(math.Abs(stop) <= 1e6) || !(math.Abs(level) <= 1e6) {
			return
		}
		if stop < start {
			return
		}
		x := Linspace(start, stop, n)
		y := Abs(Scale(Sine(x, 0.5), level))
		got := Trapz(y, x)
		if got < -1e-6 || math.IsNaN(got) {
			t.Fatalf("integral of non-negative samples is negative: %v", got)
		}
	})
}
