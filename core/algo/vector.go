// Package algo has the numeric primitives behind signal generation and weighting.
package algo

import "math"

// Linspace returns n evenly spaced samples over the closed interval [start, stop].
// The last sample is exactly stop. It returns nil when n < 1.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Map applies fn to every element of xs and returns a new slice.
func Map(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// Abs returns the elementwise absolute value.
func Abs(xs []float64) []float64 {
	return Map(xs, math.Abs)
}

// Mul returns the elementwise product of equal-length slices.
// The result has the length of the shortest input.
func Mul(a []float64, rest ...[]float64) []float64 {
	n := len(a)
	for _, r := range rest {
		n = min(n, len(r))
	}
	out := make([]float64, n)
	for i := range out {
		v := a[i]
		for _, r := range rest {
			v *= r[i]
		}
		out[i] = v
	}
	return out
}

// Add returns the elementwise sum of two slices, truncated to the shorter one.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Scale multiplies every element by k.
func Scale(xs []float64, k float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * k
	}
	return out
}

// Sine returns sin(2*pi*freq*t) for every t.
func Sine(t []float64, freq float64) []float64 {
	return Map(t, func(v float64) float64 { return math.Sin(2 * math.Pi * freq * v) })
}

// AbsSine returns |sin(2*pi*freq*t)| for every t. Most signals use it as an envelope.
func AbsSine(t []float64, freq float64) []float64 {
	return Map(t, func(v float64) float64 { return math.Abs(math.Sin(2 * math.Pi * freq * v)) })
}

// GaussianPulse returns exp(-(t-center)^2 / (2*sigma^2)) for every t.
func GaussianPulse(t []float64, center, sigma float64) []float64 {
	denom := 2 * sigma * sigma
	return Map(t, func(v float64) float64 {
		d := v - center
		return math.Exp(-(d * d) / denom)
	})
}
