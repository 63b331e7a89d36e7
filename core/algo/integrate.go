package algo

// Trapz integrates y over the sample points x with the trapezoidal rule.
// Inputs of unequal length are truncated to the shorter one; fewer than two
// points integrate to zero.
func Trapz(y, x []float64) float64 {
	n := min(len(x), len(y))
	var sum float64
	for i := 1; i < n; i++ {
		sum += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2.0
	}
	return sum
}

// CumSum returns the running sum of xs scaled by dx, i.e. a left-aligned
// rectangle-rule running integral. It matches cumsum(xs)*dx, not a
// cumulative trapezoid, so out[0] is xs[0]*dx rather than zero.
func CumSum(xs []float64, dx float64) []float64 {
	out := make([]float64, len(xs))
	var acc float64
	for i, v := range xs {
		acc += v
		out[i] = acc * dx
	}
	return out
}

// Gradient returns the numerical derivative of f with uniform spacing dx.
// Interior points use central differences; the two endpoints use first-order
// one-sided differences. Inputs shorter than two samples yield zeros.
func Gradient(f []float64, dx float64) []float64 {
	n := len(f)
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	out[0] = (f[1] - f[0]) / dx
	for i := 1; i < n-1; i++ {
		out[i] = (f[i+1] - f[i-1]) / (2 * dx)
	}
	out[n-1] = (f[n-1] - f[n-2]) / dx
	return out
}
