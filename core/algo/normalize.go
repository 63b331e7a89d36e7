package algo

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDegenerateWeights is returned when weights cannot be normalized because
// their sum is zero, negative or not finite.
var ErrDegenerateWeights = errors.New("degenerate weights: total must be positive and finite")

// ResonanceThreshold is the variance against a uniform allocation below which
// an influence vector counts as balanced.
const ResonanceThreshold = 0.01

// Normalize divides each weight by the total so the result sums to 1.
// Negative weights and a non-positive or non-finite total are rejected with
// ErrDegenerateWeights rather than producing NaN.
func Normalize(weights []float64) ([]float64, error) {
	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrDegenerateWeights, i, w)
		}
		total += w
	}
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: total is %v", ErrDegenerateWeights, total)
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / total
	}
	return out, nil
}

// Sum adds up the values.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// UniformVariance returns the mean squared distance of xs from 1/len(xs).
func UniformVariance(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	target := 1.0 / float64(n)
	var acc float64
	for _, x := range xs {
		d := x - target
		acc += d * d
	}
	return acc / float64(n)
}

// TopIndices returns the indices of the k largest values in descending order.
// Ties keep the lower index first.
func TopIndices(xs []float64, k int) []int {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return xs[idx[a]] > xs[idx[b]]
	})
	if k < len(idx) {
		idx = idx[:max(k, 0)]
	}
	return idx
}
