package algo

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CausalKernel builds the n-by-n exponential decay kernel over the sample points t:
//
//	K[i,j] = beta * exp(-beta * |t_i - t_j|)  for j <= i
//	K[i,j] = 0                                for j > i
//
// Only past and present samples contribute to a row. The matrix is dense, so
// memory and build time are O(n^2).
func CausalKernel(t []float64, beta float64) *mat.Dense {
	n := len(t)
	if n == 0 {
		return &mat.Dense{}
	}
	k := mat.NewDense(n, n, nil)
	for i := range n {
		for j := 0; j <= i; j++ {
			k.Set(i, j, beta*math.Exp(-beta*math.Abs(t[i]-t[j])))
		}
	}
	return k
}

// CausalConvolve applies CausalKernel(t, beta) to x and scales the result by dt.
// The matrix-vector product is O(n^2); that is fine for a few thousand samples.
func CausalConvolve(t, x []float64, beta, dt float64) []float64 {
	n := min(len(t), len(x))
	if n == 0 {
		return []float64{}
	}
	k := CausalKernel(t[:n], beta)
	in := mat.NewVecDense(n, append([]float64(nil), x[:n]...))

	var out mat.VecDense
	out.MulVec(k, in)
	out.ScaleVec(dt, &out)

	return mat.Col(nil, 0, &out)
}
