package convolve

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// gaussian1D returns a normalized 1D gaussian of the given radius.
// The size is 2*ceil(radius*3)+1, which covers 99.7% of the distribution.
func gaussian1D(radius float64) []float64 {
	sigma := radius
	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1

	out := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range out {
		x := float64(i - half)
		out[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// GaussianKernel returns a square gaussian kernel with standard
// deviation radius, built as the outer product of a normalized 1D
// gaussian with itself. Weights sum to 1 and the divisor is 1.
//
// For radius <= 0 it returns the 1x1 identity kernel.
func GaussianKernel(radius float64) Kernel {
	if radius <= 0 {
		return Kernel{Weights: [][]float64{{1}}, Divisor: 1}
	}

	g := gaussian1D(radius)
	n := len(g)
	v := mat.NewVecDense(n, g)

	var outer mat.Dense
	outer.Outer(1, v, v)

	weights := make([][]float64, n)
	for i := range weights {
		weights[i] = mat.Row(nil, i, &outer)
	}
	return Kernel{Weights: weights, Divisor: 1}
}

// BoxKernel returns a (2*radius+1)-square kernel of ones with a divisor
// equal to the number of cells, a uniform average.
//
// For radius <= 0 it returns the 1x1 identity kernel.
func BoxKernel(radius int) Kernel {
	if radius <= 0 {
		return Kernel{Weights: [][]float64{{1}}, Divisor: 1}
	}
	size := radius*2 + 1
	weights := make([][]float64, size)
	for i := range weights {
		weights[i] = make([]float64, size)
		for j := range weights[i] {
			weights[i][j] = 1
		}
	}
	return Kernel{Weights: weights, Divisor: float64(size * size)}
}
