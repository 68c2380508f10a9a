package convolve

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Kernel is a square matrix of weights with an odd side length and a
// divisor applied once, after the weighted sum.
//
// A Kernel is a plain value: Convolve validates it on every call.
type Kernel struct {
	// Weights holds the kernel rows. Weights[i][j] multiplies the
	// sample at (row+i-center, col+j-center).
	Weights [][]float64

	// Divisor normalizes the weighted sum. It must be non-zero.
	Divisor float64
}

// NewKernel returns a validated kernel.
func NewKernel(weights [][]float64, divisor float64) (Kernel, error) {
	k := Kernel{Weights: weights, Divisor: divisor}
	if err := k.Validate(); err != nil {
		return Kernel{}, err
	}
	return k, nil
}

// Validate reports ErrInvalidKernelShape for empty, ragged, non-square or
// even-sized kernels and ErrDivisionByZero for a zero or NaN divisor.
func (k Kernel) Validate() error {
	n := len(k.Weights)
	if n == 0 {
		return fmt.Errorf("%w: empty kernel", ErrInvalidKernelShape)
	}
	for i, row := range k.Weights {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d weights, want %d", ErrInvalidKernelShape, i, len(row), n)
		}
	}
	if n%2 == 0 {
		return fmt.Errorf("%w: side %d is even", ErrInvalidKernelShape, n)
	}
	if k.Divisor == 0 || math.IsNaN(k.Divisor) {
		return ErrDivisionByZero
	}
	return nil
}

// Size returns the side length.
func (k Kernel) Size() int {
	return len(k.Weights)
}

// Center returns the index of the center row and column.
func (k Kernel) Center() int {
	return len(k.Weights) / 2
}

// dense copies the weights into a gonum matrix. The kernel must be valid.
func (k Kernel) dense() *mat.Dense {
	n := len(k.Weights)
	data := make([]float64, 0, n*n)
	for _, row := range k.Weights {
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data)
}

// Sum returns the sum of all weights. A kernel with an invalid shape
// sums to 0.
func (k Kernel) Sum() float64 {
	if !k.squareOdd() {
		return 0
	}
	return mat.Sum(k.dense())
}

func (k Kernel) squareOdd() bool {
	n := len(k.Weights)
	if n == 0 || n%2 == 0 {
		return false
	}
	for _, row := range k.Weights {
		if len(row) != n {
			return false
		}
	}
	return true
}

// Normalized returns a copy of k whose divisor is the sum of its weights,
// so averaging kernels preserve brightness. Kernels whose weights sum
// to 0, such as edge detectors, get divisor 1.
func (k Kernel) Normalized() Kernel {
	out := Kernel{Weights: cloneWeights(k.Weights), Divisor: 1}
	if s := k.Sum(); s != 0 {
		out.Divisor = s
	}
	return out
}

func cloneWeights(w [][]float64) [][]float64 {
	out := make([][]float64, len(w))
	for i, row := range w {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// String formats the kernel as "[[a b c] [d e f] [g h i]] / divisor".
func (k Kernel) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range k.Weights {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j, w := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	sb.WriteString("] / ")
	sb.WriteString(strconv.FormatFloat(k.Divisor, 'g', -1, 64))
	return sb.String()
}

// ParseWeights parses rows separated by ';' and weights separated by
// ',' or whitespace, e.g. "0,-1,0; -1,5,-1; 0,-1,0". The shape is not
// validated.
func ParseWeights(s string) ([][]float64, error) {
	var out [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrInvalidKernelShape, i)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("kernel weight (%d, %d): %w", i, j, err)
			}
			row[j] = v
		}
		out = append(out, row)
	}
	return out, nil
}
