package convolve

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Grid is an immutable rectangular grid of pixels addressed by
// (row, col), with row increasing downward and col increasing rightward.
//
// Grids are created by the From* constructors or by Convolve. No method
// modifies a grid; transformations always return a new one.
type Grid struct {
	rows, cols int
	pix        []Pixel // row-major
}

// newGrid allocates a grid. rows and cols must be positive.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows: rows,
		cols: cols,
		pix:  make([]Pixel, rows*cols),
	}
}

// FromGrayscaleMatrix builds a grid where every cell has r = g = b = value.
func FromGrayscaleMatrix(values [][]int) (*Grid, error) {
	rows, cols, err := matrixShape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}

	g := newGrid(rows, cols)
	for r, row := range values {
		for c, v := range row {
			y, err := channelValue(v, r, c)
			if err != nil {
				return nil, err
			}
			g.pix[r*cols+c] = GrayPixel(y)
		}
	}
	return g, nil
}

// FromRGBMatrix builds a grid from RGB records, deriving gray and hex.
func FromRGBMatrix(values [][]RGB) (*Grid, error) {
	rows, cols, err := matrixShape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}

	g := newGrid(rows, cols)
	for r, row := range values {
		for c, v := range row {
			red, err := channelValue(v.R, r, c)
			if err != nil {
				return nil, err
			}
			grn, err := channelValue(v.G, r, c)
			if err != nil {
				return nil, err
			}
			blu, err := channelValue(v.B, r, c)
			if err != nil {
				return nil, err
			}
			g.pix[r*cols+c] = NewPixel(red, grn, blu)
		}
	}
	return g, nil
}

// Uniform returns a rows x cols grid filled with p.
func Uniform(rows, cols int, p Pixel) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	g := newGrid(rows, cols)
	for i := range g.pix {
		g.pix[i] = p
	}
	return g, nil
}

// matrixShape validates that a matrix is non-empty and rectangular.
func matrixShape(rows int, rowLen func(int) int) (int, int, error) {
	if rows == 0 {
		return 0, 0, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	cols := rowLen(0)
	if cols == 0 {
		return 0, 0, fmt.Errorf("%w: empty row 0", ErrInvalidDimensions)
	}
	for r := 1; r < rows; r++ {
		if n := rowLen(r); n != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidDimensions, r, n, cols)
		}
	}
	return rows, cols, nil
}

func channelValue(v, row, col int) (uint8, error) {
	y, err := safecast.Conv[uint8](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %d at (%d, %d)", ErrChannelRange, v, row, col)
	}
	return y, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the pixel at (row, col). Positions outside the grid return
// ErrOutOfBounds; no default pixel is ever substituted.
func (g *Grid) At(row, col int) (Pixel, error) {
	if !g.in(row, col) {
		return Pixel{}, outOfBounds(row, col, g.rows, g.cols)
	}
	return g.at(row, col), nil
}

func (g *Grid) in(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// at is the unchecked accessor.
func (g *Grid) at(row, col int) Pixel {
	return g.pix[row*g.cols+col]
}

// GrayMatrix returns the gray value of every cell.
func (g *Grid) GrayMatrix() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = g.at(r, c).Gray()
		}
	}
	return out
}

// RGBMatrix returns the channels of every cell.
func (g *Grid) RGBMatrix() [][]RGB {
	out := make([][]RGB, g.rows)
	for r := range out {
		out[r] = make([]RGB, g.cols)
		for c := range out[r] {
			out[r][c] = g.at(r, c).RGB()
		}
	}
	return out
}

// Equal reports whether g and o have the same dimensions and channels.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.pix {
		if !g.pix[i].Equal(o.pix[i]) {
			return false
		}
	}
	return true
}

// String formats the grid as rows of hex values.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.at(r, c).Hex())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
