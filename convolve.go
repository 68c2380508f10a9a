package convolve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Convolve applies kernel k to every position of g and returns a new grid
// of the same dimensions. g is never modified.
//
// For each output position and each channel selected by mode the
// weighted sum over the kernel window is computed, divided once by
// k.Divisor and clamped with ClampPixelValue. Samples outside the grid
// are handled by edge.
//
// Convolve returns ErrInvalidDimensions for a nil grid,
// ErrInvalidKernelShape for an even or malformed kernel,
// ErrDivisionByZero for a zero divisor, and ErrUnknownChannelMode or
// ErrUnknownEdgePolicy for out-of-range enum values.
func Convolve(g *Grid, k Kernel, mode ChannelMode, edge EdgePolicy) (*Grid, error) {
	e, err := newEngine(g, k, mode, edge)
	if err != nil {
		Logger().Debug("convolve: rejected", "err", err)
		return nil, err
	}

	out := newGrid(g.rows, g.cols)
	passthrough := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p, copied := e.pixel(row, col, nil)
			if copied {
				passthrough++
			}
			out.pix[row*g.cols+col] = p
		}
	}

	Logger().Debug("convolve",
		"rows", g.rows,
		"cols", g.cols,
		"kernel", e.size,
		"divisor", e.divisor,
		"mode", mode.String(),
		"edge", edge.String(),
		"passthrough", passthrough,
	)
	return out, nil
}

// engine holds one validated convolution request.
type engine struct {
	src     *Grid
	weights *mat.Dense
	size    int
	center  int
	divisor float64
	mode    ChannelMode
	edge    EdgePolicy
	chans   []channel
}

func newEngine(g *Grid, k Kernel, mode ChannelMode, edge EdgePolicy) (*engine, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannelMode, mode)
	}
	if !edge.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEdgePolicy, edge)
	}
	return &engine{
		src:     g,
		weights: k.dense(),
		size:    k.Size(),
		center:  k.Center(),
		divisor: k.Divisor,
		mode:    mode,
		edge:    edge,
		chans:   mode.channels(),
	}, nil
}

// windowInside reports whether the receptive field of (row, col) lies
// entirely inside the grid.
func (e *engine) windowInside(row, col int) bool {
	return row-e.center >= 0 && row+e.center < e.src.rows &&
		col-e.center >= 0 && col+e.center < e.src.cols
}

// pixel computes the output pixel at (row, col). copied is true when the
// passthrough policy emitted the input pixel. A non-nil t receives every
// intermediate value.
func (e *engine) pixel(row, col int, t *Trace) (p Pixel, copied bool) {
	if e.edge == EdgePassthrough && !e.windowInside(row, col) {
		p = e.passthrough(row, col)
		if t != nil {
			e.traceTerms(row, col, t, nil)
			t.Passthrough = true
			t.Result = p
		}
		return p, true
	}

	sums := make([]float64, len(e.chans))
	e.traceTerms(row, col, t, sums)

	vals := make([]int, len(e.chans))
	for i, s := range sums {
		d := s / e.divisor
		vals[i] = ClampPixelValue(d)
		if t != nil {
			t.Sums = append(t.Sums, s)
			t.Divided = append(t.Divided, d)
		}
	}

	if e.mode == ChannelGray {
		p = clampedPixel(vals[0], vals[0], vals[0])
	} else {
		p = clampedPixel(vals[0], vals[1], vals[2])
	}
	if t != nil {
		t.Result = p
	}
	return p, false
}

// traceTerms walks the kernel window. When sums is non-nil the weighted
// samples are accumulated into it; when t is non-nil each term is
// recorded.
func (e *engine) traceTerms(row, col int, t *Trace, sums []float64) {
	for i := 0; i < e.size; i++ {
		for j := 0; j < e.size; j++ {
			w := e.weights.At(i, j)
			sr := row + i - e.center
			sc := col + j - e.center

			rr, rok := e.edge.resolve(sr, e.src.rows)
			cc, cok := e.edge.resolve(sc, e.src.cols)
			sampled := rok && cok

			var src Pixel
			if sampled {
				src = e.src.at(rr, cc)
			}

			var term *Term
			if t != nil {
				t.Terms = append(t.Terms, Term{
					KernelRow: i,
					KernelCol: j,
					Row:       sr,
					Col:       sc,
					SourceRow: rr,
					SourceCol: cc,
					InBounds:  e.src.in(sr, sc),
					Sampled:   sampled,
					Weight:    w,
				})
				term = &t.Terms[len(t.Terms)-1]
			}

			for ci, c := range e.chans {
				v := 0
				if sampled {
					v = src.channel(c)
				}
				prod := w * float64(v)
				if sums != nil {
					sums[ci] += prod
				}
				if term != nil {
					term.Values = append(term.Values, v)
					term.Products = append(term.Products, prod)
				}
			}
		}
	}
}

// passthrough returns the input pixel as seen by the active mode.
func (e *engine) passthrough(row, col int) Pixel {
	p := e.src.at(row, col)
	if e.mode == ChannelGray {
		return GrayPixel(p.gray)
	}
	return p
}
