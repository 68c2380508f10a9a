package convolve

// Term is one kernel cell's contribution to an output pixel.
type Term struct {
	// KernelRow and KernelCol locate the weight within the kernel.
	KernelRow, KernelCol int

	// Row and Col are the source position before edge handling. They may
	// lie outside the grid.
	Row, Col int

	// SourceRow and SourceCol are the position actually sampled after
	// edge handling. Only meaningful when Sampled is true.
	SourceRow, SourceCol int

	// InBounds reports whether Row, Col is inside the grid.
	InBounds bool

	// Sampled reports whether a grid pixel supplied the values. It is
	// false for zero padding and for passthrough positions outside the
	// grid.
	Sampled bool

	Weight float64

	// Values and Products hold one entry per active channel, in the
	// order given by Trace.Channels.
	Values   []int
	Products []float64
}

// Trace explains how one output pixel was computed.
type Trace struct {
	Row, Col int
	Mode     ChannelMode
	Edge     EdgePolicy
	Kernel   Kernel

	// Input is the pixel at (Row, Col) in the source grid.
	Input Pixel

	// Terms lists the kernel cells in row-major order.
	Terms []Term

	// Sums and Divided hold the raw weighted sum and the sum after the
	// divisor, per channel. Both are empty when Passthrough is set.
	Sums    []float64
	Divided []float64

	// Passthrough reports that the receptive field left the grid under
	// EdgePassthrough and the input pixel was copied.
	Passthrough bool

	// Result equals the pixel Convolve produces at (Row, Col).
	Result Pixel
}

// Channels returns the channel names matching Term.Values and Sums.
func (t *Trace) Channels() []string {
	if t.Mode == ChannelGray {
		return []string{"gray"}
	}
	return []string{"r", "g", "b"}
}

// TraceAt computes the output pixel at (row, col) exactly as Convolve
// does and records every intermediate value. It returns ErrOutOfBounds
// when (row, col) is outside g, and the same errors as Convolve otherwise.
func TraceAt(g *Grid, k Kernel, row, col int, mode ChannelMode, edge EdgePolicy) (*Trace, error) {
	e, err := newEngine(g, k, mode, edge)
	if err != nil {
		Logger().Debug("convolve: trace rejected", "err", err)
		return nil, err
	}
	if !g.in(row, col) {
		return nil, outOfBounds(row, col, g.rows, g.cols)
	}

	t := &Trace{
		Row:    row,
		Col:    col,
		Mode:   mode,
		Edge:   edge,
		Kernel: Kernel{Weights: cloneWeights(k.Weights), Divisor: k.Divisor},
		Input:  g.at(row, col),
		Terms:  make([]Term, 0, e.size*e.size),
	}
	e.pixel(row, col, t)

	Logger().Debug("convolve: trace",
		"row", row, "col", col, "kernel", e.size, "passthrough", t.Passthrough)
	return t, nil
}
