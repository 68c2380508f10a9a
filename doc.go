// Package convolve implements kernel convolution over small pixel grids
// together with the pixel color model the teaching demos are built on.
//
// # Overview
//
// A [Grid] is an immutable rectangle of [Pixel] values. A [Kernel] is a
// square, odd-sized matrix of weights with a divisor. [Convolve] slides the
// kernel over every position and returns a new grid:
//
//	g, _ := convolve.FromGrayscaleMatrix([][]int{
//	    {100, 100, 100},
//	    {100, 110, 100},
//	    {100, 100, 100},
//	})
//	k, _ := convolve.LookupPreset("sharpen")
//	out, err := convolve.Convolve(g, k, convolve.ChannelGray, convolve.EdgePadZero)
//
// # Color Model
//
// Channels are integers in [0, 255]. Gray is round(0.299r + 0.587g + 0.114b)
// and hex is "#RRGGBB" with uppercase digits. Both are derived when a pixel is
// constructed. [ClampPixelValue] is the single normalization point applied
// after every weighted sum.
//
// # Edges
//
// Near a border part of the kernel window falls outside the grid. The
// [EdgePolicy] decides what happens: [EdgePassthrough] (the default) copies
// the input pixel, [EdgePadZero] samples 0, [EdgeMirror] reflects the index
// and [EdgeClamp] repeats the edge sample. Output dimensions always equal
// input dimensions.
//
// # Coordinate System
//
//   - Origin (0, 0) at top-left
//   - row increases down
//   - col increases right
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package convolve
