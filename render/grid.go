// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/convolve"
)

// ErrInvalidCellSize is returned when the cell size is not positive.
var ErrInvalidCellSize = errors.New("render: cell size must be positive")

// Grid paints g with one square per cell.
func Grid(g *convolve.Grid, opts ...Option) (image.Image, error) {
	if g == nil {
		return nil, fmt.Errorf("render: %w", convolve.ErrInvalidDimensions)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	cs := o.cellSize
	dc := gg.NewContext(g.Cols()*cs, g.Rows()*cs)
	defer func() { _ = dc.Close() }()

	if err := paint(dc, g, 0, &o); err != nil {
		return nil, err
	}
	img := toRGBA(dc.Image())
	drawLabels(img, g, 0, &o)

	convolve.Logger().Debug("render: grid",
		"rows", g.Rows(), "cols", g.Cols(), "cell", cs, "labels", o.labels.String())
	return img, nil
}

// Compare paints before and after side by side, separated by a gap.
// The grids may differ in size; the shorter one is top aligned.
func Compare(before, after *convolve.Grid, opts ...Option) (image.Image, error) {
	if before == nil || after == nil {
		return nil, fmt.Errorf("render: %w", convolve.ErrInvalidDimensions)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	cs := o.cellSize
	offset := before.Cols()*cs + o.gapPx()
	w := offset + after.Cols()*cs
	h := max(before.Rows(), after.Rows()) * cs

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)

	if err := paint(dc, before, 0, &o); err != nil {
		return nil, err
	}
	if err := paint(dc, after, offset, &o); err != nil {
		return nil, err
	}

	img := toRGBA(dc.Image())
	drawLabels(img, before, 0, &o)
	drawLabels(img, after, offset, &o)
	return img, nil
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cellSize <= 0 {
		return o, fmt.Errorf("%w: %d", ErrInvalidCellSize, o.cellSize)
	}
	return o, nil
}

// paint fills every cell of g, shifted right by x0 pixels, and strokes
// the grid lines.
func paint(dc *gg.Context, g *convolve.Grid, x0 int, o *options) error {
	cs := float64(o.cellSize)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p, err := g.At(r, c)
			if err != nil {
				return err
			}
			dc.SetColor(p)
			dc.DrawRectangle(float64(x0)+float64(c)*cs, float64(r)*cs, cs, cs)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("render: fill cell (%d, %d): %w", r, c, err)
			}
		}
	}

	if !o.gridLines {
		return nil
	}
	dc.SetColor(o.lineColor)
	dc.SetLineWidth(1)
	w := float64(g.Cols()) * cs
	h := float64(g.Rows()) * cs
	for c := 0; c <= g.Cols(); c++ {
		x := float64(x0) + float64(c)*cs
		dc.DrawLine(x, 0, x, h)
	}
	for r := 0; r <= g.Rows(); r++ {
		y := float64(r) * cs
		dc.DrawLine(float64(x0), y, float64(x0)+w, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: grid lines: %w", err)
	}
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// drawLabels writes the per-cell label centered in each cell.
func drawLabels(img *image.RGBA, g *convolve.Grid, x0 int, o *options) {
	if o.labels == LabelNone {
		return
	}

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	cs := o.cellSize

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p, err := g.At(r, c)
			if err != nil {
				return
			}
			text := labelText(p, o.labels)
			tw := font.MeasureString(face, text).Ceil()
			if tw > cs-2 || ascent > cs-2 {
				continue
			}

			var fg color.Color = color.White
			if p.IsLight() {
				fg = color.Black
			}
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot: fixed.P(
					x0+c*cs+(cs-tw)/2,
					r*cs+(cs+ascent)/2,
				),
			}
			d.DrawString(text)
		}
	}
}

func labelText(p convolve.Pixel, l Label) string {
	if l == LabelHex {
		return p.Hex()
	}
	return strconv.Itoa(p.Gray())
}
