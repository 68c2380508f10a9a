// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Label selects the text drawn inside each cell.
type Label uint8

const (
	// LabelNone draws no text.
	LabelNone Label = iota

	// LabelGray draws the gray value.
	LabelGray

	// LabelHex draws the "#RRGGBB" color.
	LabelHex
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case LabelGray:
		return "gray"
	case LabelHex:
		return "hex"
	default:
		return "none"
	}
}

// Option configures rendering.
//
// Example:
//
//	img, _ := render.Grid(g, render.WithCellSize(24), render.WithGridLines(false))
type Option func(*options)

type options struct {
	cellSize  int
	labels    Label
	gridLines bool
	lineColor color.Color
	gap       int
}

func defaultOptions() options {
	return options{
		cellSize:  32,
		labels:    LabelNone,
		gridLines: true,
		lineColor: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		gap:       -1, // half a cell
	}
}

// WithCellSize sets the side of each cell in image pixels.
func WithCellSize(px int) Option {
	return func(o *options) {
		o.cellSize = px
	}
}

// WithLabels selects the per-cell label. Labels wider than a cell are
// omitted.
func WithLabels(l Label) Option {
	return func(o *options) {
		o.labels = l
	}
}

// WithGridLines enables or disables the lines between cells.
func WithGridLines(on bool) Option {
	return func(o *options) {
		o.gridLines = on
	}
}

// WithLineColor sets the grid line color.
func WithLineColor(c color.Color) Option {
	return func(o *options) {
		o.lineColor = c
	}
}

// WithGap sets the space between the two grids drawn by Compare.
func WithGap(px int) Option {
	return func(o *options) {
		o.gap = px
	}
}

func (o *options) gapPx() int {
	if o.gap < 0 {
		return o.cellSize / 2
	}
	return o.gap
}

// ErrUnknownLabel is returned by ParseLabel for unrecognized names.
var ErrUnknownLabel = errors.New("render: unknown label")

// ParseLabel parses "none", "gray" or "hex". The empty string is LabelNone.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return LabelNone, nil
	case "gray", "grey", "value":
		return LabelGray, nil
	case "hex", "color", "colour":
		return LabelHex, nil
	}
	return LabelNone, fmt.Errorf("%w %q", ErrUnknownLabel, s)
}
