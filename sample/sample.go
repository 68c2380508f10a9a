// Package sample provides the static grids the convolution demos load.
//
// Every function returns a fresh grid; the data is small enough that no
// caching is done.
package sample

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/convolve"
)

// smiley is an 8x8 grayscale face: dark features on a light disc.
var smiley = [][]int{
	{255, 255, 200, 200, 200, 200, 255, 255},
	{255, 200, 200, 200, 200, 200, 200, 255},
	{200, 200, 30, 200, 200, 30, 200, 200},
	{200, 200, 30, 200, 200, 30, 200, 200},
	{200, 200, 200, 200, 200, 200, 200, 200},
	{200, 30, 200, 200, 200, 200, 30, 200},
	{255, 200, 30, 30, 30, 30, 200, 255},
	{255, 255, 200, 200, 200, 200, 255, 255},
}

// sharpenPatch is the worked example for the sharpen kernel: a center of
// 110 surrounded by 100.
var sharpenPatch = [][]int{
	{100, 100, 100},
	{100, 110, 100},
	{100, 100, 100},
}

// Smiley returns the 8x8 smiley face.
func Smiley() *convolve.Grid {
	return mustGray(smiley)
}

// SharpenPatch returns the 3x3 sharpen example.
func SharpenPatch() *convolve.Grid {
	return mustGray(sharpenPatch)
}

// Gradient returns a horizontal ramp from 0 on the left to 255 on the right.
func Gradient(rows, cols int) (*convolve.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", convolve.ErrInvalidDimensions, rows, cols)
	}
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if cols > 1 {
				values[r][c] = convolve.ClampPixelValue(255 * float64(c) / float64(cols-1))
			}
		}
	}
	return convolve.FromGrayscaleMatrix(values)
}

// Checker returns a black and white checkerboard with square cells of
// the given size.
func Checker(rows, cols, cell int) (*convolve.Grid, error) {
	if rows <= 0 || cols <= 0 || cell <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cell %d", convolve.ErrInvalidDimensions, rows, cols, cell)
	}
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if (r/cell+c/cell)%2 == 1 {
				values[r][c] = 255
			}
		}
	}
	return convolve.FromGrayscaleMatrix(values)
}

// Flat returns a grid of uniform gray value v.
func Flat(rows, cols, v int) (*convolve.Grid, error) {
	if v < 0 || v > 255 {
		return nil, fmt.Errorf("%w: %d", convolve.ErrChannelRange, v)
	}
	return convolve.Uniform(rows, cols, convolve.GrayPixel(uint8(v)))
}

// barColors are the classic SMPTE-style bars, left to right.
var barColors = []convolve.RGB{
	{R: 255, G: 255, B: 255},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 255},
	{R: 0, G: 255, B: 0},
	{R: 255, G: 0, B: 255},
	{R: 255, G: 0, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 0, G: 0, B: 0},
}

// ColorBars returns vertical color bars spread across cols columns.
func ColorBars(rows, cols int) (*convolve.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", convolve.ErrInvalidDimensions, rows, cols)
	}
	values := make([][]convolve.RGB, rows)
	for r := range values {
		values[r] = make([]convolve.RGB, cols)
		for c := range values[r] {
			values[r][c] = barColors[c*len(barColors)/cols]
		}
	}
	return convolve.FromRGBMatrix(values)
}

func mustGray(values [][]int) *convolve.Grid {
	g, err := convolve.FromGrayscaleMatrix(values)
	if err != nil {
		panic(err)
	}
	return g
}

// loaders maps demo names to their default-sized grids.
var loaders = map[string]func() (*convolve.Grid, error){
	"smiley":  func() (*convolve.Grid, error) { return Smiley(), nil },
	"sharpen": func() (*convolve.Grid, error) { return SharpenPatch(), nil },
	"gradient": func() (*convolve.Grid, error) {
		return Gradient(6, 8)
	},
	"checker": func() (*convolve.Grid, error) {
		return Checker(8, 8, 2)
	},
	"flat": func() (*convolve.Grid, error) {
		return Flat(5, 5, 128)
	},
	"bars": func() (*convolve.Grid, error) {
		return ColorBars(4, 8)
	},
}

// Names returns the names accepted by Load, sorted.
func Names() []string {
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrUnknown is returned by Load for names not listed by Names.
var ErrUnknown = errors.New("sample: unknown sample")

// Load returns the named sample grid.
func Load(name string) (*convolve.Grid, error) {
	load, ok := loaders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return load()
}
