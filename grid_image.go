package convolve

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image converts the grid to an opaque image with one image pixel per
// grid cell. Image x maps to col and image y to row.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.cols, g.rows))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := g.at(r, c)
			i := img.PixOffset(c, r)
			img.Pix[i+0] = p.r
			img.Pix[i+1] = p.g
			img.Pix[i+2] = p.b
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// ColorModel returns the model that converts any color to a Pixel.
func (g *Grid) ColorModel() color.Model {
	return PixelModel
}

// PixelModel converts colors to opaque Pixels. Alpha is discarded after
// un-premultiplying.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewPixel(n.R, n.G, n.B)
}

// FromImage samples an in-memory frame, such as a camera frame already
// decoded by the caller, down (or up) to a rows x cols grid using
// bilinear interpolation.
func FromImage(img image.Image, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrInvalidDimensions)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	if img.Bounds().Dx() == cols && img.Bounds().Dy() == rows {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}

	g := newGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := dst.PixOffset(c, r)
			g.pix[r*cols+c] = NewPixel(dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2])
		}
	}
	Logger().Debug("convolve: sampled frame",
		"src", img.Bounds().Size().String(), "rows", rows, "cols", cols)
	return g, nil
}
