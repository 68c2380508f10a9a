package convolve

import "fmt"

// RGB is an unvalidated color triple, the input record for FromRGBMatrix
// and the result of ParseHex.
type RGB struct {
	R, G, B int
}

// Pixel is one grid cell's color. Gray and Hex are derived from the
// channels once, at construction, and cannot change independently.
//
// The zero Pixel is black.
type Pixel struct {
	r, g, b uint8
	gray    uint8
	hex     string
}

// NewPixel returns the pixel with the given channels.
func NewPixel(r, g, b uint8) Pixel {
	return Pixel{
		r:    r,
		g:    g,
		b:    b,
		gray: uint8(ToGray(int(r), int(g), int(b))),
		hex:  RGBToHex(float64(r), float64(g), float64(b)),
	}
}

// GrayPixel returns the pixel with r = g = b = v.
func GrayPixel(v uint8) Pixel {
	return NewPixel(v, v, v)
}

// clampedPixel builds a pixel from already clamped channel values.
func clampedPixel(r, g, b int) Pixel {
	return NewPixel(uint8(r), uint8(g), uint8(b))
}

// R returns the red channel.
func (p Pixel) R() int { return int(p.r) }

// G returns the green channel.
func (p Pixel) G() int { return int(p.g) }

// B returns the blue channel.
func (p Pixel) B() int { return int(p.b) }

// Gray returns the perceptual luminance of the pixel.
func (p Pixel) Gray() int { return int(p.gray) }

// Hex returns the pixel as "#RRGGBB".
func (p Pixel) Hex() string {
	if p.hex == "" {
		return "#000000"
	}
	return p.hex
}

// RGB returns the channels as an RGB record.
func (p Pixel) RGB() RGB {
	return RGB{R: int(p.r), G: int(p.g), B: int(p.b)}
}

// IsLight reports whether dark text should be drawn over the pixel.
func (p Pixel) IsLight() bool {
	return IsLightColor(int(p.r), int(p.g), int(p.b))
}

// TextColor returns the readable text color for the pixel as a background.
func (p Pixel) TextColor() string {
	return ContrastTextColor(int(p.r), int(p.g), int(p.b))
}

// RGBA implements the color.Color interface. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.r)
	r |= r << 8
	g = uint32(p.g)
	g |= g << 8
	b = uint32(p.b)
	b |= b << 8
	return r, g, b, 0xffff
}

// Equal reports whether p and q have the same channels.
func (p Pixel) Equal(q Pixel) bool {
	return p.r == q.r && p.g == q.g && p.b == q.b
}

// channel returns the value of c for this pixel.
func (p Pixel) channel(c channel) int {
	switch c {
	case chanR:
		return int(p.r)
	case chanG:
		return int(p.g)
	case chanB:
		return int(p.b)
	default:
		return int(p.gray)
	}
}

func (p Pixel) String() string {
	return fmt.Sprintf("%s(gray=%d)", p.Hex(), p.gray)
}
