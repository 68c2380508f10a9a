package convolve

import (
	"fmt"
	"math"
	"strings"
)

// Luma weights (ITU-R BT.601). Green is weighted highest because human
// vision is most sensitive to it.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// ToGray returns the perceptual luminance of an RGB triple,
// round(0.299r + 0.587g + 0.114b). Inputs are not clamped; for channels
// in [0, 255] the result is in [0, 255].
func ToGray(r, g, b int) int {
	return int(math.Round(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)))
}

// ClampPixelValue restricts v to [0, 255] and rounds it to the nearest
// integer. NaN maps to 0.
func ClampPixelValue(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Min(255, math.Max(0, v))))
}

// RGBToHex formats a color as "#RRGGBB" with uppercase digits.
// Out-of-range or fractional channels are clamped and rounded.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", ClampPixelValue(r), ClampPixelValue(g), ClampPixelValue(b))
}

// HexToRGB parses a 6-digit hex color with or without a leading '#'.
//
// The parser is permissive: a string of the wrong length yields NaN for
// all three channels, and a 2-digit group containing a non-hex character
// yields NaN for that channel. Use ParseHex to validate.
func HexToRGB(hex string) (r, g, b float64) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	return hexGroup(hex[0:2]), hexGroup(hex[2:4]), hexGroup(hex[4:6])
}

// hexGroup parses a 2-digit group, returning NaN on a bad digit.
func hexGroup(s string) float64 {
	v, ok := parseHex(s)
	if !ok {
		return math.NaN()
	}
	return float64(v)
}

// ParseHex is the strict counterpart of HexToRGB.
// Supports "RGB" and "RRGGBB", each with an optional leading '#'.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	var parts [3]string
	switch len(s) {
	case 3:
		for i := range parts {
			parts[i] = strings.Repeat(s[i:i+1], 2)
		}
	case 6:
		for i := range parts {
			parts[i] = s[i*2 : i*2+2]
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	var out [3]int
	for i, p := range parts {
		v, ok := parseHex(p)
		if !ok {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		out[i] = v
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// parseHex parses a string of hex digits. ok is false on any non-hex digit.
func parseHex(s string) (val int, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += int(c - '0')
		case 'a' <= c && c <= 'f':
			val += int(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += int(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, len(s) > 0
}

// IsLightColor reports whether the perceived brightness
// (299r + 587g + 114b) / 1000 exceeds 128.
func IsLightColor(r, g, b int) bool {
	return float64(299*r+587*g+114*b)/1000 > 128
}

// Text colors returned by ContrastTextColor.
const (
	TextBlack = "#000000"
	TextWhite = "#FFFFFF"
)

// ContrastTextColor returns black for light backgrounds and white otherwise.
func ContrastTextColor(r, g, b int) string {
	if IsLightColor(r, g, b) {
		return TextBlack
	}
	return TextWhite
}
