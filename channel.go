package convolve

import (
	"fmt"
	"strings"
)

// ChannelMode selects which values a kernel is applied to.
type ChannelMode uint8

const (
	// ChannelColor applies the kernel to R, G and B independently.
	ChannelColor ChannelMode = iota

	// ChannelGray applies the kernel to the gray scalar only. Output
	// pixels have r = g = b.
	ChannelGray
)

// String returns the mode name.
func (m ChannelMode) String() string {
	switch m {
	case ChannelColor:
		return "color"
	case ChannelGray:
		return "gray"
	default:
		return fmt.Sprintf("ChannelMode(%d)", uint8(m))
	}
}

// IsValid reports whether m is a known mode.
func (m ChannelMode) IsValid() bool {
	return m <= ChannelGray
}

// ParseChannelMode parses a mode name, case-insensitively.
func ParseChannelMode(s string) (ChannelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color", "colour", "rgb":
		return ChannelColor, nil
	case "gray", "grey", "grayscale":
		return ChannelGray, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownChannelMode, s)
	}
}

// channel identifies one sampled value of a pixel.
type channel uint8

const (
	chanR channel = iota
	chanG
	chanB
	chanGray
)

var (
	colorChannels = []channel{chanR, chanG, chanB}
	grayChannels  = []channel{chanGray}
)

// channels returns the values the mode samples.
func (m ChannelMode) channels() []channel {
	if m == ChannelGray {
		return grayChannels
	}
	return colorChannels
}
