package convolve

import (
	"fmt"
	"strings"
)

// EdgePolicy decides what happens to kernel samples that fall outside
// the grid when the kernel is centered near a border.
type EdgePolicy uint8

const (
	// EdgePassthrough copies the input pixel to the output unchanged
	// whenever any part of its receptive field is outside the grid.
	// It is the default, so borders never turn artificially black.
	EdgePassthrough EdgePolicy = iota

	// EdgePadZero treats out-of-bounds samples as value 0.
	EdgePadZero

	// EdgeMirror reflects an out-of-bounds index back across the
	// boundary without repeating the edge sample: -1 maps to 1 and
	// n maps to n-2.
	EdgeMirror

	// EdgeClamp uses the nearest edge sample for out-of-bounds indices.
	EdgeClamp
)

// String returns the policy name.
func (e EdgePolicy) String() string {
	switch e {
	case EdgePassthrough:
		return "passthrough"
	case EdgePadZero:
		return "pad-zero"
	case EdgeMirror:
		return "mirror"
	case EdgeClamp:
		return "clamp"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(e))
	}
}

// IsValid reports whether e is a known policy.
func (e EdgePolicy) IsValid() bool {
	return e <= EdgeClamp
}

// ParseEdgePolicy parses a policy name, case-insensitively.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passthrough", "skip", "":
		return EdgePassthrough, nil
	case "pad-zero", "zero", "pad":
		return EdgePadZero, nil
	case "mirror", "reflect":
		return EdgeMirror, nil
	case "clamp", "extend", "replicate":
		return EdgeClamp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEdgePolicy, s)
	}
}

// resolve maps index i on an axis of length n to an in-bounds index.
// ok is false when the policy supplies no source sample: for
// EdgePadZero the sample is 0, for EdgePassthrough the whole output
// pixel is copied through.
func (e EdgePolicy) resolve(i, n int) (idx int, ok bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch e {
	case EdgeMirror:
		return mirrorIndex(i, n), true
	case EdgeClamp:
		return clampInt(i, 0, n-1), true
	default:
		return 0, false
	}
}

// mirrorIndex reflects i into [0, n) as often as needed, so kernels
// larger than the grid are well defined.
func mirrorIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
