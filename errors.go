package convolve

import (
	"errors"
	"fmt"
)

// Errors returned by the engine and the grid constructors.
var (
	// ErrInvalidKernelShape is returned when a kernel is empty, ragged,
	// not square, or has an even side length.
	ErrInvalidKernelShape = errors.New("convolve: invalid kernel shape")

	// ErrDivisionByZero is returned when a kernel divisor is zero or NaN.
	ErrDivisionByZero = errors.New("convolve: division by zero")

	// ErrOutOfBounds is returned when a grid position is outside the grid.
	ErrOutOfBounds = errors.New("convolve: position out of bounds")

	// ErrInvalidDimensions is returned for empty or ragged matrices,
	// non-positive sizes and nil grids.
	ErrInvalidDimensions = errors.New("convolve: invalid dimensions")

	// ErrChannelRange is returned when a channel value is outside [0, 255].
	ErrChannelRange = errors.New("convolve: channel value out of range")

	// ErrInvalidHex is returned by ParseHex for malformed hex strings.
	ErrInvalidHex = errors.New("convolve: invalid hex color")

	// ErrUnknownEdgePolicy is returned for an unrecognized edge policy.
	ErrUnknownEdgePolicy = errors.New("convolve: unknown edge policy")

	// ErrUnknownChannelMode is returned for an unrecognized channel mode.
	ErrUnknownChannelMode = errors.New("convolve: unknown channel mode")
)

var userMessages = []struct {
	err error
	msg string
}{
	{ErrInvalidKernelShape, "kernel size must be odd and square"},
	{ErrDivisionByZero, "divisor must not be zero"},
	{ErrOutOfBounds, "position is outside the grid"},
	{ErrInvalidDimensions, "grid must be a non-empty rectangle"},
	{ErrChannelRange, "pixel values must be between 0 and 255"},
	{ErrInvalidHex, "color must be a hex value like #1A2B3C"},
	{ErrUnknownEdgePolicy, "edge policy must be passthrough, pad-zero, mirror or clamp"},
	{ErrUnknownChannelMode, "channel mode must be color or gray"},
}

// UserMessage returns a short validation message suitable for showing
// to a user in place of err. Errors outside the package taxonomy are
// returned as err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}

func outOfBounds(row, col, rows, cols int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, rows, cols)
}
