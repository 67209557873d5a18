package palette

import (
	"errors"
	"fmt"
)

// Sentinel errors for the palette core. Callers match with errors.Is.
var (
	// ErrInvalidArgument is returned for empty required arguments and
	// unrecognized sort orders.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a palette file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedFormat is returned when no codec is registered for
	// a requested file.
	ErrUnsupportedFormat = errors.New("unsupported palette format")

	// ErrIndexOutOfRange is returned by index-based accessors and
	// mutators called with an index outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// indexError wraps ErrIndexOutOfRange with the offending index and the
// collection length at the time of the call.
func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
