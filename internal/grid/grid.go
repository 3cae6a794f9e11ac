// Package grid provides fixed-size square and cubic containers over any element type.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrOutOfBounds is matched by every BoundsError via errors.Is.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidSize is returned when a grid is created with a non-positive size.
	ErrInvalidSize = errors.New("grid: size must be positive")

	// ErrTooLarge is returned when the cell count would overflow int. It wraps ErrInvalidSize.
	ErrTooLarge = fmt.Errorf("%w: cell count overflows int", ErrInvalidSize)
)

// BoundsError reports an access outside [0, Size) on any axis.
type BoundsError struct {
	Coords []int
	Size   int
}

func (e *BoundsError) Error() string {
	parts := make([]string, len(e.Coords))
	for i, c := range e.Coords {
		parts[i] = strconv.Itoa(c)
	}
	return fmt.Sprintf("grid: coordinate (%s) out of bounds for size %d", strings.Join(parts, ", "), e.Size)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// IsOutOfBounds reports whether err is or wraps a BoundsError.
func IsOutOfBounds(err error) bool {
	return errors.Is(err, ErrOutOfBounds)
}

func inRange(size int, coords ...int) bool {
	for _, c := range coords {
		if c < 0 || c >= size {
			return false
		}
	}
	return true
}

// cellCount returns n^dims, rejecting non-positive sizes and products past math.MaxInt.
func cellCount(n, dims int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	cells := 1
	for i := 0; i < dims; i++ {
		if cells > math.MaxInt/n {
			return 0, fmt.Errorf("%w: size %d in %d dimensions", ErrTooLarge, n, dims)
		}
		cells *= n
	}
	return cells, nil
}
