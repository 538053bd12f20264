package buffer

import (
	"errors"

	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/bounds"
)

var (
	// ErrOutOfBounds is returned when an index or length falls outside the buffer.
	ErrOutOfBounds = bounds.ErrOutOfBounds

	// ErrTooLarge is returned when a requested capacity exceeds growth.MaxSize.
	ErrTooLarge = growth.ErrTooLarge

	// ErrNegativeSize is returned for negative capacities or sizes.
	ErrNegativeSize = errors.New("buffer: negative size")

	// ErrShortRead is returned when a reader ends before the requested bytes arrive.
	ErrShortRead = errors.New("buffer: short read")
)

// BoundsError is the concrete error returned for out-of-range accesses.
type BoundsError = bounds.Error
