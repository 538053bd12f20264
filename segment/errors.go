package segment

import (
	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/bounds"
)

var (
	// ErrOutOfBounds is returned when reading a position at or past Len.
	ErrOutOfBounds = bounds.ErrOutOfBounds

	// ErrTooLarge is returned when a segment would exceed growth.MaxSize entries.
	ErrTooLarge = growth.ErrTooLarge
)
