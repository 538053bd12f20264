package colmem

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colmem/buffer"
	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/bounds"
	"github.com/hupe1980/colmem/resource"
)

var (
	// ErrOutOfBounds is returned when an index or range falls outside a
	// buffer or past the length of a segment.
	ErrOutOfBounds = bounds.ErrOutOfBounds

	// ErrTooLarge is returned when a requested capacity exceeds growth.MaxSize.
	ErrTooLarge = growth.ErrTooLarge

	// ErrCannotGrow is returned when storage is already at growth.MaxSize.
	ErrCannotGrow = growth.ErrCannotGrow

	// ErrNegativeSize is returned for negative buffer sizes.
	ErrNegativeSize = buffer.ErrNegativeSize

	// ErrMemoryLimitExceeded is returned when growth would exceed the memory budget.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrInvalidColumnName is returned for an empty column name.
	ErrInvalidColumnName = errors.New("colmem: invalid column name")
)

// ErrDuplicateColumn indicates that a column name is already registered.
type ErrDuplicateColumn struct {
	Name string
}

func (e *ErrDuplicateColumn) Error() string {
	return fmt.Sprintf("colmem: duplicate column %q", e.Name)
}
