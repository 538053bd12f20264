// Package bounds provides overflow-safe range validation.
package bounds

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is matched by every *Error via errors.Is.
var ErrOutOfBounds = errors.New("index out of bounds")

// Error describes a range [Index, Index+Size) that does not fit in Length.
type Error struct {
	Index  int
	Size   int
	Length int
}

func (e *Error) Error() string {
	return fmt.Sprintf("range [%d, %d + %d) out of bounds for length %d", e.Index, e.Index, e.Size, e.Length)
}

// Is reports whether target is ErrOutOfBounds.
func (e *Error) Is(target error) bool { return target == ErrOutOfBounds }

// Check validates that [index, index+size) lies within [0, length).
func Check(index, size, length int) error {
	if (index|size|length) < 0 || size > length-index {
		return &Error{Index: index, Size: size, Length: length}
	}
	return nil
}

// CheckPosition validates a single readable position against a logical length.
func CheckPosition(position, length int) error {
	if position < 0 || position >= length {
		return &Error{Index: position, Size: 1, Length: length}
	}
	return nil
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on overflow.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckElements validates that count elements of elemSize bytes starting at
// byte offset index fit in length bytes. It returns the byte size of the run.
func CheckElements(index, count, elemSize, length int) (int, error) {
	n, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, &Error{Index: index, Size: math.MaxInt, Length: length}
	}
	if err := Check(index, n, length); err != nil {
		return 0, err
	}
	return n, nil
}
