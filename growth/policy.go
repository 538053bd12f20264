package growth

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMinCapacity is the smallest capacity returned by Amortized.
	DefaultMinCapacity = 64

	// MaxSize is the largest capacity any policy returns. Offsets inside
	// buffers and segments fit into int32 with room for a header.
	MaxSize = math.MaxInt32 - 8
)

var (
	// ErrCannotGrow is returned when the current capacity already equals MaxSize.
	ErrCannotGrow = errors.New("growth: cannot grow beyond max size")

	// ErrTooLarge is returned when a requested capacity exceeds MaxSize.
	ErrTooLarge = errors.New("growth: requested capacity too large")

	// ErrInvalidCapacity is returned for negative capacity arguments.
	ErrInvalidCapacity = errors.New("growth: invalid capacity")
)

// Policy computes the next storage capacity.
type Policy interface {
	// Grow returns a capacity >= required, given the current capacity.
	Grow(current, required int) (int, error)
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(current, required int) (int, error)

// Grow calls f(current, required).
func (f PolicyFunc) Grow(current, required int) (int, error) {
	return f(current, required)
}

// Default is the policy used when none is configured.
var Default Policy = Amortized{}

// Or returns p, or Default if p is nil.
func Or(p Policy) Policy {
	if p == nil {
		return Default
	}
	return p
}

// Validate checks the arguments shared by every policy.
func Validate(current, required int) error {
	if current < 0 || required < 0 {
		return fmt.Errorf("%w: current=%d required=%d", ErrInvalidCapacity, current, required)
	}
	if required > MaxSize {
		return fmt.Errorf("%w: %d exceeds %d", ErrTooLarge, required, MaxSize)
	}
	return nil
}

// Amortized grows capacity by 50% with a minimum of MinCapacity.
type Amortized struct {
	// MinCapacity is the floor for the returned capacity.
	// If 0, DefaultMinCapacity is used.
	MinCapacity int
}

// Grow implements Policy.
func (a Amortized) Grow(current, required int) (int, error) {
	if err := Validate(current, required); err != nil {
		return 0, err
	}

	minCap := a.MinCapacity
	if minCap <= 0 {
		minCap = DefaultMinCapacity
	}

	next := int64(current) + int64(current>>1)
	if next < int64(minCap) {
		next = int64(minCap)
	}
	return clamp(current, required, next)
}

// FixedIncrement grows capacity by a constant step.
type FixedIncrement struct {
	Step int
}

// Grow implements Policy.
func (f FixedIncrement) Grow(current, required int) (int, error) {
	if err := Validate(current, required); err != nil {
		return 0, err
	}
	step := f.Step
	if step <= 0 {
		step = DefaultMinCapacity
	}
	return clamp(current, required, int64(current)+int64(step))
}

// ExactFit returns exactly the required capacity.
type ExactFit struct{}

// Grow implements Policy.
func (ExactFit) Grow(current, required int) (int, error) {
	if err := Validate(current, required); err != nil {
		return 0, err
	}
	return clamp(current, required, int64(required))
}

// GoldenRatio grows capacity by a factor of ~1.618.
type GoldenRatio struct{}

// Grow implements Policy.
func (GoldenRatio) Grow(current, required int) (int, error) {
	if err := Validate(current, required); err != nil {
		return 0, err
	}
	next := int64(float64(current) * math.Phi)
	if next < DefaultMinCapacity {
		next = DefaultMinCapacity
	}
	return clamp(current, required, next)
}

// clamp applies the MaxSize ceiling and the required floor.
func clamp(current, required int, next int64) (int, error) {
	if next > MaxSize {
		next = MaxSize
		if current == MaxSize {
			return 0, fmt.Errorf("%w: %d", ErrCannotGrow, MaxSize)
		}
	}
	if next < int64(required) {
		next = int64(required)
	}
	return int(next), nil
}
