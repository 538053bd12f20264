package segment

import (
	"fmt"

	"github.com/hupe1980/colmem/internal/bitvec"
	"github.com/hupe1980/colmem/internal/bounds"
	"github.com/hupe1980/colmem/memsize"
)

// Value is the set of element types a Fixed segment can hold.
type Value interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64
}

// Fixed is a segment of fixed-width values.
type Fixed[T Value] struct {
	core
	values []T
}

// Aliases for the common column types.
type (
	Int8    = Fixed[int8]
	Byte    = Fixed[byte]
	Int16   = Fixed[int16]
	Int32   = Fixed[int32]
	Int64   = Fixed[int64]
	Float32 = Fixed[float32]
	Float64 = Fixed[float64]
	Bool    = Fixed[bool]
)

// NewFixed creates an empty segment. Storage is allocated on first append.
func NewFixed[T Value](opts ...Option) *Fixed[T] {
	var zero T
	s := &Fixed[T]{core: newCore(fmt.Sprintf("%T", zero), opts)}
	s.attach(s.retainedFor(0))
	return s
}

// NewInt8 creates an int8 segment.
func NewInt8(opts ...Option) *Int8 { return NewFixed[int8](opts...) }

// NewByte creates a byte segment.
func NewByte(opts ...Option) *Byte { return NewFixed[byte](opts...) }

// NewInt16 creates an int16 segment.
func NewInt16(opts ...Option) *Int16 { return NewFixed[int16](opts...) }

// NewInt32 creates an int32 segment.
func NewInt32(opts ...Option) *Int32 { return NewFixed[int32](opts...) }

// NewInt64 creates an int64 segment.
func NewInt64(opts ...Option) *Int64 { return NewFixed[int64](opts...) }

// NewFloat32 creates a float32 segment.
func NewFloat32(opts ...Option) *Float32 { return NewFixed[float32](opts...) }

// NewFloat64 creates a float64 segment.
func NewFloat64(opts ...Option) *Float64 { return NewFixed[float64](opts...) }

// NewBool creates a bool segment.
func NewBool(opts ...Option) *Bool { return NewFixed[bool](opts...) }

// SizePerPosition returns the logical bytes of one position: the value plus
// its null flag.
func (s *Fixed[T]) SizePerPosition() int {
	return int(memsize.Of[T]()) + 1
}

// Append stores v at the current position and advances it.
func (s *Fixed[T]) Append(v T) error {
	if err := s.ensure(s.position + 1); err != nil {
		return err
	}
	s.values[s.position] = v
	s.advance(false, int64(s.SizePerPosition()))
	return nil
}

// AppendNull appends a null at the current position.
func (s *Fixed[T]) AppendNull() error {
	if err := s.ensure(s.position + 1); err != nil {
		return err
	}
	var zero T
	s.values[s.position] = zero
	s.advance(true, int64(s.SizePerPosition()))
	return nil
}

// AppendSlice appends all of vs. Either every value is appended or none.
func (s *Fixed[T]) AppendSlice(vs []T) error {
	if len(vs) == 0 {
		return nil
	}
	if err := s.ensure(s.position + len(vs)); err != nil {
		return err
	}
	copy(s.values[s.position:], vs)
	footprint := int64(s.SizePerPosition())
	for range vs {
		s.advance(false, footprint)
	}
	return nil
}

// Get returns the value at position. The result is unspecified for nulls.
func (s *Fixed[T]) Get(position int) (T, error) {
	if err := bounds.CheckPosition(position, s.position); err != nil {
		var zero T
		return zero, err
	}
	return s.values[position], nil
}

// Values returns the appended values. The slice aliases the segment and
// entries at null positions are unspecified.
func (s *Fixed[T]) Values() []T {
	return s.values[:s.position:s.position]
}

// Grow ensures capacity for at least minCapacity positions.
func (s *Fixed[T]) Grow(minCapacity int) error {
	if err := validateCapacity(s.kind, minCapacity); err != nil {
		return err
	}
	return s.ensure(minCapacity)
}

// Reset discards all positions and storage and releases the memory
// reservation.
func (s *Fixed[T]) Reset() {
	s.values = nil
	s.reset(s.retainedFor(0))
}

// RetainedSize implements memsize.Sizer.
func (s *Fixed[T]) RetainedSize() int64 {
	return s.retainedFor(s.capacity)
}

func (s *Fixed[T]) retainedFor(capacity int) int64 {
	return memsize.Of[Fixed[T]]() +
		int64(capacity)*memsize.Of[T]() +
		bitvec.SizeFor(capacity)
}

func (s *Fixed[T]) ensure(required int) error {
	if required <= s.capacity {
		return nil
	}

	newCapacity, err := s.nextCapacity(required)
	if err != nil {
		return err
	}

	e := s.event(s.kind, s.capacity, newCapacity, s.retainedFor(newCapacity))
	if err := s.reserve(e); err != nil {
		return err
	}

	values := make([]T, newCapacity)
	copy(values, s.values[:s.position])
	s.values = values
	s.setCapacity(newCapacity)
	s.publish(e)
	return nil
}

func (s *Fixed[T]) String() string {
	return fmt.Sprintf(
		"Segment{kind: %s, len: %d, cap: %d, nulls: %d, retained: %d B}",
		s.kind,
		s.position,
		s.capacity,
		s.NullCount(),
		s.RetainedSize(),
	)
}

var (
	_ Segment = (*Int8)(nil)
	_ Segment = (*Byte)(nil)
	_ Segment = (*Int16)(nil)
	_ Segment = (*Int32)(nil)
	_ Segment = (*Int64)(nil)
	_ Segment = (*Float32)(nil)
	_ Segment = (*Float64)(nil)
	_ Segment = (*Bool)(nil)
)
