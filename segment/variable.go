package segment

import (
	"fmt"

	"github.com/hupe1980/colmem/buffer"
	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/bitvec"
	"github.com/hupe1980/colmem/internal/bounds"
	"github.com/hupe1980/colmem/internal/conv"
	"github.com/hupe1980/colmem/memsize"
)

// offsetSize is the per-position cost of the offsets array.
const offsetSize = 4

// VariableWidth is a segment of byte strings.
//
// Entry i occupies payload[offsets[i]:offsets[i+1]]. Nulls are stored as
// zero-length entries with the null flag set.
type VariableWidth struct {
	core
	offsets []int32 // capacity+1 entries once allocated
	payload *buffer.Buffer
	size    int // payload bytes in use
}

// NewVariableWidth creates an empty segment. Storage is allocated on first
// append.
func NewVariableWidth(opts ...Option) *VariableWidth {
	s := &VariableWidth{
		core:    newCore("bytes", opts),
		payload: buffer.Empty(),
	}
	s.attach(s.retainedFor(0, s.payload))
	return s
}

// AppendBytes appends a copy of v.
func (s *VariableWidth) AppendBytes(v []byte) error {
	if len(v) > growth.MaxSize-s.size {
		return fmt.Errorf("%w: %s payload cannot hold %d more bytes", ErrTooLarge, s.kind, len(v))
	}
	end := s.size + len(v)
	offset, err := conv.IntToInt32(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTooLarge, err)
	}
	if err := s.ensure(s.position + 1); err != nil {
		return err
	}
	if err := s.ensurePayload(end); err != nil {
		return err
	}
	copy(s.payload.Bytes()[s.size:end], v)
	s.payload.Touch()
	s.size = end
	s.offsets[s.position+1] = offset
	s.advance(false, int64(offsetSize+1+len(v)))
	return nil
}

// AppendString appends the bytes of v.
func (s *VariableWidth) AppendString(v string) error {
	return s.AppendBytes([]byte(v))
}

// AppendNull appends a null at the current position.
func (s *VariableWidth) AppendNull() error {
	if err := s.ensure(s.position + 1); err != nil {
		return err
	}
	s.offsets[s.position+1] = s.offsets[s.position]
	s.advance(true, offsetSize+1)
	return nil
}

// Get returns a zero-copy view of the entry at position. Nulls return an
// empty buffer. The view stays valid after further appends but is not
// updated by them.
func (s *VariableWidth) Get(position int) (*buffer.Buffer, error) {
	if err := bounds.CheckPosition(position, s.position); err != nil {
		return nil, err
	}
	start, end := int(s.offsets[position]), int(s.offsets[position+1])
	return s.payload.Slice(start, end-start)
}

// GetBytes returns a copy of the entry at position.
func (s *VariableWidth) GetBytes(position int) ([]byte, error) {
	b, err := s.Get(position)
	if err != nil {
		return nil, err
	}
	return b.CopyBytes(), nil
}

// GetString returns the entry at position as a string.
func (s *VariableWidth) GetString(position int) (string, error) {
	b, err := s.Get(position)
	if err != nil {
		return "", err
	}
	return string(b.Bytes()), nil
}

// PayloadSize returns the number of payload bytes in use.
func (s *VariableWidth) PayloadSize() int {
	return s.size
}

// PayloadCap returns the allocated payload size in bytes.
func (s *VariableWidth) PayloadCap() int {
	return s.payload.Len()
}

// Grow ensures capacity for at least minCapacity positions.
func (s *VariableWidth) Grow(minCapacity int) error {
	if err := validateCapacity(s.kind, minCapacity); err != nil {
		return err
	}
	return s.ensure(minCapacity)
}

// Reset discards all positions and storage and releases the memory
// reservation.
func (s *VariableWidth) Reset() {
	s.offsets = nil
	s.payload = buffer.Empty()
	s.size = 0
	s.reset(s.retainedFor(0, s.payload))
}

// RetainedSize implements memsize.Sizer.
func (s *VariableWidth) RetainedSize() int64 {
	return s.retainedFor(s.capacity, s.payload)
}

func (s *VariableWidth) retainedFor(capacity int, payload *buffer.Buffer) int64 {
	size := memsize.Of[VariableWidth]() + bitvec.SizeFor(capacity) + payload.RetainedSize()
	if capacity > 0 {
		size += int64(capacity+1) * offsetSize
	}
	return size
}

func (s *VariableWidth) ensure(required int) error {
	if required <= s.capacity {
		return nil
	}

	newCapacity, err := s.nextCapacity(required)
	if err != nil {
		return err
	}

	e := s.event(s.kind, s.capacity, newCapacity, s.retainedFor(newCapacity, s.payload))
	if err := s.reserve(e); err != nil {
		return err
	}

	offsets := make([]int32, newCapacity+1)
	copy(offsets, s.offsets)
	s.offsets = offsets
	s.setCapacity(newCapacity)
	s.publish(e)
	return nil
}

// ensurePayload makes room for required payload bytes. The first allocation
// is sized by the expected entries and bytes per entry.
func (s *VariableWidth) ensurePayload(required int) error {
	if required <= s.payload.Len() {
		return nil
	}

	var (
		grown *buffer.Buffer
		err   error
	)
	if s.payload.Len() == 0 {
		hint, ok := bounds.MulOverflowSafe(max(s.opts.expectedEntries, 1), s.opts.expectedBytesPerEntry)
		if !ok {
			hint = growth.MaxSize
		}
		grown, err = buffer.Allocate(max(min(hint, growth.MaxSize), required), buffer.WithPolicy(s.opts.policy))
	} else {
		grown, err = s.payload.EnsureSize(required)
	}
	if err != nil {
		return fmt.Errorf("segment: grow %s payload: %w", s.kind, err)
	}

	e := s.event(s.kind+" payload", s.payload.Len(), grown.Len(), s.retainedFor(s.capacity, grown))
	if err := s.reserve(e); err != nil {
		return err
	}

	s.payload = grown
	s.publish(e)
	return nil
}

func (s *VariableWidth) String() string {
	return fmt.Sprintf(
		"Segment{kind: %s, len: %d, cap: %d, nulls: %d, payload: %d/%d B, retained: %d B}",
		s.kind,
		s.position,
		s.capacity,
		s.NullCount(),
		s.size,
		s.payload.Len(),
		s.RetainedSize(),
	)
}

var _ Segment = (*VariableWidth)(nil)
