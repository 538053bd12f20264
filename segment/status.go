package segment

import (
	"fmt"

	"github.com/hupe1980/colmem/memsize"
)

// Status collects the footprint of a group of segments.
//
// It is advisory: engines consult it for memory-limit and spill heuristics,
// not for exact accounting. A nil *Status is valid and ignores all updates.
type Status struct {
	bytesUsed  int64
	memoryUsed int64
	hasNull    bool
	hasNonNull bool
	segments   int
}

// NewStatus returns an empty Status.
func NewStatus() *Status {
	return &Status{}
}

// AddBytes adds n bytes of logical footprint.
func (s *Status) AddBytes(n int64) {
	if s == nil {
		return
	}
	s.bytesUsed += n
}

// BytesUsed returns the logical footprint of all appended positions.
func (s *Status) BytesUsed() int64 {
	if s == nil {
		return 0
	}
	return s.bytesUsed
}

// AdjustMemory applies a change in retained size reported by one segment.
func (s *Status) AdjustMemory(delta int64) {
	if s == nil {
		return
	}
	s.memoryUsed += delta
}

// MemoryUsed returns the sum of the retained sizes of all attached segments.
func (s *Status) MemoryUsed() int64 {
	if s == nil {
		return 0
	}
	return s.memoryUsed
}

// MarkNull records that a null was appended.
func (s *Status) MarkNull() {
	if s != nil {
		s.hasNull = true
	}
}

// MarkNonNull records that a value was appended.
func (s *Status) MarkNonNull() {
	if s != nil {
		s.hasNonNull = true
	}
}

// HasNull reports whether any attached segment received a null.
func (s *Status) HasNull() bool {
	return s != nil && s.hasNull
}

// HasNonNull reports whether any attached segment received a value.
func (s *Status) HasNonNull() bool {
	return s != nil && s.hasNonNull
}

// Segments returns the number of attached segments.
func (s *Status) Segments() int {
	if s == nil {
		return 0
	}
	return s.segments
}

func (s *Status) attach() {
	if s != nil {
		s.segments++
	}
}

// RetainedSize implements memsize.Sizer.
func (s *Status) RetainedSize() int64 {
	return memsize.Of[Status]()
}

func (s *Status) String() string {
	if s == nil {
		return "Status{}"
	}
	return fmt.Sprintf(
		"Status{segments: %d, bytes: %d B, memory: %d B, null: %t, nonNull: %t}",
		s.segments,
		s.bytesUsed,
		s.memoryUsed,
		s.hasNull,
		s.hasNonNull,
	)
}

var _ memsize.Sizer = (*Status)(nil)
