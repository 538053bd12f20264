package buffer

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/bounds"
	"github.com/hupe1980/colmem/internal/mem"
	"github.com/hupe1980/colmem/memsize"
)

// Hasher computes a 64-bit hash over a byte range.
type Hasher func(data []byte) uint64

// storage is the shared handle to a backing byte region. Every view over the
// same region points at the same storage, which carries the retained size
// computed once when the region was created and a write generation bumped by
// every mutation through any view.
type storage struct {
	data     []byte
	retained int64
	gen      uint64
}

// Buffer is a bounds-checked view over a contiguous byte region.
type Buffer struct {
	store   *storage
	offset  int
	size    int
	hash    uint64 // 0 means not yet computed
	hashGen uint64 // store.gen when hash was computed
	policy  growth.Policy
	hasher  Hasher
}

var instanceSize = memsize.Of[Buffer]() + memsize.Of[storage]()

var empty = &Buffer{
	store:  &storage{retained: instanceSize},
	policy: growth.Default,
	hasher: xxhash.Sum64,
}

// Empty returns the canonical zero-length buffer.
func Empty() *Buffer {
	return empty
}

type options struct {
	policy growth.Policy
	hasher Hasher
}

// Option configures a Buffer at construction time.
type Option func(*options)

// WithPolicy sets the growth policy used by EnsureSize.
// If nil is passed, growth.Default is used.
func WithPolicy(p growth.Policy) Option {
	return func(o *options) {
		o.policy = growth.Or(p)
	}
}

// WithHasher replaces the default xxHash64 hash function.
// Buffers compared with Equal should share a hasher to keep Hash consistent.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		policy: growth.Default,
		hasher: xxhash.Sum64,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newOwned(data []byte, retained int64, policy growth.Policy, hasher Hasher) *Buffer {
	return &Buffer{
		store: &storage{
			data:     data,
			retained: instanceSize + retained,
		},
		size:   len(data),
		policy: policy,
		hasher: hasher,
	}
}

// Allocate returns a zeroed buffer of the given capacity.
// A capacity of zero returns Empty().
func Allocate(capacity int, opts ...Option) (*Buffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity=%d", ErrNegativeSize, capacity)
	}
	if capacity == 0 {
		return empty, nil
	}
	if capacity > growth.MaxSize {
		return nil, fmt.Errorf("%w: cannot allocate buffer larger than %d bytes", ErrTooLarge, growth.MaxSize)
	}
	o := applyOptions(opts)
	return newAligned(capacity, o.policy, o.hasher), nil
}

// newAligned returns an owned buffer over fresh aligned storage of size bytes.
func newAligned(size int, policy growth.Policy, hasher Hasher) *Buffer {
	return newOwned(mem.AllocAligned(size), mem.AlignedSize(size), policy, hasher)
}

// Wrap returns a buffer over data without copying it.
// An empty slice returns Empty().
func Wrap(data []byte, opts ...Option) *Buffer {
	if len(data) == 0 {
		return empty
	}
	o := applyOptions(opts)
	return newOwned(data, memsize.OfBytes(data), o.policy, o.hasher)
}

// WrapRange returns a buffer over data[offset:offset+length] without copying.
// The retained size covers the whole of data.
func WrapRange(data []byte, offset, length int, opts ...Option) (*Buffer, error) {
	if err := bounds.Check(offset, length, len(data)); err != nil {
		return nil, err
	}
	if length == 0 {
		return empty, nil
	}
	b := Wrap(data, opts...)
	b.offset = offset
	b.size = length
	return b, nil
}

// Len returns the number of bytes in the view.
func (b *Buffer) Len() int {
	return b.size
}

// RetainedSize implements memsize.Sizer.
func (b *Buffer) RetainedSize() int64 {
	return b.store.retained
}

// IsCompact reports whether the view exactly covers its backing storage.
// Storage from Allocate, Copy and EnsureSize exposes no slack, so a compact
// view of it retains nothing beyond its own bytes and fixed overhead.
func (b *Buffer) IsCompact() bool {
	return b.offset == 0 && b.size == len(b.store.data)
}

// Policy returns the growth policy used by EnsureSize.
func (b *Buffer) Policy() growth.Policy {
	return b.policy
}

// Bytes returns the view's bytes. The result aliases the buffer; its
// capacity is clipped so appends never reach neighboring bytes. Writes made
// through the returned slice bypass hash invalidation; use the setters, or
// call Touch afterwards.
func (b *Buffer) Bytes() []byte {
	end := b.offset + b.size
	return b.store.data[b.offset:end:end]
}

// CopyBytes returns a copy of the view's bytes.
func (b *Buffer) CopyBytes() []byte {
	out := make([]byte, b.size)
	copy(out, b.Bytes())
	return out
}

// region returns the backing bytes for [index, index+size) after validation.
func (b *Buffer) region(index, size int) ([]byte, error) {
	if err := bounds.Check(index, size, b.size); err != nil {
		return nil, err
	}
	start := b.offset + index
	return b.store.data[start : start+size], nil
}

// Fill sets every byte of the view to value.
func (b *Buffer) Fill(value byte) {
	view := b.Bytes()
	for i := range view {
		view[i] = value
	}
	b.Touch()
}

// Clear zeroes the view.
func (b *Buffer) Clear() {
	clear(b.Bytes())
	b.Touch()
}

// Touch records a write to the shared storage, invalidating the cached hash
// of every view over it.
func (b *Buffer) Touch() {
	if b.size == 0 {
		return
	}
	b.store.gen++
}

// Slice returns a zero-copy view of [index, index+length). The view shares
// storage and retained size with b. A zero length returns Empty(); the full
// range returns b itself.
func (b *Buffer) Slice(index, length int) (*Buffer, error) {
	if index == 0 && length == b.size {
		return b, nil
	}
	if err := bounds.Check(index, length, b.size); err != nil {
		return nil, err
	}
	if length == 0 {
		return empty, nil
	}
	return &Buffer{
		store:  b.store,
		offset: b.offset + index,
		size:   length,
		policy: b.policy,
		hasher: b.hasher,
	}, nil
}

// Copy returns a buffer holding an independent copy of the view.
func (b *Buffer) Copy() *Buffer {
	if b.size == 0 {
		return empty
	}
	c := newAligned(b.size, b.policy, b.hasher)
	copy(c.store.data, b.Bytes())
	return c
}

// CopyRange returns an independent copy of [index, index+length).
func (b *Buffer) CopyRange(index, length int) (*Buffer, error) {
	src, err := b.region(index, length)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return empty, nil
	}
	c := newAligned(length, b.policy, b.hasher)
	copy(c.store.data, src)
	return c, nil
}

// EnsureSize returns a buffer of at least minWritableBytes bytes.
//
// If b is already large enough it is returned unchanged. Otherwise a new
// buffer is sized by the growth policy, the existing bytes are copied and the
// newly exposed tail is zero. The receiver is never modified.
func (b *Buffer) EnsureSize(minWritableBytes int) (*Buffer, error) {
	if minWritableBytes < 0 {
		return nil, fmt.Errorf("%w: minWritableBytes=%d", ErrNegativeSize, minWritableBytes)
	}
	if minWritableBytes <= b.size {
		return b, nil
	}

	newCapacity, err := b.policy.Grow(b.size, minWritableBytes)
	if err != nil {
		return nil, err
	}

	grown := newAligned(newCapacity, b.policy, b.hasher)
	copy(grown.store.data, b.Bytes())
	return grown, nil
}

// Compare compares the contents of b and other as unsigned bytes.
// It returns -1, 0 or +1.
func (b *Buffer) Compare(other *Buffer) int {
	if b == other {
		return 0
	}
	if other == nil {
		other = empty
	}
	return bytes.Compare(b.Bytes(), other.Bytes())
}

// CompareRange compares b[offset:offset+length] with
// other[otherOffset:otherOffset+otherLength] as unsigned bytes. A nil other
// is treated as Empty().
func (b *Buffer) CompareRange(offset, length int, other *Buffer, otherOffset, otherLength int) (int, error) {
	if other == nil {
		other = empty
	}
	left, err := b.region(offset, length)
	if err != nil {
		return 0, err
	}
	right, err := other.region(otherOffset, otherLength)
	if err != nil {
		return 0, err
	}
	if b == other && offset == otherOffset && length == otherLength {
		return 0, nil
	}
	return bytes.Compare(left, right), nil
}

// Equal reports whether b and other hold the same bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == other {
		return true
	}
	if other == nil || b.size != other.size {
		return false
	}
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// EqualRange reports whether two ranges hold the same bytes. Ranges of
// different length are never equal. A nil other is treated as Empty().
func (b *Buffer) EqualRange(offset, length int, other *Buffer, otherOffset, otherLength int) (bool, error) {
	if other == nil {
		other = empty
	}
	left, err := b.region(offset, length)
	if err != nil {
		return false, err
	}
	right, err := other.region(otherOffset, otherLength)
	if err != nil {
		return false, err
	}
	if length != otherLength {
		return false, nil
	}
	return bytes.Equal(left, right), nil
}

// Hash returns the 64-bit hash of the view's bytes. The value is cached until
// the shared storage is written through any view; a true hash of zero is
// recomputed on every call.
func (b *Buffer) Hash() uint64 {
	gen := b.store.gen
	if b.hash != 0 && b.hashGen == gen {
		return b.hash
	}
	h := b.hasher(b.Bytes())
	if b != empty {
		b.hash = h
		b.hashGen = gen
	}
	return h
}

// HashRange returns the hash of [offset, offset+length) without caching.
func (b *Buffer) HashRange(offset, length int) (uint64, error) {
	data, err := b.region(offset, length)
	if err != nil {
		return 0, err
	}
	return b.hasher(data), nil
}

func (b *Buffer) String() string {
	return fmt.Sprintf(
		"Buffer{len: %d, offset: %d, capacity: %d, compact: %t, retained: %d B}",
		b.size,
		b.offset,
		len(b.store.data),
		b.IsCompact(),
		b.store.retained,
	)
}

var _ memsize.Sizer = (*Buffer)(nil)
