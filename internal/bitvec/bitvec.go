// Package bitvec provides a growable bit vector with an explicit capacity.
//
// Segments keep one bit per position to record null presence. The vector is
// grown in lockstep with the segment's value storage, so a bit exists for
// every allocated slot and newly exposed bits are always clear.
//
// Vector is not safe for concurrent mutation.
package bitvec

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/colmem/memsize"
)

// Vector is a bit vector with an explicit bit capacity and a cached
// population count.
type Vector struct {
	bits *bitset.BitSet
	n    int // capacity in bits
	set  int // number of set bits
}

// New creates a vector able to hold n bits.
func New(n int) *Vector {
	n = max(n, 0)
	return &Vector{
		bits: bitset.New(uint(n)),
		n:    n,
	}
}

func wordsFor(n int) int {
	return (n + 63) >> 6
}

// Grow ensures the vector can hold at least n bits. Existing bits are kept,
// new bits are clear. Grow never shrinks.
func (v *Vector) Grow(n int) {
	if n <= v.n {
		return
	}
	if wordsFor(n) > wordsFor(v.n) {
		grown := bitset.New(uint(n))
		for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
			grown.Set(i)
		}
		v.bits = grown
	}
	v.n = n
}

// Len returns the bit capacity.
func (v *Vector) Len() int {
	return v.n
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	return v.set
}

// Set sets bit i. Indices outside the capacity are ignored.
func (v *Vector) Set(i int) {
	if i < 0 || i >= v.n {
		return
	}
	if !v.bits.Test(uint(i)) {
		v.bits.Set(uint(i))
		v.set++
	}
}

// Clear clears bit i. Indices outside the capacity are ignored.
func (v *Vector) Clear(i int) {
	if i < 0 || i >= v.n {
		return
	}
	if v.bits.Test(uint(i)) {
		v.bits.Clear(uint(i))
		v.set--
	}
}

// Test reports whether bit i is set.
func (v *Vector) Test(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}
	return v.bits.Test(uint(i))
}

// ForEach calls fn for every set bit below limit, in ascending order,
// until fn returns false.
func (v *Vector) ForEach(limit int, fn func(i int) bool) {
	limit = min(limit, v.n)
	if limit <= 0 {
		return
	}
	for i, ok := v.bits.NextSet(0); ok && int(i) < limit; i, ok = v.bits.NextSet(i + 1) { //nolint:gosec // i < v.n
		if !fn(int(i)) { //nolint:gosec // i < v.n
			return
		}
	}
}

// Reset clears every bit and keeps the capacity.
func (v *Vector) Reset() {
	v.bits.ClearAll()
	v.set = 0
}

// RetainedSize implements memsize.Sizer.
func (v *Vector) RetainedSize() int64 {
	return SizeFor(v.n)
}

// SizeFor returns the retained size of a vector of n bits.
func SizeFor(n int) int64 {
	return memsize.Of[Vector]() + memsize.Of[bitset.BitSet]() + int64(wordsFor(n))*8
}

var _ memsize.Sizer = (*Vector)(nil)
