package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of AllocAligned storage (one cache line).
const Alignment = 64

// ChunkSize is the transfer granularity of bulk copies.
const ChunkSize = 8

// Fixed is the set of element types with a fixed in-memory width.
type Fixed interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64
}

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte is 64-byte aligned. Length and capacity both equal size; the
// alignment slack of the backing array is not reachable through the slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+size]
}

// AlignedSize returns the bytes AllocAligned(size) actually allocates,
// alignment slack included.
func AlignedSize(size int) int64 {
	if size <= 0 {
		return 0
	}
	return int64(size) + Alignment
}

// IsAligned reports whether b starts on an Alignment boundary.
func IsAligned(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))&(Alignment-1) == 0 //nolint:gosec // unsafe is required for alignment checks
}

// AsBytes returns the raw bytes backing s. The result aliases s.
func AsBytes[T Fixed](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	n := len(s) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n) //nolint:gosec // unsafe is required for raw transfers
}

// CopyChunked copies src into dst as an 8-byte-multiple prefix followed by
// the remainder. It returns the number of bytes copied.
func CopyChunked(dst, src []byte) int {
	n := min(len(dst), len(src))
	bulk := n - n%ChunkSize
	copy(dst[:bulk], src[:bulk])
	copy(dst[bulk:n], src[bulk:n])
	return n
}
