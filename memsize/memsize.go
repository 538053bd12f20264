// Package memsize provides best-effort memory footprint accounting.
//
// Retained sizes are estimates: payload capacity plus fixed per-object
// overhead. They are meant for admission control and spill heuristics,
// never for exact resident-memory figures.
package memsize

import "unsafe"

// Sizer is implemented by every component that reports its own footprint.
type Sizer interface {
	// RetainedSize returns the estimated number of bytes retained by the value.
	RetainedSize() int64
}

// SliceHeader is the size of a slice header (pointer, len, cap).
const SliceHeader = int64(unsafe.Sizeof([]byte(nil)))

// Of returns the instance size of T, excluding anything T points to.
func Of[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// OfBytes returns the retained size of a byte slice's backing array.
func OfBytes(b []byte) int64 {
	return int64(cap(b))
}

// OfSlice returns the retained size of a slice's backing array.
func OfSlice[T any](s []T) int64 {
	return int64(cap(s)) * Of[T]()
}

// Sum adds the retained sizes of all non-nil sizers.
func Sum(sizers ...Sizer) int64 {
	var total int64
	for _, s := range sizers {
		if s != nil {
			total += s.RetainedSize()
		}
	}
	return total
}
