// Package buffer provides a bounds-checked view over a contiguous byte region.
//
// A Buffer either owns its backing storage (Allocate, Wrap, Copy, EnsureSize)
// or borrows it from a parent (Slice). Views created by Slice share the
// parent's storage handle, so a write through one view is visible through
// every co-resident view. Callers that need isolation use Copy.
//
// # Typed Access
//
// Multi-byte values are read and written in the platform's native byte
// order. This is a layout choice, not a wire format: buffers built on
// different architectures are not guaranteed to be bit-compatible.
//
//	buf, _ := buffer.Allocate(4)
//	_ = buf.SetInt32(0, 0x01020304)
//	v, _ := buf.Int32(0) // 0x01020304
//
// Bulk accessors (Int32s, SetInt32s, ...) move raw memory with a plain copy,
// split into the largest 8-byte-multiple prefix and a remainder.
//
// # Growth
//
// EnsureSize never mutates the receiver. It returns either the receiver
// (already large enough) or a new Buffer sized by the growth policy, holding
// a copy of the existing bytes followed by a zeroed tail:
//
//	buf, err = buf.EnsureSize(n) // always rebind
//
// # Memory Accounting
//
// RetainedSize reports the instance overhead plus the backing array: the
// capacity of a wrapped slice, or the full allocation (alignment slack
// included) of storage the package allocates itself. Slices report their
// parent's value instead of recomputing it, so N live views over one array
// are not double-counted.
//
// # Concurrency
//
// Buffers have no internal locking. One writer at a time; concurrent readers
// are safe only after mutation has stopped. Hash caches its result on first
// use and therefore counts as a write. Every setter bumps a write generation
// shared by all views of the same storage, so a cached hash never outlives a
// write made through another view.
package buffer
