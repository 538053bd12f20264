// Package mem provides raw memory utilities for buffer storage.
//
// # Aligned Allocation
//
// AllocAligned returns byte slices whose first element sits on a 64-byte
// boundary (one cache line). Typed views over aligned storage never straddle
// a line at offset zero, and 8-byte chunk transfers start aligned.
//
// # Typed Views
//
// AsBytes reinterprets a slice of fixed-size elements as its raw bytes in
// native byte order, enabling bulk transfers with a plain copy instead of
// per-element conversion.
package mem
