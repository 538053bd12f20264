// Package conv provides safe integer type conversion utilities.
//
// Positions and capacities are plain ints in the public API, while offsets
// inside variable-width segments are int32 and null bitmaps index with
// uint32. These helpers guard those boundaries.
//
// For conversions that are provably safe by construction (for example a
// position already validated against growth.MaxSize), use direct casts.
package conv
