// Package segment provides growable, null-aware column segments.
//
// A segment is an append-only, position-indexed array of values with a
// parallel null-presence vector. Fixed-width columns use the generic Fixed
// type (with aliases Int32, Float64, Bool, ...); byte strings use
// VariableWidth.
//
// # Growth
//
// Segments allocate lazily. The first append sizes storage to the expected
// entry count (WithExpectedEntries, default 1); every later growth follows the
// configured growth.Policy. Capacity never shrinks.
//
// An append either fully succeeds or leaves the segment unchanged: capacity
// is secured before anything is written, so a failed growth never advances
// the position.
//
// # Memory Accounting
//
// Segments built with a shared Status publish their footprint to it. Each
// segment reports the change in its own retained size, so Status.MemoryUsed
// is the sum of the retained sizes of every attached segment. With a
// resource.Controller attached, growth reserves the extra bytes first and is
// refused with resource.ErrMemoryLimitExceeded when the budget is exhausted.
//
// # Concurrency
//
// Segments and Status are not synchronized. A segment has one writer at a
// time; readers are safe once appends have stopped. Segments that share a
// Status and are mutated concurrently must be synchronized by the caller.
package segment
