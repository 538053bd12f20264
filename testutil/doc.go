// Package testutil provides testing utilities for colmem.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates column data:
// raw bytes, typed values and null masks.
//
// # Column Data Generation
//
//	rng := testutil.NewRNG(seed)
//	payload := rng.Bytes(4096)           // incompressible
//	text := rng.CompressibleBytes(4096)  // repetitive, compresses well
//	nulls := rng.NullMask(1000, 0.3)     // 30% nulls
package testutil
