package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) //nolint:gosec // deterministic test data
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n pseudo-random bytes. The result does not compress.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, n)
	_, _ = r.rand.Read(out)
	return out
}

// CompressibleBytes returns n bytes drawn from a small alphabet of words,
// similar to low-cardinality string columns.
func (r *RNG) CompressibleBytes(n int) []byte {
	words := [...]string{"null", "true", "false", "pending", "active", "closed", ","}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, 0, n+8)
	for len(out) < n {
		out = append(out, words[r.rand.Intn(len(words))]...)
	}
	return out[:n]
}

// Int32s returns n pseudo-random int32 values, including negatives.
func (r *RNG) Int32s(n int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.rand.Uint32()) //nolint:gosec // bit reinterpretation
	}
	return out
}

// Float64s returns n pseudo-random values from the standard normal distribution.
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.NormFloat64()
	}
	return out
}

// NullMask generates n null flags.
// nullRate is the probability that a position is null (0.3 = 30% null).
func (r *RNG) NullMask(n int, nullRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	null := make([]bool, n)
	for i := 0; i < n; i++ {
		null[i] = r.rand.Float64() < nullRate
	}
	return null
}
