// Package growth provides pluggable capacity growth policies.
//
// A Policy maps a capacity requirement to the next storage capacity. Buffers
// and segments are parameterized over a Policy so alternate growth curves can
// be substituted without touching their code.
//
// # Default Policy
//
// Amortized grows by 50% with a floor of 64 entries:
//
//	next = max(64, current + current/2, required)
//
// The result is clamped to MaxSize. Once a capacity has reached MaxSize, any
// further growth fails with ErrCannotGrow. Requests above MaxSize fail with
// ErrTooLarge. Neither error is retryable.
//
// # Alternatives
//
//	growth.FixedIncrement{Step: 4096} // linear growth
//	growth.ExactFit{}                 // no slack
//	growth.GoldenRatio{}              // ~1.618x growth
//	growth.PolicyFunc(fn)             // ad-hoc curves
package growth
