// Package resource provides admission control for column memory.
//
// A Controller tracks memory reserved by segments as they grow. When a hard
// limit is configured, growth that would exceed it is refused immediately
// with ErrMemoryLimitExceeded instead of blocking the appending goroutine.
// The controller also carries an optional IO rate limit that is applied to
// the readers and writers used at the Buffer stream boundary.
//
// All methods are safe on a nil *Controller, which behaves as unlimited and
// untracked.
package resource
