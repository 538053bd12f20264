package segment

import (
	"io"
	"log/slog"

	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/resource"
)

// DefaultExpectedBytesPerEntry is the initial payload hint per entry of a
// VariableWidth segment.
const DefaultExpectedBytesPerEntry = 16

type options struct {
	status                *Status
	policy                growth.Policy
	expectedEntries       int
	expectedBytesPerEntry int
	logger                *slog.Logger
	controller            *resource.Controller
	observer              Observer
}

// Option configures a segment.
type Option func(*options)

// WithStatus attaches a shared Status.
func WithStatus(s *Status) Option {
	return func(o *options) {
		o.status = s
	}
}

// WithPolicy sets the growth policy. If nil is passed, growth.Default is used.
func WithPolicy(p growth.Policy) Option {
	return func(o *options) {
		o.policy = growth.Or(p)
	}
}

// WithExpectedEntries sets the capacity of the first allocation.
// Values below 1 are treated as 1.
func WithExpectedEntries(n int) Option {
	return func(o *options) {
		o.expectedEntries = n
	}
}

// WithExpectedBytesPerEntry sets the initial payload hint of VariableWidth
// segments.
func WithExpectedBytesPerEntry(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.expectedBytesPerEntry = n
		}
	}
}

// WithLogger sets the logger for growth events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithController sets the memory controller consulted before growth.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithObserver sets the growth observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		policy:                growth.Default,
		expectedEntries:       1,
		expectedBytesPerEntry: DefaultExpectedBytesPerEntry,
		logger:                slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:              NoopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
