package colmem

import (
	"log/slog"

	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	memoryLimit      int64
	controller       *resource.Controller
	policy           growth.Policy
	expectedEntries  int
}

// Option configures a Group.
type Option func(*options)

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := colmem.NewJSONLogger(slog.LevelDebug)
//	g := colmem.NewGroup(colmem.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for growth and
// compression events. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &colmem.BasicMetricsCollector{}
//	g := colmem.NewGroup(colmem.WithMetricsCollector(metrics))
//	// ... append ...
//	stats := metrics.GetStats()
//	fmt.Printf("Growths: %d (%d bytes)\n", stats.GrowthCount, stats.GrowthBytes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithMemoryLimit caps the memory all columns of the group may reserve
// while growing. Zero means unlimited. Ignored if WithResourceController
// is also used.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithResourceController shares an existing controller, so several groups
// draw from one memory budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithGrowthPolicy sets the growth policy of every column.
// If nil is passed, growth.Default is used.
func WithGrowthPolicy(p growth.Policy) Option {
	return func(o *options) {
		o.policy = growth.Or(p)
	}
}

// WithExpectedEntries sets the initial capacity hint of every column.
func WithExpectedEntries(n int) Option {
	return func(o *options) {
		o.expectedEntries = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		policy:           growth.Default,
		expectedEntries:  1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
