package colmem

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colmem/buffer"
	"github.com/hupe1980/colmem/compress"
	"github.com/hupe1980/colmem/memsize"
	"github.com/hupe1980/colmem/resource"
	"github.com/hupe1980/colmem/segment"
)

// Group is a set of named columns that share one Status, one memory
// budget, one logger and one metrics collector.
type Group struct {
	opts       options
	status     *segment.Status
	controller *resource.Controller
	columns    map[string]segment.Segment
	order      []string
	overBudget bool
}

// NewGroup creates an empty group.
func NewGroup(opts ...Option) *Group {
	o := applyOptions(opts)

	rc := o.controller
	if rc == nil && o.memoryLimit > 0 {
		rc = resource.NewController(
			resource.Config{MemoryLimitBytes: o.memoryLimit},
			resource.WithLogger(o.logger.Logger),
		)
	}

	return &Group{
		opts:       o,
		status:     segment.NewStatus(),
		controller: rc,
		columns:    make(map[string]segment.Segment),
	}
}

// AddColumn registers a fixed-width column of element type T.
// Options passed here override the group defaults.
func AddColumn[T segment.Value](g *Group, name string, opts ...segment.Option) (*segment.Fixed[T], error) {
	var zero T
	kind := fmt.Sprintf("%T", zero)
	if err := g.checkName(name, kind); err != nil {
		return nil, err
	}

	s := segment.NewFixed[T](g.segmentOptions(name, opts)...)
	g.register(name, s)
	return s, nil
}

// AddVariableWidth registers a byte-string column.
// Options passed here override the group defaults.
func (g *Group) AddVariableWidth(name string, opts ...segment.Option) (*segment.VariableWidth, error) {
	if err := g.checkName(name, "bytes"); err != nil {
		return nil, err
	}

	s := segment.NewVariableWidth(g.segmentOptions(name, opts)...)
	g.register(name, s)
	return s, nil
}

func (g *Group) checkName(name, kind string) error {
	var err error
	switch {
	case name == "":
		err = ErrInvalidColumnName
	case g.columns[name] != nil:
		err = &ErrDuplicateColumn{Name: name}
	}
	if err != nil {
		g.opts.logger.LogColumnAdded(name, kind, err)
	}
	return err
}

func (g *Group) segmentOptions(name string, extra []segment.Option) []segment.Option {
	logger := g.opts.logger.WithColumn(name)
	opts := []segment.Option{
		segment.WithStatus(g.status),
		segment.WithController(g.controller),
		segment.WithPolicy(g.opts.policy),
		segment.WithExpectedEntries(g.opts.expectedEntries),
		segment.WithLogger(logger.Logger),
		segment.WithObserver(&metricsObserver{mc: g.opts.metricsCollector}),
	}
	return append(opts, extra...)
}

func (g *Group) register(name string, s segment.Segment) {
	g.columns[name] = s
	g.order = append(g.order, name)
	g.opts.logger.LogColumnAdded(name, s.Kind(), nil)
}

// Column returns the column registered under name.
func (g *Group) Column(name string) (segment.Segment, bool) {
	s, ok := g.columns[name]
	return s, ok
}

// Columns returns the column names in registration order.
func (g *Group) Columns() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Status returns the status shared by all columns.
func (g *Group) Status() *segment.Status {
	return g.status
}

// Controller returns the memory controller, or nil if the group is unlimited.
func (g *Group) Controller() *resource.Controller {
	return g.controller
}

// RetainedSize returns the retained size of all columns plus the shared
// status, which is counted once.
func (g *Group) RetainedSize() int64 {
	sizers := make([]memsize.Sizer, 0, len(g.columns)+1)
	for _, name := range g.order {
		sizers = append(sizers, g.columns[name])
	}
	sizers = append(sizers, g.status)
	return memsize.Sum(sizers...)
}

// MemoryUsed returns the memory reported by all columns to the shared status.
func (g *Group) MemoryUsed() int64 {
	return g.status.MemoryUsed()
}

// MemoryLimit returns the memory budget, or 0 if unlimited.
func (g *Group) MemoryLimit() int64 {
	return g.controller.MemoryLimit()
}

// OverBudget reports whether the columns use at least the memory budget.
// It is an advisory signal for spill or flush decisions and is always false
// without a limit.
func (g *Group) OverBudget() bool {
	limit := g.MemoryLimit()
	if limit <= 0 {
		return false
	}
	used := g.MemoryUsed()
	over := used >= limit
	if over && !g.overBudget {
		g.opts.logger.LogBudgetExceeded(used, limit)
	}
	g.overBudget = over
	return over
}

// NullBitmaps returns the null positions of every column that has nulls.
func (g *Group) NullBitmaps() map[string]*roaring.Bitmap {
	out := make(map[string]*roaring.Bitmap)
	for _, name := range g.order {
		s := g.columns[name]
		if s.NullCount() == 0 {
			continue
		}
		out[name] = s.NullBitmap()
	}
	return out
}

// Compress encodes sealed column data with the given codec, recording the
// result with the group's logger and metrics collector.
func (g *Group) Compress(b *buffer.Buffer, t compress.Type) (*buffer.Buffer, error) {
	start := time.Now()
	frame, err := compress.Compress(b, t)

	out := 0
	if frame != nil {
		out = frame.Len()
	}
	g.opts.metricsCollector.RecordCompression(t.String(), b.Len(), out, time.Since(start), err)
	g.opts.logger.LogCompression(t.String(), b.Len(), out, err)

	return frame, err
}

// Reset empties every column and releases their memory reservations.
// Columns stay registered.
func (g *Group) Reset() {
	for _, name := range g.order {
		g.columns[name].Reset()
	}
	g.overBudget = false
}

func (g *Group) String() string {
	return fmt.Sprintf(
		"Group{columns: %d, memory: %d B, limit: %d B, retained: %d B}",
		len(g.order),
		g.MemoryUsed(),
		g.MemoryLimit(),
		g.RetainedSize(),
	)
}

// metricsObserver bridges segment growth events to a MetricsCollector.
type metricsObserver struct {
	mc MetricsCollector
}

func (m *metricsObserver) OnGrow(e segment.GrowEvent) {
	m.mc.RecordGrowth(e.Kind, e.OldCapacity, e.NewCapacity, e.Delta)
}

func (m *metricsObserver) OnGrowRejected(e segment.GrowEvent, _ error) {
	m.mc.RecordRejectedGrowth(e.Kind, e.NewCapacity)
}

var _ memsize.Sizer = (*Group)(nil)
