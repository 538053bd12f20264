package segment

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colmem/growth"
	"github.com/hupe1980/colmem/internal/bitvec"
	"github.com/hupe1980/colmem/internal/bounds"
	"github.com/hupe1980/colmem/memsize"
)

// Segment is the type-independent view of a column segment.
type Segment interface {
	memsize.Sizer

	// Kind names the element type, e.g. "int32" or "bytes".
	Kind() string

	// AppendNull appends a null at the current position.
	AppendNull() error

	// IsNull reports whether position holds a null.
	IsNull(position int) (bool, error)

	// Len returns the number of appended positions.
	Len() int

	// Cap returns the number of allocated positions.
	Cap() int

	// Grow ensures capacity for at least minCapacity positions.
	Grow(minCapacity int) error

	// NullCount returns the number of null positions.
	NullCount() int

	// NullBitmap returns the null positions as a compressed bitmap.
	NullBitmap() *roaring.Bitmap

	// Status returns the attached Status, or nil.
	Status() *Status

	// Reset discards all positions and storage and releases the memory
	// reservation. The segment can be appended to again.
	Reset()
}

// core holds the bookkeeping shared by all segment kinds: logical position,
// allocated capacity, null flags and the footprint published to the status
// and the memory controller.
type core struct {
	kind        string
	opts        options
	position    int
	capacity    int
	initialized bool
	nulls       *bitvec.Vector

	reported  int64 // retained size published to the status
	reserved  int64 // bytes reserved from the controller
	footprint int64 // logical bytes published to the status
}

func newCore(kind string, opts []Option) core {
	return core{
		kind:  kind,
		opts:  applyOptions(opts),
		nulls: bitvec.New(0),
	}
}

// attach registers the segment with its status at its empty retained size.
func (c *core) attach(base int64) {
	c.reported = base
	c.opts.status.attach()
	c.opts.status.AdjustMemory(base)
}

// Kind names the element type.
func (c *core) Kind() string {
	return c.kind
}

// Len returns the number of appended positions.
func (c *core) Len() int {
	return c.position
}

// Cap returns the number of allocated positions.
func (c *core) Cap() int {
	return c.capacity
}

// Status returns the attached Status, or nil.
func (c *core) Status() *Status {
	return c.opts.status
}

// IsNull reports whether position holds a null.
func (c *core) IsNull(position int) (bool, error) {
	if err := bounds.CheckPosition(position, c.position); err != nil {
		return false, err
	}
	return c.nulls.Test(position), nil
}

// NullCount returns the number of null positions.
func (c *core) NullCount() int {
	return c.nulls.Count()
}

// MayHaveNull reports whether any null has been appended.
func (c *core) MayHaveNull() bool {
	return c.nulls.Count() > 0
}

// NullBitmap returns the null positions as a compressed bitmap.
func (c *core) NullBitmap() *roaring.Bitmap {
	bm := roaring.New()
	c.nulls.ForEach(c.position, func(i int) bool {
		bm.Add(uint32(i)) //nolint:gosec // positions are bounded by growth.MaxSize
		return true
	})
	return bm
}

// nextCapacity returns the capacity to allocate for required positions.
// The first allocation uses the expected-entries hint; later ones follow
// the growth policy.
func (c *core) nextCapacity(required int) (int, error) {
	if required > growth.MaxSize {
		return 0, fmt.Errorf("%w: %s segment cannot hold %d entries", ErrTooLarge, c.kind, required)
	}
	if !c.initialized {
		hint := min(max(c.opts.expectedEntries, 1), growth.MaxSize)
		return max(hint, required), nil
	}
	n, err := c.opts.policy.Grow(c.capacity, required)
	if err != nil {
		return 0, fmt.Errorf("segment: grow %s: %w", c.kind, err)
	}
	return max(n, required), nil
}

// event describes growth of kind from oldCap to newCap reaching retained bytes.
func (c *core) event(kind string, oldCap, newCap int, retained int64) GrowEvent {
	return GrowEvent{
		Kind:         kind,
		OldCapacity:  oldCap,
		NewCapacity:  newCap,
		RetainedSize: retained,
		Delta:        retained - c.reported,
	}
}

// reserve secures the memory needed to reach e.RetainedSize.
func (c *core) reserve(e GrowEvent) error {
	if err := c.opts.controller.AcquireMemory(e.Delta); err != nil {
		c.opts.observer.OnGrowRejected(e, err)
		c.opts.logger.Warn("segment growth rejected",
			"kind", e.Kind,
			"capacity", e.OldCapacity,
			"requested", e.NewCapacity,
			"error", err,
		)
		return fmt.Errorf("segment: grow %s to %d: %w", e.Kind, e.NewCapacity, err)
	}
	if e.Delta > 0 {
		c.reserved += e.Delta
	}
	return nil
}

// setCapacity records new slot storage of n positions.
func (c *core) setCapacity(n int) {
	c.capacity = n
	c.initialized = true
	c.nulls.Grow(n)
}

// publish reports a completed growth.
func (c *core) publish(e GrowEvent) {
	c.opts.status.AdjustMemory(e.RetainedSize - c.reported)
	c.reported = e.RetainedSize
	c.opts.observer.OnGrow(e)
	c.opts.logger.Debug("segment grown",
		"kind", e.Kind,
		"old_capacity", e.OldCapacity,
		"new_capacity", e.NewCapacity,
		"retained_bytes", e.RetainedSize,
	)
}

// advance completes an append at the current position.
func (c *core) advance(null bool, footprint int64) {
	if null {
		c.nulls.Set(c.position)
		c.opts.status.MarkNull()
	} else {
		c.nulls.Clear(c.position)
		c.opts.status.MarkNonNull()
	}
	c.position++
	c.footprint += footprint
	c.opts.status.AddBytes(footprint)
}

// reset returns the bookkeeping to the uninitialized state.
func (c *core) reset(base int64) {
	c.opts.controller.ReleaseMemory(c.reserved)
	c.reserved = 0
	c.opts.status.AdjustMemory(base - c.reported)
	c.reported = base
	c.opts.status.AddBytes(-c.footprint)
	c.footprint = 0
	c.position = 0
	c.capacity = 0
	c.initialized = false
	c.nulls = bitvec.New(0)
}

func validateCapacity(kind string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s segment capacity %d", growth.ErrInvalidCapacity, kind, n)
	}
	return nil
}
