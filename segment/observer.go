package segment

// GrowEvent describes a capacity change of one segment.
type GrowEvent struct {
	Kind         string
	OldCapacity  int
	NewCapacity  int
	RetainedSize int64 // retained size after growth
	Delta        int64 // retained size increase
}

// Observer receives growth notifications from segments.
type Observer interface {
	// OnGrow is called after a segment's capacity increased.
	OnGrow(e GrowEvent)

	// OnGrowRejected is called when growth was refused by the memory controller.
	OnGrowRejected(e GrowEvent, err error)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) OnGrow(GrowEvent)                {}
func (NoopObserver) OnGrowRejected(GrowEvent, error) {}
