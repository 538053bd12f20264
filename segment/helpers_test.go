package segment

type recordingObserver struct {
	grown    []GrowEvent
	rejected []GrowEvent
	errs     []error
}

func (r *recordingObserver) OnGrow(e GrowEvent) {
	r.grown = append(r.grown, e)
}

func (r *recordingObserver) OnGrowRejected(e GrowEvent, err error) {
	r.rejected = append(r.rejected, e)
	r.errs = append(r.errs, err)
}

func (r *recordingObserver) capacities() []int {
	out := make([]int, 0, len(r.grown))
	for _, e := range r.grown {
		out = append(out, e.NewCapacity)
	}
	return out
}
