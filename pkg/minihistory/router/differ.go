package router

// Differ remembers the previous snapshot between lifecycle events.
//
// Events must be fed in the order the host raised them; the previous snapshot
// of one call is the current snapshot of the call before it.
type Differ struct {
	latest Snapshot
	tabs   TabBar
}

// NewDiffer starts from the snapshot observed at construction time.
func NewDiffer(initial Snapshot, tabs TabBar) *Differ {
	return &Differ{
		latest: initial,
		tabs:   tabs,
	}
}

// Observe classifies cur against the previous snapshot and keeps cur for the
// next call, whether or not an action was inferred.
func (d *Differ) Observe(cur Snapshot) Action {
	action := Infer(d.latest, cur, d.tabs)
	d.latest = cur
	return action
}

// Latest returns the snapshot from the most recent Observe, or the initial one.
func (d *Differ) Latest() Snapshot {
	return d.latest
}
