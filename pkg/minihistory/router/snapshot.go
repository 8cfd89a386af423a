package router

// Snapshot is a copy of the host page stack taken at one point in time.
// Routes are ordered bottom first, so the last one is the visible page.
//
// A Snapshot never aliases the slice it was built from; the host is free to
// reuse its backing array after the snapshot is taken.
type Snapshot struct {
	routes []string
}

// NewSnapshot copies routes into a new snapshot.
func NewSnapshot(routes []string) Snapshot {
	return Snapshot{routes: append([]string(nil), routes...)}
}

// Len returns the number of pages in the snapshot.
func (s Snapshot) Len() int {
	return len(s.routes)
}

// IsEmpty returns true if the snapshot has no pages.
func (s Snapshot) IsEmpty() bool {
	return len(s.routes) == 0
}

// Top returns the visible page's route.
// Returns "" if the snapshot is empty.
func (s Snapshot) Top() string {
	if len(s.routes) == 0 {
		return ""
	}
	return s.routes[len(s.routes)-1]
}

// Bottom returns the first-opened page's route.
// Returns "" if the snapshot is empty.
func (s Snapshot) Bottom() string {
	if len(s.routes) == 0 {
		return ""
	}
	return s.routes[0]
}

// Routes returns a copy of the routes, bottom first.
func (s Snapshot) Routes() []string {
	return append([]string(nil), s.routes...)
}
