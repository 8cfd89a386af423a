package minihistory

import "github.com/BrandonKowalski/minihistory/pkg/minihistory/host"

// Listener is called with the new location and the action that led to it.
// A returned error or a panic does not stop the others and is otherwise
// ignored.
type Listener func(location *host.RouterInfo, action Action) error

type listenerEntry struct {
	id uint64
	fn Listener
}

// listenerRegistry keeps listeners in registration order. Each registration
// gets its own id so the same function can be added and removed independently.
type listenerRegistry struct {
	entries []listenerEntry
	nextID  uint64
}

func (r *listenerRegistry) add(fn Listener) (remove func()) {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, listenerEntry{id: id, fn: fn})

	return func() {
		for i, e := range r.entries {
			if e.id == id {
				r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
				return
			}
		}
	}
}

// notify calls every listener registered at the time of the call. Listeners
// added or removed during the fan-out take effect on the next one.
func (r *listenerRegistry) notify(location *host.RouterInfo, action Action) {
	entries := append([]listenerEntry(nil), r.entries...)
	for _, e := range entries {
		callListener(e.fn, location, action)
	}
}

func callListener(fn Listener, location *host.RouterInfo, action Action) {
	defer func() {
		_ = recover()
	}()
	_ = fn(location, action)
}
