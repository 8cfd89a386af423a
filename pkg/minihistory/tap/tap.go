// Package tap turns writes to the host's current-router slot into events.
//
// The host rewrites that slot on every page onLoad and onShow, which makes it
// the one place a library can hear about page changes without hooking every
// page. Install swaps the host's slot for an observable Slot once per host;
// every history attached to the host then registers an observer on it.
//
// There is no uninstall. The patch lives as long as the host does.
package tap

import (
	"errors"
	"reflect"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
)

// ErrNotPatchable is returned when the host has no router slot to intercept.
var ErrNotPatchable = errors.New("tap: host router slot is not patchable")

// Observer receives every value stored in a Slot.
type Observer func(info *host.RouterInfo)

type observerEntry struct {
	id uint64
	fn Observer
}

// Slot is an observable replacement for the host's router slot.
type Slot struct {
	mu        sync.Mutex
	value     *host.RouterInfo
	observers []observerEntry
	nextID    *atomic.Uint64
	stores    *atomic.Uint64
}

func newSlot(initial *host.RouterInfo) *Slot {
	return &Slot{
		value:  initial,
		nextID: atomic.NewUint64(0),
		stores: atomic.NewUint64(0),
	}
}

// Load returns the last stored value.
func (s *Slot) Load() *host.RouterInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Store saves info and calls every observer with it, in registration order,
// before returning.
func (s *Slot) Store(info *host.RouterInfo) {
	s.mu.Lock()
	s.value = info
	observers := make([]observerEntry, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	s.stores.Inc()
	for _, o := range observers {
		o.fn(info)
	}
}

// Observe registers fn and returns a function that removes that registration.
// Registering the same function twice yields two independent registrations.
func (s *Slot) Observe(fn Observer) (cancel func()) {
	id := s.nextID.Inc()

	s.mu.Lock()
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Observers returns the number of registered observers.
func (s *Slot) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Stores returns how many values have been stored since installation.
func (s *Slot) Stores() uint64 {
	return s.stores.Load()
}

// Tap tracks which hosts have been patched. Hosts are keyed by identity, so
// they must be comparable; pointers are the usual choice. A host that cannot
// be used as a key is reported as not patchable.
type Tap struct {
	mu    sync.Mutex
	slots map[host.Patchable]*Slot
}

// Default is the process-wide tap shared by every history.
var Default = New()

// New creates a tap with no installed hosts. Tests use it to avoid sharing
// Default.
func New() *Tap {
	return &Tap{slots: make(map[host.Patchable]*Slot)}
}

// Install patches h's router slot on first use and returns the observable slot.
// Later calls for the same host return the same slot. A host already patched
// by another Tap keeps its existing slot.
func (t *Tap) Install(h host.Patchable) (*Slot, error) {
	if !hashable(h) {
		return nil, ErrNotPatchable
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if slot, ok := t.slots[h]; ok {
		return slot, nil
	}

	current := h.RouterSlot()
	if slot, ok := current.(*Slot); ok {
		t.slots[h] = slot
		return slot, nil
	}

	var initial *host.RouterInfo
	if current != nil {
		initial = current.Load()
	}

	slot := newSlot(initial)
	h.PatchRouterSlot(slot)
	t.slots[h] = slot
	return slot, nil
}

// Installed reports whether this tap has patched h.
func (t *Tap) Installed(h host.Patchable) bool {
	if !hashable(h) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.slots[h]
	return ok
}

// hashable reports whether h can key the slots map without panicking. The
// dynamic value is checked, so an interface field holding a map is caught too.
func hashable(h host.Patchable) bool {
	if h == nil {
		return false
	}
	return reflect.ValueOf(h).Comparable()
}

// Observe installs the tap on h if needed and registers fn on its slot.
func (t *Tap) Observe(h host.Patchable, fn Observer) (cancel func(), err error) {
	slot, err := t.Install(h)
	if err != nil {
		return nil, err
	}
	return slot.Observe(fn), nil
}
