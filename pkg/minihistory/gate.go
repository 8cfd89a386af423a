package minihistory

import (
	"context"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/metrics"
)

// NavigateMode selects between navigateTo and redirectTo for non-tab targets.
type NavigateMode int

const (
	ModePush    NavigateMode = iota // Open on top of the current page
	ModeReplace                     // Replace the current page
)

func (m NavigateMode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "push"
}

// Params are appended to a navigation URL as an unencoded query string.
type Params = map[string]any

// PendingNavigation is a request made before the host showed its first page.
type PendingNavigation struct {
	URL    string
	Mode   NavigateMode
	Params Params
}

// Ready reports whether the host has shown a page since this history was
// created (or already had one when it was created).
func (h *History) Ready() bool {
	return h.ready.Load()
}

// Pending returns a copy of the queued navigation, or nil.
func (h *History) Pending() *PendingNavigation {
	if h.pending == nil {
		return nil
	}
	p := *h.pending
	return &p
}

// hold keeps nav as the only pending navigation, replacing any earlier one.
func (h *History) hold(nav PendingNavigation) {
	if h.pending != nil {
		h.logger.Debug("Replacing pending navigation", "previous", h.pending.URL, "url", nav.URL)
	} else {
		h.logger.Debug("Host not ready, holding navigation", "url", nav.URL, "mode", nav.Mode.String())
	}
	h.pending = &nav
	h.metrics.Navigation(nav.Mode.String(), metrics.OutcomePending)
}

// openGate flips readiness on the first event that finds pages on the stack,
// announces the launch and hands back the pending navigation to replay.
func (h *History) openGate(ev routerEvent) *PendingNavigation {
	if ev.snapshot.IsEmpty() {
		return nil
	}
	if !h.ready.CompareAndSwap(false, true) {
		return nil
	}

	h.logger.Info("Host ready", "path", pathOf(ev.info))
	h.metrics.Action(AppLaunch.String())
	h.listeners.notify(ev.info, AppLaunch)

	pending := h.pending
	h.pending = nil
	return pending
}

// replay runs a held navigation once the host is ready. Nobody is waiting on
// the result, so failures are only logged.
func (h *History) replay(nav PendingNavigation) {
	h.logger.Debug("Replaying pending navigation", "url", nav.URL, "mode", nav.Mode.String())
	if _, err := h.navigate(context.Background(), nav); err != nil {
		h.logger.Warn("Pending navigation failed", "url", nav.URL, "error", err)
	}
}
