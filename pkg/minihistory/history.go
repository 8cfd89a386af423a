// Package minihistory provides a browser-style history (push, replace, go,
// listen) for mini-program hosts that only expose a page stack.
//
// The host never says why the current page changed. History watches the
// host's current-router slot, which the host rewrites on every page onLoad and
// onShow, and infers the navigation action by comparing the page stack before
// and after each write. See the router package for the rules.
//
// Navigation requested before the host has shown its first page cannot reach
// the host yet. The last such request is kept and replayed once the first page
// appears.
//
// A History is driven by the host's lifecycle dispatch and is not safe for
// concurrent use; call it from the goroutine that runs the host.
package minihistory

import (
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/internal"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/metrics"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/router"
)

// Action is the navigation that led to the current location.
type Action = router.Action

const (
	ActionNone   = router.ActionNone
	AppLaunch    = router.AppLaunch
	NavigateTo   = router.NavigateTo
	RedirectTo   = router.RedirectTo
	NavigateBack = router.NavigateBack
	SwitchTab    = router.SwitchTab
)

type routerEvent struct {
	info     *host.RouterInfo
	snapshot router.Snapshot
}

// History tracks the host's navigation and issues navigation requests.
type History struct {
	id        string
	host      host.Host
	logger    *slog.Logger
	localizer *internal.Localizer
	metrics   metrics.Recorder
	tabs      *tabBar
	differ    *router.Differ
	listeners listenerRegistry
	unobserve func()

	ready   *atomic.Bool
	pending *PendingNavigation

	location *host.RouterInfo
	action   Action

	dispatching bool
	queue       []routerEvent
}

// New attaches a history to h. The host must implement host.Patchable; its
// router slot is patched on first use and shared by every history on it.
func New(h host.Host, opts Options) (*History, error) {
	if h == nil {
		return nil, &ConfigurationError{Op: "new", Err: ErrNilHost}
	}

	localizer := internal.NewLocalizer(opts.Locale)

	patchable, ok := h.(host.Patchable)
	if !ok {
		return nil, &ConfigurationError{
			Op:     "install",
			Detail: localizer.Message(internal.MsgHostNotPatchable),
			Err:    ErrNotPatchable,
		}
	}

	id := uuid.NewString()
	logger := opts.logger().With("history", id)

	var recorder metrics.Recorder = metrics.Nop{}
	if opts.Registerer != nil {
		p, err := metrics.NewPrometheus(opts.Registerer)
		if err != nil {
			return nil, &ConfigurationError{Op: "metrics", Err: err}
		}
		recorder = p
	}

	pages := h.Pages()
	hist := &History{
		id:        id,
		host:      h,
		logger:    logger,
		localizer: localizer,
		metrics:   recorder,
		tabs:      newTabBar(h, opts, logger),
		ready:     atomic.NewBool(len(pages) > 0),
	}
	hist.differ = router.NewDiffer(router.NewSnapshot(host.Routes(pages)), hist.tabs)

	unobserve, err := opts.observerTap().Observe(patchable, hist.handleRouterChange)
	if err != nil {
		return nil, &ConfigurationError{
			Op:     "install",
			Detail: localizer.Message(internal.MsgHostNotPatchable),
			Err:    err,
		}
	}
	hist.unobserve = unobserve

	logger.Debug("History attached", "pages", len(pages), "ready", hist.ready.Load())
	return hist, nil
}

// ID identifies this history in logs.
func (h *History) ID() string {
	return h.id
}

// Location returns the router info of the last inferred navigation, or nil
// before the first one.
func (h *History) Location() *host.RouterInfo {
	return h.location
}

// Action returns the last inferred action, ActionNone before the first one.
func (h *History) Action() Action {
	return h.action
}

// Length returns the live depth of the host page stack.
func (h *History) Length() int {
	return len(h.host.Pages())
}

// Listen registers handler for every inferred action, including the launch.
// The returned function removes this registration only.
func (h *History) Listen(handler Listener) (unlisten func()) {
	return h.listeners.add(handler)
}

// Close stops observing the host. The host's router slot stays patched.
func (h *History) Close() {
	if h.unobserve != nil {
		h.unobserve()
		h.unobserve = nil
	}
}

// handleRouterChange runs once per router slot write. Writes that arrive
// while an earlier one is still being handled (a listener navigating on a
// host that completes synchronously) are queued and handled in order, each
// with the stack captured when it was written. If handling panics, the writes
// still queued are dropped with it.
func (h *History) handleRouterChange(info *host.RouterInfo) {
	ev := routerEvent{
		info:     info,
		snapshot: router.NewSnapshot(host.Routes(h.host.Pages())),
	}

	if h.dispatching {
		h.queue = append(h.queue, ev)
		return
	}

	h.dispatching = true
	defer func() {
		h.dispatching = false
		h.queue = nil
	}()

	h.process(ev)
	for len(h.queue) > 0 {
		next := h.queue[0]
		h.queue = h.queue[1:]
		h.process(next)
	}
}

func (h *History) process(ev routerEvent) {
	replay := h.openGate(ev)

	action := h.differ.Observe(ev.snapshot)
	if action != ActionNone {
		h.location = ev.info
		h.action = action

		h.logger.Debug("Inferred navigation", "action", action.String(), "path", pathOf(ev.info), "depth", ev.snapshot.Len())
		h.metrics.Action(action.String())
		h.listeners.notify(ev.info, action)
	}

	if replay != nil {
		h.replay(*replay)
	}
}

func pathOf(info *host.RouterInfo) string {
	if info == nil {
		return ""
	}
	return info.Path
}
