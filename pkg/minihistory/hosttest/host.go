// Package hosttest provides an in-memory mini-program host.
//
// Host keeps a page stack, implements the navigation primitives the way the
// real runtime does (push, replace top, reset to tab, pop) and writes the
// router slot for each page lifecycle it would fire: onLoad and onShow for a
// new page, onShow alone for a page revealed by going back.
package hosttest

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/config"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
)

// Call records one navigation primitive invocation.
type Call struct {
	Method string // navigateTo, redirectTo, switchTab or navigateBack
	URL    string
	Delta  int
}

// Host is a fake host. It is safe to read from other goroutines, but like the
// real runtime it expects navigation to be driven from one.
type Host struct {
	mu        sync.Mutex
	pages     []host.Page
	slot      host.Slot
	appConfig *config.AppConfig
	calls     []Call
	failures  map[string]error
	showOnly  bool
}

// Option configures a Host.
type Option func(*Host)

// WithPages seeds the page stack without firing any lifecycle.
func WithPages(routes ...string) Option {
	return func(h *Host) {
		for _, r := range routes {
			h.pages = append(h.pages, host.Page{Route: r})
		}
	}
}

// WithAppConfig makes the host expose cfg through host.AppConfigSource.
func WithAppConfig(cfg *config.AppConfig) Option {
	return func(h *Host) {
		h.appConfig = cfg
	}
}

// WithLoadEventsDisabled makes new pages fire onShow only.
func WithLoadEventsDisabled() Option {
	return func(h *Host) {
		h.showOnly = true
	}
}

// New creates a host with an ordinary, unobserved router slot.
func New(opts ...Option) *Host {
	h := &Host{
		slot:     &plainSlot{},
		failures: make(map[string]error),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Pages implements host.Host.
func (h *Host) Pages() []host.Page {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]host.Page(nil), h.pages...)
}

// Routes returns the current stack as route identifiers.
func (h *Host) Routes() []string {
	return host.Routes(h.Pages())
}

// RouterSlot implements host.Patchable.
func (h *Host) RouterSlot() host.Slot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slot
}

// PatchRouterSlot implements host.Patchable.
func (h *Host) PatchRouterSlot(slot host.Slot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.slot = slot
}

// AppConfig implements host.AppConfigSource.
func (h *Host) AppConfig() *config.AppConfig {
	return h.appConfig
}

// Fail makes every later call of method return err until cleared with a nil err.
func (h *Host) Fail(method string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		delete(h.failures, method)
		return
	}
	h.failures[method] = err
}

// Calls returns the navigation primitives invoked so far.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// ResetCalls forgets recorded calls.
func (h *Host) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}

// Launch opens the first page of the app.
func (h *Host) Launch(rawURL string) {
	route, params := splitURL(rawURL)
	h.mu.Lock()
	h.pages = []host.Page{{Route: route}}
	h.mu.Unlock()
	h.open(route, params)
}

// Show fires onShow for the current page, as when the app returns from the
// background.
func (h *Host) Show() {
	pages := h.Pages()
	if len(pages) == 0 {
		return
	}
	h.Store(&host.RouterInfo{Path: pages[len(pages)-1].Route, OnShow: "onShow"})
}

// SetPages replaces the stack without firing anything. Pair with Store to
// script transitions the primitives cannot produce.
func (h *Host) SetPages(routes ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pages = h.pages[:0]
	for _, r := range routes {
		h.pages = append(h.pages, host.Page{Route: r})
	}
}

// Store writes info into the current router slot.
func (h *Host) Store(info *host.RouterInfo) {
	h.RouterSlot().Store(info)
}

// NavigateTo implements host.Host.
func (h *Host) NavigateTo(ctx context.Context, rawURL string) (host.Result, error) {
	if err := h.begin(ctx, Call{Method: "navigateTo", URL: rawURL}); err != nil {
		return host.Result{}, err
	}
	route, params := splitURL(rawURL)
	h.mu.Lock()
	h.pages = append(h.pages, host.Page{Route: route})
	h.mu.Unlock()
	h.open(route, params)
	return host.Result{ErrMsg: "navigateTo:ok"}, nil
}

// RedirectTo implements host.Host.
func (h *Host) RedirectTo(ctx context.Context, rawURL string) (host.Result, error) {
	if err := h.begin(ctx, Call{Method: "redirectTo", URL: rawURL}); err != nil {
		return host.Result{}, err
	}
	route, params := splitURL(rawURL)
	h.mu.Lock()
	if len(h.pages) == 0 {
		h.pages = append(h.pages, host.Page{Route: route})
	} else {
		h.pages[len(h.pages)-1] = host.Page{Route: route}
	}
	h.mu.Unlock()
	h.open(route, params)
	return host.Result{ErrMsg: "redirectTo:ok"}, nil
}

// SwitchTab implements host.Host. The stack collapses to the tab page; the
// query string is dropped, as the real host does.
func (h *Host) SwitchTab(ctx context.Context, rawURL string) (host.Result, error) {
	if err := h.begin(ctx, Call{Method: "switchTab", URL: rawURL}); err != nil {
		return host.Result{}, err
	}
	route, _ := splitURL(rawURL)
	h.mu.Lock()
	h.pages = []host.Page{{Route: route}}
	h.mu.Unlock()
	h.open(route, nil)
	return host.Result{ErrMsg: "switchTab:ok"}, nil
}

// NavigateBack implements host.Host. The bottom page is never popped.
func (h *Host) NavigateBack(ctx context.Context, delta int) (host.Result, error) {
	if err := h.begin(ctx, Call{Method: "navigateBack", Delta: delta}); err != nil {
		return host.Result{}, err
	}
	if delta < 1 {
		delta = 1
	}
	h.mu.Lock()
	keep := len(h.pages) - delta
	if keep < 1 {
		keep = 1
	}
	if keep > len(h.pages) {
		keep = len(h.pages)
	}
	h.pages = h.pages[:keep]
	var top string
	if keep > 0 {
		top = h.pages[keep-1].Route
	}
	h.mu.Unlock()
	if top != "" {
		h.Store(&host.RouterInfo{Path: top, OnShow: "onShow"})
	}
	return host.Result{ErrMsg: "navigateBack:ok"}, nil
}

func (h *Host) begin(ctx context.Context, call Call) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, call)
	if err, ok := h.failures[call.Method]; ok {
		return fmt.Errorf("%s:fail %w", call.Method, err)
	}
	return nil
}

func (h *Host) open(route string, params map[string]string) {
	if !h.showOnly {
		h.Store(&host.RouterInfo{Path: route, Params: params, OnReady: "onReady", OnHide: "onHide", OnShow: "onShow"})
	}
	h.Store(&host.RouterInfo{Path: route, Params: params, OnShow: "onShow"})
}

func splitURL(rawURL string) (string, map[string]string) {
	path, rawQuery, _ := strings.Cut(strings.TrimPrefix(rawURL, "/"), "?")
	if rawQuery == "" {
		return path, nil
	}
	params := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if uk, err := url.QueryUnescape(k); err == nil {
			k = uk
		}
		params[k] = v
	}
	return path, params
}

type plainSlot struct {
	mu    sync.Mutex
	value *host.RouterInfo
}

func (s *plainSlot) Load() *host.RouterInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *plainSlot) Store(info *host.RouterInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = info
}
