// Package host describes the mini-program runtime that minihistory sits on.
//
// The host owns the page stack, the imperative navigation primitives and the
// "current router" slot that it rewrites on every page onLoad/onShow. Nothing
// in this package has behavior; it only fixes the shape of that boundary so
// the rest of the library can be written and tested against it.
package host

import (
	"context"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/config"
)

// RouterInfo is the record the host assigns to its current router slot each
// time a page lifecycle fires. Values are never mutated after assignment.
type RouterInfo struct {
	Path         string            // Page path without leading slash, e.g. "pages/detail/index"
	Params       map[string]string // Route parameters
	Query        map[string]string // Launch query, only present on launch/show of the app
	ReferrerInfo map[string]string // Referrer app data when opened from another app
	Scene        int               // Launch scene value
	ShareTicket  string            // Share ticket when opened from a shared card
	Prerender    bool              // Set when the page is being prerendered
	OnReady      string            // Lifecycle event identifiers
	OnHide       string
	OnShow       string
}

// Page is one entry of the host page stack.
type Page struct {
	Route string // Page path without leading slash
}

// Result is the completion value of a host navigation primitive.
type Result struct {
	ErrMsg string // e.g. "navigateTo:ok"
}

// Host is the page-stack container plus its navigation primitives.
//
// Navigation calls complete asynchronously in the host; implementations block
// until the host reports completion or failure. Failures are returned as-is to
// the caller of the history method that triggered them.
type Host interface {
	// Pages returns the live page stack, bottom first.
	Pages() []Page
	NavigateTo(ctx context.Context, url string) (Result, error)
	RedirectTo(ctx context.Context, url string) (Result, error)
	SwitchTab(ctx context.Context, url string) (Result, error)
	NavigateBack(ctx context.Context, delta int) (Result, error)
}

// Slot is the host's "current router" cell.
type Slot interface {
	Load() *RouterInfo
	Store(info *RouterInfo)
}

// Patchable is implemented by hosts whose router slot can be swapped for an
// observable one. After PatchRouterSlot returns, every lifecycle write must go
// through the given slot.
type Patchable interface {
	RouterSlot() Slot
	PatchRouterSlot(slot Slot)
}

// AppConfigSource is implemented by hosts that inject the compiled app
// configuration at runtime.
type AppConfigSource interface {
	AppConfig() *config.AppConfig
}

// Routes flattens pages into their route identifiers.
func Routes(pages []Page) []string {
	routes := make([]string, len(pages))
	for i, p := range pages {
		routes[i] = p.Route
	}
	return routes
}
