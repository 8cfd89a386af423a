package minihistory

import (
	"context"
	"strings"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/internal"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/metrics"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/query"
)

// Push opens url on top of the current page, or switches tab if url is a tab
// page. params may be nil.
//
// Before the host is ready the request is held and Push returns a zero Result
// and nil; the request is replayed when the first page appears.
func (h *History) Push(ctx context.Context, url string, params Params) (host.Result, error) {
	return h.navigate(ctx, PendingNavigation{URL: url, Mode: ModePush, Params: params})
}

// Replace is Push using redirectTo instead of navigateTo.
func (h *History) Replace(ctx context.Context, url string, params Params) (host.Result, error) {
	return h.navigate(ctx, PendingNavigation{URL: url, Mode: ModeReplace, Params: params})
}

// Go moves delta pages through the stack. Zero does nothing (the current page
// is not reloaded), negative values go back. Forward is not supported.
func (h *History) Go(ctx context.Context, delta int) (host.Result, error) {
	switch {
	case delta == 0:
		return host.Result{}, nil
	case delta > 0:
		h.metrics.Navigation("go", metrics.OutcomeError)
		return host.Result{}, h.notImplemented("go")
	}

	res, err := h.host.NavigateBack(ctx, -delta)
	h.record("go", err)
	return res, err
}

// GoBack returns to the previous page.
func (h *History) GoBack(ctx context.Context) (host.Result, error) {
	res, err := h.host.NavigateBack(ctx, 1)
	h.record("goBack", err)
	return res, err
}

// GoForward always fails: the host keeps no forward history.
func (h *History) GoForward(ctx context.Context) (host.Result, error) {
	h.metrics.Navigation("goForward", metrics.OutcomeError)
	return host.Result{}, h.notImplemented("goForward")
}

// CanGo reports whether Go(delta) has somewhere to go, judged against the
// stack seen at the last router change rather than a fresh host query.
func (h *History) CanGo(delta int) bool {
	if delta > 0 {
		return false
	}
	if delta < 0 {
		delta = -delta
	}
	return delta < h.differ.Latest().Len()
}

func (h *History) navigate(ctx context.Context, nav PendingNavigation) (host.Result, error) {
	if !h.ready.Load() {
		h.hold(nav)
		return host.Result{}, nil
	}

	method := nav.Mode.String()

	url := nav.URL
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}

	if pages := h.host.Pages(); len(pages) > 0 {
		current := "/" + pages[len(pages)-1].Route
		if strings.HasPrefix(current, url) {
			h.logger.Debug("Already on page, skipping navigation", "url", url)
			h.metrics.Navigation(method, metrics.OutcomeNoop)
			return host.Result{}, nil
		}
	}

	url = query.Append(url, nav.Params)

	var (
		res host.Result
		err error
	)
	switch {
	case h.tabs.MatchURL(url):
		h.logger.Debug("Dispatching switchTab", "url", url, "mode", method)
		res, err = h.host.SwitchTab(ctx, url)
	case nav.Mode == ModeReplace:
		h.logger.Debug("Dispatching redirectTo", "url", url)
		res, err = h.host.RedirectTo(ctx, url)
	default:
		h.logger.Debug("Dispatching navigateTo", "url", url)
		res, err = h.host.NavigateTo(ctx, url)
	}

	h.record(method, err)
	return res, err
}

func (h *History) record(method string, err error) {
	if err != nil {
		h.metrics.Navigation(method, metrics.OutcomeError)
		return
	}
	h.metrics.Navigation(method, metrics.OutcomeOK)
}

func (h *History) notImplemented(op string) error {
	return &NotImplementedError{
		Op:      op,
		Message: h.localizer.Message(internal.MsgForwardNotImplemented),
	}
}
