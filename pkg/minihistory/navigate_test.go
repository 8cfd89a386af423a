package minihistory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/host"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/hosttest"
)

func TestPush(t *testing.T) {
	t.Run("it should not navigate to the page already shown", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("a"))
		hist := newHistory(t, h, minihistory.Options{})

		res, err := hist.Push(t.Context(), "/a", nil)
		require.NoError(t, err)
		assert.Zero(t, res)

		_, err = hist.Push(t.Context(), "a", minihistory.Params{"x": 1})
		require.NoError(t, err)

		assert.Empty(t, h.Calls())
	})

	t.Run("it should append params without encoding them", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home"))
		hist := newHistory(t, h, minihistory.Options{})

		res, err := hist.Push(t.Context(), "pages/detail/index", minihistory.Params{"id": 1, "q": "a b"})
		require.NoError(t, err)

		assert.Equal(t, "navigateTo:ok", res.ErrMsg)
		assert.Equal(t, []hosttest.Call{{Method: "navigateTo", URL: "/pages/detail/index?id=1&q=a b"}}, h.Calls())
	})

	t.Run("it should extend an existing query string", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home"))
		hist := newHistory(t, h, minihistory.Options{})

		_, err := hist.Replace(t.Context(), "/pages/detail/index?from=home", minihistory.Params{"id": 1})
		require.NoError(t, err)

		assert.Equal(t, []hosttest.Call{{Method: "redirectTo", URL: "/pages/detail/index?from=home&id=1"}}, h.Calls())
		assert.Equal(t, map[string]string{"from": "home", "id": "1"}, hist.Location().Params)
	})

	t.Run("a tab target switches tab even for replace", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home", "detail"))
		hist := newHistory(t, h, minihistory.Options{AppConfig: tabConfig("home", "mine")})

		_, err := hist.Replace(t.Context(), "mine", minihistory.Params{"tab": 2})
		require.NoError(t, err)

		assert.Equal(t, []hosttest.Call{{Method: "switchTab", URL: "/mine?tab=2"}}, h.Calls())
	})

	t.Run("host failures are returned to the caller", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home"))
		boom := errors.New("page not found")
		h.Fail("navigateTo", boom)
		hist := newHistory(t, h, minihistory.Options{})

		_, err := hist.Push(t.Context(), "missing", nil)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, minihistory.ActionNone, hist.Action())
	})
}

func TestGo(t *testing.T) {
	t.Run("zero does nothing", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home", "detail"))
		hist := newHistory(t, h, minihistory.Options{})

		_, err := hist.Go(t.Context(), 0)
		require.NoError(t, err)
		assert.Empty(t, h.Calls())
	})

	t.Run("negative delta goes back that many pages", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home", "a", "b"))
		hist := newHistory(t, h, minihistory.Options{})

		_, err := hist.Go(t.Context(), -1)
		require.NoError(t, err)
		assert.Equal(t, []string{"home", "a"}, h.Routes())
	})

	t.Run("forward is not implemented", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home", "detail"))
		hist := newHistory(t, h, minihistory.Options{})

		_, err := hist.Go(t.Context(), 1)
		assert.ErrorIs(t, err, minihistory.ErrNotImplemented)

		_, err = hist.GoForward(t.Context())
		assert.True(t, minihistory.IsNotImplemented(err))
		assert.EqualError(t, err, "minihistory: goForward: forward navigation is not implemented")

		assert.Empty(t, h.Calls())
	})

	t.Run("not implemented messages follow the locale", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home"))
		hist := newHistory(t, h, minihistory.Options{Locale: "zh-Hans"})

		_, err := hist.GoForward(t.Context())

		var nie *minihistory.NotImplementedError
		require.ErrorAs(t, err, &nie)
		assert.Equal(t, "goForward", nie.Op)
		assert.Equal(t, "Forward 尚未实现", nie.Message)
	})

	t.Run("back failures are returned to the caller", func(t *testing.T) {
		h := hosttest.New(hosttest.WithPages("home", "detail"))
		h.Fail("navigateBack", assert.AnError)
		hist := newHistory(t, h, minihistory.Options{})

		_, err := hist.GoBack(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
		_, err = hist.Go(t.Context(), -1)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCanGo(t *testing.T) {
	h := hosttest.New(hosttest.WithPages("home", "a", "b"))
	hist := newHistory(t, h, minihistory.Options{})

	assert.True(t, hist.CanGo(-2))
	assert.False(t, hist.CanGo(-3))
	assert.False(t, hist.CanGo(1))
	assert.True(t, hist.CanGo(0))

	t.Run("it should use the stack from the last router change", func(t *testing.T) {
		h.SetPages("home")
		assert.True(t, hist.CanGo(-2), "no router change yet")
		assert.Equal(t, 1, hist.Length())

		h.Store(&host.RouterInfo{Path: "home"})
		assert.False(t, hist.CanGo(-1))
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := hosttest.New()
	hist := newHistory(t, h, minihistory.Options{Registerer: reg})

	_, _ = hist.Push(t.Context(), "detail", nil)
	h.Launch("home")
	_, _ = hist.Push(t.Context(), "detail", nil)
	_, _ = hist.GoForward(t.Context())

	count, err := testutil.GatherAndCount(reg, "minihistory_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "appLaunch and navigateTo series")

	expected := `
# HELP minihistory_navigations_total Navigation requests issued through history, by method and outcome
# TYPE minihistory_navigations_total counter
minihistory_navigations_total{method="goForward",outcome="error"} 1
minihistory_navigations_total{method="push",outcome="noop"} 1
minihistory_navigations_total{method="push",outcome="ok"} 1
minihistory_navigations_total{method="push",outcome="pending"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "minihistory_navigations_total"))
}
