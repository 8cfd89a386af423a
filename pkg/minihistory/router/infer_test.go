package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	tabs := NewTabIndex([]string{"home", "tabA", "tabB"})

	tests := []struct {
		name string
		prev []string
		cur  []string
		want Action
	}{
		{"stack grew", []string{"home"}, []string{"home", "detail"}, NavigateTo},
		{"stack grew onto a tab path", []string{"home"}, []string{"home", "tabA"}, NavigateTo},
		{"same length same top", []string{"home", "detail"}, []string{"home", "detail"}, ActionNone},
		{"same length new tab top", []string{"tabA"}, []string{"tabB"}, SwitchTab},
		{"same length new non-tab top", []string{"home", "detail"}, []string{"home", "other"}, RedirectTo},
		{"shrank to original bottom tab", []string{"home", "detail", "sub"}, []string{"home"}, NavigateBack},
		{"shrank to another tab", []string{"home", "detail", "sub"}, []string{"tabB"}, SwitchTab},
		{"shrank to non-tab page", []string{"list", "detail", "sub"}, []string{"list", "detail"}, NavigateBack},
		{"shrank by several to non-tab page", []string{"list", "a", "b", "c"}, []string{"list"}, NavigateBack},
		{"empty previous stack", nil, []string{"home"}, ActionNone},
		{"empty current stack", []string{"home"}, nil, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(NewSnapshot(tt.prev), NewSnapshot(tt.cur), tabs)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestInferWithoutTabBar(t *testing.T) {
	t.Run("same length new top is a redirect", func(t *testing.T) {
		assert.Equal(t, RedirectTo, Infer(NewSnapshot([]string{"a"}), NewSnapshot([]string{"b"}), nil))
	})

	t.Run("shrinking is always back", func(t *testing.T) {
		assert.Equal(t, NavigateBack, Infer(NewSnapshot([]string{"a", "b"}), NewSnapshot([]string{"c"}), &TabIndex{}))
	})
}

func TestTabIndex(t *testing.T) {
	idx := NewTabIndex([]string{"pages/index/index", "pages/mine/index", "pages/index/index"})

	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.IsTabPage("pages/mine/index"))
	assert.False(t, idx.IsTabPage("/pages/mine/index"))
	assert.True(t, idx.MatchURL("/pages/mine/index?tab=1"))
	assert.False(t, idx.MatchURL("pages/mine/index"))
	assert.False(t, idx.MatchURL("/pages/detail/index"))

	var none *TabIndex
	assert.False(t, none.IsTabPage("pages/index/index"))
	assert.False(t, none.MatchURL("/pages/index/index"))
	assert.Zero(t, none.Len())
}

func TestDiffer(t *testing.T) {
	t.Run("it should hand the current snapshot to the next cycle", func(t *testing.T) {
		d := NewDiffer(NewSnapshot([]string{"home"}), nil)

		assert.Equal(t, NavigateTo, d.Observe(NewSnapshot([]string{"home", "detail"})))
		assert.Equal(t, []string{"home", "detail"}, d.Latest().Routes())

		assert.Equal(t, NavigateBack, d.Observe(NewSnapshot([]string{"home"})))
		assert.Equal(t, 1, d.Latest().Len())
	})

	t.Run("it should replace the snapshot even when nothing was inferred", func(t *testing.T) {
		d := NewDiffer(Snapshot{}, nil)

		assert.Equal(t, ActionNone, d.Observe(NewSnapshot([]string{"home"})))
		assert.Equal(t, "home", d.Latest().Top())

		assert.Equal(t, ActionNone, d.Observe(NewSnapshot([]string{"home"})))
		assert.Equal(t, NavigateTo, d.Observe(NewSnapshot([]string{"home", "a"})))
	})
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	routes := []string{"a", "b"}
	s := NewSnapshot(routes)
	routes[1] = "c"

	assert.Equal(t, "b", s.Top())
	assert.Equal(t, "a", s.Bottom())

	out := s.Routes()
	out[0] = "z"
	assert.Equal(t, "a", s.Bottom())

	var empty Snapshot
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.Top())
	assert.Equal(t, "", empty.Bottom())
}

func TestAction(t *testing.T) {
	for _, a := range []Action{AppLaunch, NavigateTo, RedirectTo, NavigateBack, SwitchTab} {
		parsed, err := ParseAction(a.String())
		assert.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	assert.Equal(t, "", ActionNone.String())
	assert.Equal(t, "Action(42)", Action(42).String())

	_, err := ParseAction("")
	assert.Error(t, err)
	_, err = ParseAction("reLaunch")
	assert.Error(t, err)
}
