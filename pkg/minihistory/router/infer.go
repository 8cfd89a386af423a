package router

import "strings"

// TabBar reports whether a route is one of the app's tab pages.
type TabBar interface {
	IsTabPage(route string) bool
}

// TabIndex is the set of tab page paths from the app configuration.
// The zero value has no tab pages.
type TabIndex struct {
	paths []string
	set   map[string]struct{}
}

// NewTabIndex builds an index from page paths without a leading slash.
func NewTabIndex(paths []string) *TabIndex {
	idx := &TabIndex{
		paths: make([]string, 0, len(paths)),
		set:   make(map[string]struct{}, len(paths)),
	}
	for _, p := range paths {
		if _, dup := idx.set[p]; dup {
			continue
		}
		idx.set[p] = struct{}{}
		idx.paths = append(idx.paths, p)
	}
	return idx
}

// IsTabPage matches a route exactly against the tab page paths.
func (t *TabIndex) IsTabPage(route string) bool {
	if t == nil {
		return false
	}
	_, ok := t.set[route]
	return ok
}

// MatchURL reports whether url (with leading slash, possibly with a query)
// starts with any tab page path.
func (t *TabIndex) MatchURL(url string) bool {
	if t == nil {
		return false
	}
	for _, p := range t.paths {
		if strings.HasPrefix(url, "/"+p) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct tab pages.
func (t *TabIndex) Len() int {
	if t == nil {
		return 0
	}
	return len(t.paths)
}

// Infer classifies the change from prev to cur.
//
// It returns ActionNone when prev is empty (the launch is reported separately),
// when cur is empty, or when the top page is unchanged at the same depth.
// A nil tabs is treated as an app without a tab bar.
func Infer(prev, cur Snapshot, tabs TabBar) Action {
	if prev.IsEmpty() || cur.IsEmpty() {
		return ActionNone
	}

	isTab := func(route string) bool {
		return tabs != nil && tabs.IsTabPage(route)
	}

	curTop := cur.Top()

	switch {
	case cur.Len() > prev.Len():
		return NavigateTo

	case cur.Len() == prev.Len():
		if curTop == prev.Top() {
			return ActionNone
		}
		if isTab(curTop) {
			return SwitchTab
		}
		return RedirectTo

	default:
		if !isTab(curTop) {
			return NavigateBack
		}
		// Back to the page the stack started from is assumed to be navigateBack(n).
		if curTop == prev.Bottom() {
			return NavigateBack
		}
		return SwitchTab
	}
}
