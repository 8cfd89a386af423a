// Package router infers how the host got from one page stack to the next.
//
// Mini-program hosts do not report why the current page changed. They only
// rewrite the current router on every page onLoad/onShow and let callers read
// the page stack. This package turns two successive stack snapshots into one
// of the host's navigation actions.
//
// # Basic Usage
//
//	tabs := router.NewTabIndex([]string{"pages/index/index", "pages/mine/index"})
//
//	prev := router.NewSnapshot([]string{"pages/index/index"})
//	cur := router.NewSnapshot([]string{"pages/index/index", "pages/detail/index"})
//
//	router.Infer(prev, cur, tabs) // NavigateTo
//
// # Differ
//
// A Differ keeps the last observed snapshot between lifecycle events so the
// caller only has to feed it the fresh one:
//
//	d := router.NewDiffer(initial, tabs)
//	action := d.Observe(router.NewSnapshot(routes))
//	if action != router.ActionNone {
//	    // publish
//	}
//
// # Classification
//
// The rules, in order:
//
//   - stack grew: NavigateTo
//   - same length, same top: nothing happened
//   - same length, new top is a tab page: SwitchTab
//   - same length, otherwise: RedirectTo
//   - stack shrank, new top is a tab page equal to the previous bottom: NavigateBack
//   - stack shrank, new top is any other tab page: SwitchTab
//   - stack shrank, otherwise: NavigateBack
//
// Collapsing back to the original tab page looks the same as a multi-step
// back, and is reported as NavigateBack.
package router
