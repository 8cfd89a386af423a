package router

import "fmt"

// Action is the navigation that produced the current page.
type Action int

const (
	ActionNone   Action = iota // No action inferred yet
	AppLaunch                  // First page of the app was shown
	NavigateTo                 // A page was pushed
	RedirectTo                 // The top page was replaced
	NavigateBack               // One or more pages were popped
	SwitchTab                  // The stack was reset to a tab page
)

var actionNames = map[Action]string{
	ActionNone:   "",
	AppLaunch:    "appLaunch",
	NavigateTo:   "navigateTo",
	RedirectTo:   "redirectTo",
	NavigateBack: "navigateBack",
	SwitchTab:    "switchTab",
}

// String returns the host's name for the action, empty for ActionNone.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction is the inverse of String.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("router: unknown action %q", name)
}
