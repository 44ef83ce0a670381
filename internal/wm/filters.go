package wm

// Filter is an inclusion predicate for window enumeration.
type Filter func(*Window) bool

// And accepts windows every filter accepts.
func And(filters ...Filter) Filter {
	return func(w *Window) bool {
		for _, f := range filters {
			if !f(w) {
				return false
			}
		}
		return true
	}
}

// Or accepts windows any filter accepts.
func Or(filters ...Filter) Filter {
	return func(w *Window) bool {
		for _, f := range filters {
			if f(w) {
				return true
			}
		}
		return false
	}
}

// ExcludeTypes rejects windows declaring any of the given EWMH types.
func ExcludeTypes(types ...string) Filter {
	return func(w *Window) bool {
		for _, t := range types {
			if w.HasType(t) {
				return false
			}
		}
		return true
	}
}

// ExcludeStates rejects windows in any of the given EWMH states.
func ExcludeStates(states ...string) Filter {
	return func(w *Window) bool {
		for _, s := range states {
			if w.HasState(s) {
				return false
			}
		}
		return true
	}
}

// OnDesktop accepts windows on the given desktop, including sticky ones.
func OnDesktop(desktop uint) Filter {
	return func(w *Window) bool {
		d := w.Desktop()
		return d == desktop || d == AllDesktops
	}
}

// Standard accepts the windows a user thinks of as windows: no desktops,
// docks or splash screens, nothing hidden from the taskbar and pager.
func Standard() Filter {
	return And(
		ExcludeTypes(TypeDesktop, TypeDock, TypeSplash),
		ExcludeStates(StateSkipPager, StateSkipTaskbar),
	)
}
