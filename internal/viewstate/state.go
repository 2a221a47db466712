// Package viewstate tracks which optional dashboard sections are expanded.
// Every change yields a new SessionState; snapshots are never modified in place.
package viewstate

// State is the visibility of a single view flag.
type State int

const (
	Collapsed State = iota
	Expanded
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Flip returns the opposite state.
func (s State) Flip() State {
	if s == Expanded {
		return Collapsed
	}
	return Expanded
}

// Well-known flag names used by the dashboard.
const (
	FlagMenu        = "menu"
	FlagMoreCourses = "more_courses"
	FlagAllCourses  = "all_courses"
)

// DefaultFlags returns the flags the dashboard registers at session start.
func DefaultFlags() []string {
	return []string{FlagMenu, FlagMoreCourses, FlagAllCourses}
}
