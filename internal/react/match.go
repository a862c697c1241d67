package react

import (
	"strings"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/events"
)

// windowMatches tests a filter against the window attributes an event
// carries. Class and title filters are containment tests; PID and address
// filters never match because the event stream does not carry those fields.
// A nil filter always matches.
func windowMatches(filter *dispatch.WindowMatcher, w *events.WindowData) bool {
	if filter == nil {
		return true
	}
	if w == nil {
		return false
	}
	switch filter.Kind {
	case dispatch.MatchClass:
		return strings.Contains(w.Class, filter.Pattern)
	case dispatch.MatchTitle:
		return strings.Contains(w.Title, filter.Pattern)
	default:
		return false
	}
}
