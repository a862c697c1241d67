package events

import (
	"strings"

	"github.com/HyDE-Project/hyde-ipc/internal/ipc"
)

// WindowData carries the window attributes an event payload provides. Only
// openwindow and a non-empty activewindow carry class and title; closewindow
// and the group membership events carry just the address.
type WindowData struct {
	Address string
	Class   string
	Title   string
}

// Event is one decoded compositor event.
type Event struct {
	Type    Type
	Window  *WindowData
	Payload string
}

// Decode maps a raw socket2 line onto a typed Event. Unrecognized kinds
// (v2 duplicates, submap changes, and other events this tool does not route)
// return ok=false.
func Decode(raw ipc.RawEvent) (Event, bool) {
	ev := Event{Payload: raw.Payload}
	switch raw.Kind {
	case "openwindow":
		// address,workspace,class,title
		parts := strings.SplitN(raw.Payload, ",", 4)
		ev.Type = Type{Kind: KindWindow, Sub: WindowOpened}
		w := &WindowData{}
		if len(parts) > 0 {
			w.Address = parts[0]
		}
		if len(parts) > 2 {
			w.Class = parts[2]
		}
		if len(parts) > 3 {
			w.Title = parts[3]
		}
		ev.Window = w
	case "closewindow":
		ev.Type = Type{Kind: KindWindow, Sub: WindowClosed}
	case "movewindow":
		ev.Type = Type{Kind: KindWindow, Sub: WindowMoved}
	case "activewindow":
		// class,title; both empty when no window is focused
		ev.Type = Type{Kind: KindWindow, Sub: WindowActive}
		parts := strings.SplitN(raw.Payload, ",", 2)
		w := &WindowData{}
		if len(parts) > 0 {
			w.Class = parts[0]
		}
		if len(parts) > 1 {
			w.Title = parts[1]
		}
		if w.Class != "" || w.Title != "" {
			ev.Window = w
		}
	case "workspace":
		ev.Type = Type{Kind: KindWorkspace, Sub: WorkspaceChanged}
	case "createworkspace":
		ev.Type = Type{Kind: KindWorkspace, Sub: WorkspaceAdded}
	case "destroyworkspace":
		ev.Type = Type{Kind: KindWorkspace, Sub: WorkspaceDeleted}
	case "focusedmon":
		ev.Type = Type{Kind: KindMonitor}
	case "changefloatingmode":
		ev.Type = Type{Kind: KindFloat}
	case "fullscreen":
		ev.Type = Type{Kind: KindFullscreen}
	case "activelayout":
		ev.Type = Type{Kind: KindLayout}
	case "togglegroup":
		ev.Type = Type{Kind: KindGroup, Sub: GroupToggled}
	case "moveintogroup":
		ev.Type = Type{Kind: KindGroup, Sub: GroupMovedIn}
	case "moveoutofgroup":
		ev.Type = Type{Kind: KindGroup, Sub: GroupMovedOut}
	case "configreloaded":
		ev.Type = Type{Kind: KindConfig}
	default:
		return Event{}, false
	}
	return ev, true
}
