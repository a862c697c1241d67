// Package events maps the raw Hyprland socket2 stream onto the typed event
// model reactions are keyed by.
package events

import (
	"fmt"
	"strings"
)

// Kind is the top-level event family.
type Kind int

const (
	KindWindow Kind = iota
	KindWorkspace
	KindMonitor
	KindFloat
	KindFullscreen
	KindLayout
	KindGroup
	KindConfig
)

// Subtype narrows a window, workspace, or group event.
type Subtype int

const (
	SubNone Subtype = iota

	WindowOpened
	WindowClosed
	WindowMoved
	WindowActive

	WorkspaceChanged
	WorkspaceAdded
	WorkspaceDeleted

	GroupToggled
	GroupMovedIn
	GroupMovedOut
)

// Type identifies one event family/subtype pair. Window, workspace, and
// group events require a subtype; the rest carry SubNone.
type Type struct {
	Kind Kind
	Sub  Subtype
}

var windowSubs = map[string]Subtype{
	"opened": WindowOpened,
	"closed": WindowClosed,
	"moved":  WindowMoved,
	"active": WindowActive,
}

var workspaceSubs = map[string]Subtype{
	"changed": WorkspaceChanged,
	"added":   WorkspaceAdded,
	"deleted": WorkspaceDeleted,
}

var groupSubs = map[string]Subtype{
	"toggled":   GroupToggled,
	"moved-in":  GroupMovedIn,
	"moved-out": GroupMovedOut,
}

// ParseType builds a Type from an event name and optional subtype, both
// case-insensitive. Window, workspace, and group events require a subtype;
// the remaining kinds reject one.
func ParseType(event, subtype string) (Type, error) {
	sub := strings.ToLower(subtype)
	switch strings.ToLower(event) {
	case "window":
		if sub == "" {
			return Type{}, fmt.Errorf("window event requires a subtype")
		}
		s, ok := windowSubs[sub]
		if !ok {
			return Type{}, fmt.Errorf("unknown window subtype: %s", subtype)
		}
		return Type{Kind: KindWindow, Sub: s}, nil
	case "workspace":
		if sub == "" {
			return Type{}, fmt.Errorf("workspace event requires a subtype")
		}
		s, ok := workspaceSubs[sub]
		if !ok {
			return Type{}, fmt.Errorf("unknown workspace subtype: %s", subtype)
		}
		return Type{Kind: KindWorkspace, Sub: s}, nil
	case "group":
		if sub == "" {
			return Type{}, fmt.Errorf("group event requires a subtype")
		}
		s, ok := groupSubs[sub]
		if !ok {
			return Type{}, fmt.Errorf("unknown group subtype: %s", subtype)
		}
		return Type{Kind: KindGroup, Sub: s}, nil
	case "monitor", "float", "fullscreen", "layout", "config":
		if sub != "" {
			return Type{}, fmt.Errorf("%s event takes no subtype, got %q", strings.ToLower(event), subtype)
		}
		switch strings.ToLower(event) {
		case "monitor":
			return Type{Kind: KindMonitor}, nil
		case "float":
			return Type{Kind: KindFloat}, nil
		case "fullscreen":
			return Type{Kind: KindFullscreen}, nil
		case "layout":
			return Type{Kind: KindLayout}, nil
		default:
			return Type{Kind: KindConfig}, nil
		}
	}
	return Type{}, fmt.Errorf("unknown event type: %s", event)
}

func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "window"
	case KindWorkspace:
		return "workspace"
	case KindMonitor:
		return "monitor"
	case KindFloat:
		return "float"
	case KindFullscreen:
		return "fullscreen"
	case KindLayout:
		return "layout"
	case KindGroup:
		return "group"
	default:
		return "config"
	}
}

func (s Subtype) String() string {
	switch s {
	case WindowOpened:
		return "opened"
	case WindowClosed:
		return "closed"
	case WindowMoved:
		return "moved"
	case WindowActive:
		return "active"
	case WorkspaceChanged:
		return "changed"
	case WorkspaceAdded:
		return "added"
	case WorkspaceDeleted:
		return "deleted"
	case GroupToggled:
		return "toggled"
	case GroupMovedIn:
		return "moved-in"
	case GroupMovedOut:
		return "moved-out"
	default:
		return ""
	}
}

func (t Type) String() string {
	if t.Sub == SubNone {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + t.Sub.String()
}

// MarshalText renders the dotted form used in config files ("window.opened",
// "monitor").
func (t Type) MarshalText() ([]byte, error) {
	if t.Sub == SubNone {
		return []byte(t.Kind.String()), nil
	}
	return []byte(t.Kind.String() + "." + t.Sub.String()), nil
}

// UnmarshalText accepts "kind.subtype", "kind:subtype", or "kind subtype".
func (t *Type) UnmarshalText(text []byte) error {
	s := string(text)
	event, subtype := s, ""
	if i := strings.IndexAny(s, ".: "); i >= 0 {
		event, subtype = s[:i], s[i+1:]
	}
	parsed, err := ParseType(event, subtype)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
