package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

// MatcherKind selects which window attribute a WindowMatcher tests.
type MatcherKind int

const (
	MatchClass MatcherKind = iota
	MatchTitle
	MatchPID
	MatchAddress
)

// WindowMatcher identifies a window by class pattern, title pattern, process
// ID, or address. Exactly one discriminant is meaningful per value. Class and
// title patterns are containment patterns against the live window's class or
// title, despite Hyprland calling the class form a regex.
type WindowMatcher struct {
	Kind    MatcherKind
	Pattern string
	PID     uint32
	Address string
}

// ParseWindowMatcher parses a prefixed window identifier (class:, title:,
// pid:, address:). A string without a recognized prefix is treated as a class
// pattern for backward compatibility.
func ParseWindowMatcher(s string) (WindowMatcher, error) {
	switch {
	case strings.HasPrefix(s, "class:"):
		return WindowMatcher{Kind: MatchClass, Pattern: strings.TrimPrefix(s, "class:")}, nil
	case strings.HasPrefix(s, "title:"):
		return WindowMatcher{Kind: MatchTitle, Pattern: strings.TrimPrefix(s, "title:")}, nil
	case strings.HasPrefix(s, "pid:"):
		raw := strings.TrimPrefix(s, "pid:")
		pid, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return WindowMatcher{}, &InvalidPidError{Value: raw}
		}
		return WindowMatcher{Kind: MatchPID, PID: uint32(pid)}, nil
	case strings.HasPrefix(s, "address:"):
		return WindowMatcher{Kind: MatchAddress, Address: strings.TrimPrefix(s, "address:")}, nil
	default:
		return WindowMatcher{Kind: MatchClass, Pattern: s}, nil
	}
}

// String renders the canonical prefixed form, accepted back by
// ParseWindowMatcher.
func (m WindowMatcher) String() string {
	switch m.Kind {
	case MatchTitle:
		return "title:" + m.Pattern
	case MatchPID:
		return fmt.Sprintf("pid:%d", m.PID)
	case MatchAddress:
		return "address:" + m.Address
	default:
		return "class:" + m.Pattern
	}
}

// WorkspaceKind selects the workspace addressing scheme.
type WorkspaceKind int

const (
	WorkspaceID WorkspaceKind = iota
	WorkspaceRelative
	WorkspacePrevious
	WorkspaceEmpty
	WorkspaceNamed
	WorkspaceSpecial
)

// Workspace specifies a workspace by absolute ID, signed relative offset,
// name, or one of the special keywords.
type Workspace struct {
	Kind   WorkspaceKind
	ID     int
	Offset int
	Name   string
}

// ParseWorkspace parses a workspace specifier: a plain integer, right:N /
// left:N relative movement, the literals previous and empty, or name:NAME.
// The integer 0 resolves to the special workspace.
func ParseWorkspace(s string) (Workspace, error) {
	if id, err := strconv.Atoi(s); err == nil {
		if id == 0 {
			return Workspace{Kind: WorkspaceSpecial}, nil
		}
		return Workspace{Kind: WorkspaceID, ID: id}, nil
	}
	if raw, ok := strings.CutPrefix(s, "right:"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Workspace{}, &UnknownWorkspaceError{Value: s}
		}
		return Workspace{Kind: WorkspaceRelative, Offset: n}, nil
	}
	if raw, ok := strings.CutPrefix(s, "left:"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Workspace{}, &UnknownWorkspaceError{Value: s}
		}
		return Workspace{Kind: WorkspaceRelative, Offset: -n}, nil
	}
	switch {
	case s == "previous":
		return Workspace{Kind: WorkspacePrevious}, nil
	case s == "empty":
		return Workspace{Kind: WorkspaceEmpty}, nil
	case strings.HasPrefix(s, "name:"):
		return Workspace{Kind: WorkspaceNamed, Name: strings.TrimPrefix(s, "name:")}, nil
	}
	return Workspace{}, &UnknownWorkspaceError{Value: s}
}

// String renders the canonical specifier form, accepted back by
// ParseWorkspace.
func (w Workspace) String() string {
	switch w.Kind {
	case WorkspaceRelative:
		if w.Offset < 0 {
			return fmt.Sprintf("left:%d", -w.Offset)
		}
		return fmt.Sprintf("right:%d", w.Offset)
	case WorkspacePrevious:
		return "previous"
	case WorkspaceEmpty:
		return "empty"
	case WorkspaceNamed:
		return "name:" + w.Name
	case WorkspaceSpecial:
		return "0"
	default:
		return strconv.Itoa(w.ID)
	}
}

// wire renders the Hyprland socket form of the specifier.
func (w Workspace) wire() string {
	switch w.Kind {
	case WorkspaceRelative:
		return fmt.Sprintf("%+d", w.Offset)
	case WorkspacePrevious:
		return "previous"
	case WorkspaceEmpty:
		return "empty"
	case WorkspaceNamed:
		return "name:" + w.Name
	case WorkspaceSpecial:
		return "special"
	default:
		return strconv.Itoa(w.ID)
	}
}

// Direction is a cardinal focus/swap direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directions = map[string]Direction{
	"up":    DirUp,
	"down":  DirDown,
	"left":  DirLeft,
	"right": DirRight,
}

// ParseDirection parses a case-insensitive cardinal direction.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directions[strings.ToLower(s)]; ok {
		return d, nil
	}
	return 0, &UnknownDirectionError{Value: s}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// wire renders the single-letter direction the Hyprland socket expects.
func (d Direction) wire() string {
	switch d {
	case DirUp:
		return "u"
	case DirDown:
		return "d"
	case DirLeft:
		return "l"
	default:
		return "r"
	}
}

// Corner is a screen corner for cursor warping. The numeric order matches
// Hyprland's movecursortocorner parameter.
type Corner int

const (
	CornerBottomLeft Corner = iota
	CornerBottomRight
	CornerTopRight
	CornerTopLeft
)

var corners = map[string]Corner{
	"bottomleft":  CornerBottomLeft,
	"bottomright": CornerBottomRight,
	"topright":    CornerTopRight,
	"topleft":     CornerTopLeft,
}

// ParseCorner parses a case-insensitive corner name (e.g. "TopLeft").
func ParseCorner(s string) (Corner, error) {
	if c, ok := corners[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, &UnknownCornerError{Value: s}
}

func (c Corner) String() string {
	switch c {
	case CornerBottomLeft:
		return "bottomleft"
	case CornerBottomRight:
		return "bottomright"
	case CornerTopRight:
		return "topright"
	default:
		return "topleft"
	}
}

// FullscreenType selects the fullscreen mode toggled by toggle-fullscreen.
type FullscreenType int

const (
	FullscreenNoParam FullscreenType = iota
	FullscreenReal
	FullscreenMaximize
)

var fullscreenTypes = map[string]FullscreenType{
	"real":     FullscreenReal,
	"maximize": FullscreenMaximize,
	"noparam":  FullscreenNoParam,
}

// ParseFullscreenType parses a case-insensitive fullscreen mode.
func ParseFullscreenType(s string) (FullscreenType, error) {
	if t, ok := fullscreenTypes[strings.ToLower(s)]; ok {
		return t, nil
	}
	return 0, &UnknownFullscreenTypeError{Value: s}
}

func (t FullscreenType) String() string {
	switch t {
	case FullscreenReal:
		return "real"
	case FullscreenMaximize:
		return "maximize"
	default:
		return "noparam"
	}
}

// CycleDirection selects the cycle-window traversal order.
type CycleDirection int

const (
	CycleNext CycleDirection = iota
	CyclePrevious
)

// ParseCycleDirection parses a case-insensitive cycle direction.
func ParseCycleDirection(s string) (CycleDirection, error) {
	switch strings.ToLower(s) {
	case "next":
		return CycleNext, nil
	case "previous":
		return CyclePrevious, nil
	}
	return 0, &UnknownCycleDirectionError{Value: s}
}

func (d CycleDirection) String() string {
	if d == CyclePrevious {
		return "previous"
	}
	return "next"
}

// MoveTargetKind selects the movewindow destination scheme.
type MoveTargetKind int

const (
	MoveToMonitorName MoveTargetKind = iota
	MoveToMonitorID
	MoveToMonitorCurrent
	MoveToMonitorRelative
	MoveInDirection
)

// MoveTarget is a movewindow destination: a monitor (by name, id, relative
// offset, or the current one) or a direction.
type MoveTarget struct {
	Kind      MoveTargetKind
	Monitor   string
	ID        int
	Offset    int
	Direction Direction
}

// ParseMoveTarget parses a movewindow target: mon:NAME, a monitor id,
// "current", a signed relative offset, or dir:DIRECTION.
func ParseMoveTarget(s string) (MoveTarget, error) {
	if name, ok := strings.CutPrefix(s, "mon:"); ok {
		return MoveTarget{Kind: MoveToMonitorName, Monitor: name}, nil
	}
	if strings.EqualFold(s, "current") {
		return MoveTarget{Kind: MoveToMonitorCurrent}, nil
	}
	if id, err := strconv.Atoi(s); err == nil {
		if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
			return MoveTarget{Kind: MoveToMonitorRelative, Offset: id}, nil
		}
		return MoveTarget{Kind: MoveToMonitorID, ID: id}, nil
	}
	if raw, ok := strings.CutPrefix(strings.ToLower(s), "dir:"); ok {
		d, err := ParseDirection(raw)
		if err != nil {
			return MoveTarget{}, err
		}
		return MoveTarget{Kind: MoveInDirection, Direction: d}, nil
	}
	return MoveTarget{}, &UnknownMoveTargetError{Value: s}
}

// String renders the canonical target form, accepted back by ParseMoveTarget.
func (t MoveTarget) String() string {
	switch t.Kind {
	case MoveToMonitorName:
		return "mon:" + t.Monitor
	case MoveToMonitorCurrent:
		return "current"
	case MoveToMonitorRelative:
		return fmt.Sprintf("%+d", t.Offset)
	case MoveInDirection:
		return "dir:" + t.Direction.String()
	default:
		return strconv.Itoa(t.ID)
	}
}

// wire renders the Hyprland socket form of the target.
func (t MoveTarget) wire() string {
	switch t.Kind {
	case MoveToMonitorName:
		return "mon:" + t.Monitor
	case MoveToMonitorCurrent:
		return "mon:current"
	case MoveToMonitorRelative:
		return fmt.Sprintf("mon:%+d", t.Offset)
	case MoveInDirection:
		return t.Direction.wire()
	default:
		return fmt.Sprintf("mon:%d", t.ID)
	}
}
