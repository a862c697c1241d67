package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single validated compositor action. Name and Args give the
// canonical CLI form (Build(cmd.Name(), cmd.Args()) reconstructs an equal
// command); Words gives the raw dispatcher words sent over the Hyprland
// socket.
type Command interface {
	Name() string
	Args() []string
	Words() []string
}

// Exec runs a shell command. Arguments are joined with single spaces; no
// quoting is applied, Hyprland executes the string as-is.
type Exec struct {
	Command []string
}

func (Exec) Name() string     { return "exec" }
func (c Exec) Args() []string { return c.Command }
func (c Exec) Words() []string {
	return []string{"exec", strings.Join(c.Command, " ")}
}

// KillActiveWindow closes the focused window.
type KillActiveWindow struct{}

func (KillActiveWindow) Name() string    { return "kill-active-window" }
func (KillActiveWindow) Args() []string  { return nil }
func (KillActiveWindow) Words() []string { return []string{"killactive"} }

// ToggleFloating toggles floating state for a window, or the focused window
// when no matcher is given.
type ToggleFloating struct {
	Window *WindowMatcher
}

func (ToggleFloating) Name() string { return "toggle-floating" }
func (c ToggleFloating) Args() []string {
	if c.Window == nil {
		return nil
	}
	return []string{c.Window.String()}
}
func (c ToggleFloating) Words() []string {
	if c.Window == nil {
		return []string{"togglefloating"}
	}
	return []string{"togglefloating", c.Window.String()}
}

// ToggleSplit toggles the split orientation (dwindle layout).
type ToggleSplit struct{}

func (ToggleSplit) Name() string    { return "toggle-split" }
func (ToggleSplit) Args() []string  { return nil }
func (ToggleSplit) Words() []string { return []string{"togglesplit"} }

// ToggleOpaque toggles opacity for the active window.
type ToggleOpaque struct{}

func (ToggleOpaque) Name() string    { return "toggle-opaque" }
func (ToggleOpaque) Args() []string  { return nil }
func (ToggleOpaque) Words() []string { return []string{"toggleopaque"} }

// MoveCursorToCorner warps the cursor to a screen corner.
type MoveCursorToCorner struct {
	Corner Corner
}

func (MoveCursorToCorner) Name() string     { return "move-cursor-to-corner" }
func (c MoveCursorToCorner) Args() []string { return []string{c.Corner.String()} }
func (c MoveCursorToCorner) Words() []string {
	return []string{"movecursortocorner", strconv.Itoa(int(c.Corner))}
}

// MoveCursor moves the cursor to an absolute position.
type MoveCursor struct {
	X, Y int64
}

func (MoveCursor) Name() string { return "move-cursor" }
func (c MoveCursor) Args() []string {
	return []string{strconv.FormatInt(c.X, 10), strconv.FormatInt(c.Y, 10)}
}
func (c MoveCursor) Words() []string {
	return []string{"movecursor", strconv.FormatInt(c.X, 10), strconv.FormatInt(c.Y, 10)}
}

// ToggleFullscreen toggles fullscreen state for the active window.
type ToggleFullscreen struct {
	Mode FullscreenType
}

func (ToggleFullscreen) Name() string     { return "toggle-fullscreen" }
func (c ToggleFullscreen) Args() []string { return []string{c.Mode.String()} }
func (c ToggleFullscreen) Words() []string {
	switch c.Mode {
	case FullscreenReal:
		return []string{"fullscreen", "0"}
	case FullscreenMaximize:
		return []string{"fullscreen", "1"}
	default:
		return []string{"fullscreen"}
	}
}

// MoveToWorkspace moves the focused window to a workspace and follows it.
type MoveToWorkspace struct {
	Workspace Workspace
}

func (MoveToWorkspace) Name() string     { return "move-to-workspace" }
func (c MoveToWorkspace) Args() []string { return []string{c.Workspace.String()} }
func (c MoveToWorkspace) Words() []string {
	return []string{"movetoworkspace", c.Workspace.wire()}
}

// MoveToWorkspaceSilent moves a window to a workspace without switching to it.
type MoveToWorkspaceSilent struct {
	Workspace Workspace
	Window    *WindowMatcher
}

func (MoveToWorkspaceSilent) Name() string { return "move-to-workspace-silent" }
func (c MoveToWorkspaceSilent) Args() []string {
	args := []string{c.Workspace.String()}
	if c.Window != nil {
		args = append(args, c.Window.String())
	}
	return args
}
func (c MoveToWorkspaceSilent) Words() []string {
	if c.Window == nil {
		return []string{"movetoworkspacesilent", c.Workspace.wire()}
	}
	return []string{"movetoworkspacesilent", c.Workspace.wire() + "," + c.Window.String()}
}

// SwitchWorkspace switches the focused monitor to a workspace.
type SwitchWorkspace struct {
	Workspace Workspace
}

func (SwitchWorkspace) Name() string     { return "workspace" }
func (c SwitchWorkspace) Args() []string { return []string{c.Workspace.String()} }
func (c SwitchWorkspace) Words() []string {
	return []string{"workspace", c.Workspace.wire()}
}

// CycleWindow focuses the next or previous window.
type CycleWindow struct {
	Direction CycleDirection
}

func (CycleWindow) Name() string     { return "cycle-window" }
func (c CycleWindow) Args() []string { return []string{c.Direction.String()} }
func (c CycleWindow) Words() []string {
	if c.Direction == CyclePrevious {
		return []string{"cyclenext", "prev"}
	}
	return []string{"cyclenext"}
}

// MoveFocus moves focus in a cardinal direction.
type MoveFocus struct {
	Direction Direction
}

func (MoveFocus) Name() string      { return "move-focus" }
func (c MoveFocus) Args() []string  { return []string{c.Direction.String()} }
func (c MoveFocus) Words() []string { return []string{"movefocus", c.Direction.wire()} }

// SwapWindow swaps the active window with the one in a direction.
type SwapWindow struct {
	Direction Direction
}

func (SwapWindow) Name() string      { return "swap-window" }
func (c SwapWindow) Args() []string  { return []string{c.Direction.String()} }
func (c SwapWindow) Words() []string { return []string{"swapwindow", c.Direction.wire()} }

// FocusWindow focuses a specific window.
type FocusWindow struct {
	Window WindowMatcher
}

func (FocusWindow) Name() string      { return "focus-window" }
func (c FocusWindow) Args() []string  { return []string{c.Window.String()} }
func (c FocusWindow) Words() []string { return []string{"focuswindow", c.Window.String()} }

// MoveWindow moves the active window to a monitor or in a direction.
type MoveWindow struct {
	Target MoveTarget
}

func (MoveWindow) Name() string      { return "move-window" }
func (c MoveWindow) Args() []string  { return []string{c.Target.String()} }
func (c MoveWindow) Words() []string { return []string{"movewindow", c.Target.wire()} }

// ToggleFakeFullscreen toggles fake fullscreen for the active window.
type ToggleFakeFullscreen struct{}

func (ToggleFakeFullscreen) Name() string    { return "toggle-fake-fullscreen" }
func (ToggleFakeFullscreen) Args() []string  { return nil }
func (ToggleFakeFullscreen) Words() []string { return []string{"fakefullscreen"} }

// TogglePseudo toggles pseudo tiling for the active window.
type TogglePseudo struct{}

func (TogglePseudo) Name() string    { return "toggle-pseudo" }
func (TogglePseudo) Args() []string  { return nil }
func (TogglePseudo) Words() []string { return []string{"pseudo"} }

// TogglePin pins the active window to all workspaces.
type TogglePin struct{}

func (TogglePin) Name() string    { return "toggle-pin" }
func (TogglePin) Args() []string  { return nil }
func (TogglePin) Words() []string { return []string{"pin"} }

// CenterWindow centers the active floating window.
type CenterWindow struct{}

func (CenterWindow) Name() string    { return "center-window" }
func (CenterWindow) Args() []string  { return nil }
func (CenterWindow) Words() []string { return []string{"centerwindow"} }

// BringActiveToTop raises the active window to the top of the stack.
type BringActiveToTop struct{}

func (BringActiveToTop) Name() string    { return "bring-active-to-top" }
func (BringActiveToTop) Args() []string  { return nil }
func (BringActiveToTop) Words() []string { return []string{"bringactivetotop"} }

// FocusUrgentOrLast focuses the urgent window, or the last one.
type FocusUrgentOrLast struct{}

func (FocusUrgentOrLast) Name() string    { return "focus-urgent-or-last" }
func (FocusUrgentOrLast) Args() []string  { return nil }
func (FocusUrgentOrLast) Words() []string { return []string{"focusurgentorlast"} }

// FocusCurrentOrLast switches focus between the current and last window.
type FocusCurrentOrLast struct{}

func (FocusCurrentOrLast) Name() string    { return "focus-current-or-last" }
func (FocusCurrentOrLast) Args() []string  { return nil }
func (FocusCurrentOrLast) Words() []string { return []string{"focuscurrentorlast"} }

// ForceRendererReload forces Hyprland to reload the renderer.
type ForceRendererReload struct{}

func (ForceRendererReload) Name() string    { return "force-renderer-reload" }
func (ForceRendererReload) Args() []string  { return nil }
func (ForceRendererReload) Words() []string { return []string{"forcerendererreload"} }

// Exit exits the compositor.
type Exit struct{}

func (Exit) Name() string    { return "exit" }
func (Exit) Args() []string  { return nil }
func (Exit) Words() []string { return []string{"exit"} }

// ResizeMode is the sizing parameter shared by the resize dispatchers:
// either a signed delta or exact non-negative pixel dimensions.
type ResizeMode struct {
	Exact  bool
	DX, DY int // delta form
	W, H   int // exact form
}

func (r ResizeMode) args() []string {
	if r.Exact {
		return []string{"exact", strconv.Itoa(r.W), strconv.Itoa(r.H)}
	}
	return []string{strconv.Itoa(r.DX), strconv.Itoa(r.DY)}
}

func (r ResizeMode) wire() string {
	if r.Exact {
		return fmt.Sprintf("exact %d %d", r.W, r.H)
	}
	return fmt.Sprintf("%d %d", r.DX, r.DY)
}

// ResizeActive resizes the active window.
type ResizeActive struct {
	Mode ResizeMode
}

func (ResizeActive) Name() string     { return "resize-active" }
func (c ResizeActive) Args() []string { return c.Mode.args() }
func (c ResizeActive) Words() []string {
	return []string{"resizeactive", c.Mode.wire()}
}

// ResizeWindowPixel resizes a specific window.
type ResizeWindowPixel struct {
	Mode   ResizeMode
	Window WindowMatcher
}

func (ResizeWindowPixel) Name() string { return "resize-window-pixel" }
func (c ResizeWindowPixel) Args() []string {
	return append(c.Mode.args(), c.Window.String())
}
func (c ResizeWindowPixel) Words() []string {
	return []string{"resizewindowpixel", c.Mode.wire() + "," + c.Window.String()}
}
