package dispatch

import (
	"strconv"
	"strings"
)

type builder func(args []string) (Command, error)

// builders maps normalized dispatcher names to constructors. Built once;
// lookup keys are lowercased with hyphen/underscore separators stripped, so
// "resize-active", "resize_active", and "resizeActive" all resolve.
var builders = map[string]builder{
	"exec":                  buildExec,
	"killactivewindow":      nullary(KillActiveWindow{}),
	"togglefloating":        buildToggleFloating,
	"togglesplit":           nullary(ToggleSplit{}),
	"toggleopaque":          nullary(ToggleOpaque{}),
	"movecursortocorner":    buildMoveCursorToCorner,
	"movecursor":            buildMoveCursor,
	"togglefullscreen":      buildToggleFullscreen,
	"movetoworkspace":       buildMoveToWorkspace,
	"movetoworkspacesilent": buildMoveToWorkspaceSilent,
	"workspace":             buildWorkspace,
	"cyclewindow":           buildCycleWindow,
	"movefocus":             buildMoveFocus,
	"swapwindow":            buildSwapWindow,
	"focuswindow":           buildFocusWindow,
	"movewindow":            buildMoveWindow,
	"togglefakefullscreen":  nullary(ToggleFakeFullscreen{}),
	"togglepseudo":          nullary(TogglePseudo{}),
	"togglepin":             nullary(TogglePin{}),
	"centerwindow":          nullary(CenterWindow{}),
	"bringactivetotop":      nullary(BringActiveToTop{}),
	"focusurgentorlast":     nullary(FocusUrgentOrLast{}),
	"focuscurrentorlast":    nullary(FocusCurrentOrLast{}),
	"forcerendererreload":   nullary(ForceRendererReload{}),
	"exit":                  nullary(Exit{}),
	"resizeactive":          buildResizeActive,
	"resizewindowpixel":     buildResizeWindowPixel,
}

// Build constructs a validated Command from a dispatcher name and raw string
// arguments. Construction is atomic: on any parse failure no Command is
// returned.
func Build(name string, args []string) (Command, error) {
	b, ok := builders[normalizeName(name)]
	if !ok {
		return nil, &UnknownDispatcherError{Name: name}
	}
	return b(args)
}

func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}

func nullary(cmd Command) builder {
	return func(args []string) (Command, error) {
		if len(args) > 0 {
			return nil, &InvalidArgumentError{Index: 0, Value: args[0]}
		}
		return cmd, nil
	}
}

func buildExec(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "command"}
	}
	return Exec{Command: args}, nil
}

func buildToggleFloating(args []string) (Command, error) {
	if len(args) == 0 {
		return ToggleFloating{}, nil
	}
	m, err := ParseWindowMatcher(args[0])
	if err != nil {
		return nil, err
	}
	return ToggleFloating{Window: &m}, nil
}

func buildMoveCursorToCorner(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "corner"}
	}
	c, err := ParseCorner(args[0])
	if err != nil {
		return nil, err
	}
	return MoveCursorToCorner{Corner: c}, nil
}

func buildMoveCursor(args []string) (Command, error) {
	if len(args) < 1 {
		return nil, &MissingArgumentError{Name: "x"}
	}
	if len(args) < 2 {
		return nil, &MissingArgumentError{Name: "y"}
	}
	x, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, &InvalidArgumentError{Index: 0, Value: args[0]}
	}
	y, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, &InvalidArgumentError{Index: 1, Value: args[1]}
	}
	return MoveCursor{X: x, Y: y}, nil
}

func buildToggleFullscreen(args []string) (Command, error) {
	if len(args) == 0 {
		return ToggleFullscreen{Mode: FullscreenNoParam}, nil
	}
	t, err := ParseFullscreenType(args[0])
	if err != nil {
		return nil, err
	}
	return ToggleFullscreen{Mode: t}, nil
}

func buildMoveToWorkspace(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "workspace"}
	}
	ws, err := ParseWorkspace(args[0])
	if err != nil {
		return nil, err
	}
	return MoveToWorkspace{Workspace: ws}, nil
}

func buildMoveToWorkspaceSilent(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "workspace"}
	}
	ws, err := ParseWorkspace(args[0])
	if err != nil {
		return nil, err
	}
	cmd := MoveToWorkspaceSilent{Workspace: ws}
	if len(args) > 1 {
		m, err := ParseWindowMatcher(args[1])
		if err != nil {
			return nil, err
		}
		cmd.Window = &m
	}
	return cmd, nil
}

func buildWorkspace(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "workspace"}
	}
	ws, err := ParseWorkspace(args[0])
	if err != nil {
		return nil, err
	}
	return SwitchWorkspace{Workspace: ws}, nil
}

// buildCycleWindow defaults to Next when the direction is absent or an
// explicit empty string; a non-empty invalid direction still errors.
func buildCycleWindow(args []string) (Command, error) {
	if len(args) == 0 || args[0] == "" {
		return CycleWindow{Direction: CycleNext}, nil
	}
	d, err := ParseCycleDirection(args[0])
	if err != nil {
		return nil, err
	}
	return CycleWindow{Direction: d}, nil
}

func buildMoveFocus(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "direction"}
	}
	d, err := ParseDirection(args[0])
	if err != nil {
		return nil, err
	}
	return MoveFocus{Direction: d}, nil
}

func buildSwapWindow(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "direction"}
	}
	d, err := ParseDirection(args[0])
	if err != nil {
		return nil, err
	}
	return SwapWindow{Direction: d}, nil
}

func buildFocusWindow(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "window"}
	}
	m, err := ParseWindowMatcher(args[0])
	if err != nil {
		return nil, err
	}
	return FocusWindow{Window: m}, nil
}

func buildMoveWindow(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentError{Name: "target"}
	}
	t, err := ParseMoveTarget(args[0])
	if err != nil {
		return nil, err
	}
	return MoveWindow{Target: t}, nil
}

func buildResizeActive(args []string) (Command, error) {
	mode, n, err := buildResizeMode(args)
	if err != nil {
		return nil, err
	}
	if len(args) > n {
		return nil, &InvalidArgumentError{Index: n, Value: args[n]}
	}
	return ResizeActive{Mode: mode}, nil
}

func buildResizeWindowPixel(args []string) (Command, error) {
	mode, n, err := buildResizeMode(args)
	if err != nil {
		return nil, err
	}
	if len(args) <= n {
		return nil, &MissingArgumentError{Name: "window"}
	}
	m, err := ParseWindowMatcher(args[n])
	if err != nil {
		return nil, err
	}
	if len(args) > n+1 {
		return nil, &InvalidArgumentError{Index: n + 1, Value: args[n+1]}
	}
	return ResizeWindowPixel{Mode: mode, Window: m}, nil
}

// buildResizeMode consumes either "exact <w> <h>" (non-negative), an
// optional "delta" keyword followed by signed <dx> <dy>, or bare <dx> <dy>.
// Returns the number of arguments consumed.
func buildResizeMode(args []string) (ResizeMode, int, error) {
	if len(args) == 0 {
		return ResizeMode{}, 0, &MissingArgumentError{Name: "resize parameters"}
	}
	base := 0
	exact := false
	switch args[0] {
	case "exact":
		exact = true
		base = 1
	case "delta":
		base = 1
	}
	if len(args) < base+2 {
		return ResizeMode{}, 0, &MissingArgumentError{Name: "resize parameters"}
	}
	a, err := strconv.Atoi(args[base])
	if err != nil {
		return ResizeMode{}, 0, &InvalidArgumentError{Index: base, Value: args[base]}
	}
	b, err := strconv.Atoi(args[base+1])
	if err != nil {
		return ResizeMode{}, 0, &InvalidArgumentError{Index: base + 1, Value: args[base+1]}
	}
	if exact {
		if a < 0 {
			return ResizeMode{}, 0, &InvalidArgumentError{Index: base, Value: args[base]}
		}
		if b < 0 {
			return ResizeMode{}, 0, &InvalidArgumentError{Index: base + 1, Value: args[base+1]}
		}
		return ResizeMode{Exact: true, W: a, H: b}, base + 2, nil
	}
	return ResizeMode{DX: a, DY: b}, base + 2, nil
}
