package dispatch

import "fmt"

// UnknownDispatcherError reports a dispatcher name with no registered builder.
type UnknownDispatcherError struct {
	Name string
}

func (e *UnknownDispatcherError) Error() string {
	return fmt.Sprintf("unknown dispatcher: %s", e.Name)
}

// MissingArgumentError reports a required argument that was not supplied.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument: %s", e.Name)
}

// InvalidArgumentError reports an argument that could not be parsed.
type InvalidArgumentError struct {
	Index int
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %d: %q", e.Index, e.Value)
}

// InvalidPidError reports a pid: identifier whose value is not an unsigned
// 32-bit integer.
type InvalidPidError struct {
	Value string
}

func (e *InvalidPidError) Error() string {
	return fmt.Sprintf("invalid PID: %s", e.Value)
}

// UnknownWorkspaceError reports an unrecognized workspace identifier.
type UnknownWorkspaceError struct {
	Value string
}

func (e *UnknownWorkspaceError) Error() string {
	return fmt.Sprintf("unknown workspace identifier: %s", e.Value)
}

// UnknownDirectionError reports an unrecognized focus/swap direction.
type UnknownDirectionError struct {
	Value string
}

func (e *UnknownDirectionError) Error() string {
	return fmt.Sprintf("unknown direction: %s", e.Value)
}

// UnknownCornerError reports an unrecognized screen corner.
type UnknownCornerError struct {
	Value string
}

func (e *UnknownCornerError) Error() string {
	return fmt.Sprintf("unknown corner: %s", e.Value)
}

// UnknownFullscreenTypeError reports an unrecognized fullscreen mode.
type UnknownFullscreenTypeError struct {
	Value string
}

func (e *UnknownFullscreenTypeError) Error() string {
	return fmt.Sprintf("unknown fullscreen type: %s", e.Value)
}

// UnknownCycleDirectionError reports an unrecognized cycle direction.
type UnknownCycleDirectionError struct {
	Value string
}

func (e *UnknownCycleDirectionError) Error() string {
	return fmt.Sprintf("unknown cycle direction: %s", e.Value)
}

// UnknownMoveTargetError reports an unrecognized movewindow target.
type UnknownMoveTargetError struct {
	Value string
}

func (e *UnknownMoveTargetError) Error() string {
	return fmt.Sprintf("unknown target for move-window: %s", e.Value)
}
