package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
)

// Dispatcher issues dispatch commands to Hyprland.
type Dispatcher interface {
	Dispatch(args ...string) error
}

// Client wraps hyprctl shell-outs.
type Client struct {
	Binary string
}

// NewClient returns a hyprctl client using the binary on PATH.
func NewClient() *Client {
	return &Client{Binary: "hyprctl"}
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("hyprctl %s: %v: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func (c *Client) queryJSON(ctx context.Context, topic string) ([]byte, error) {
	return c.run(ctx, "-j", topic)
}

// GetOption returns the current value of a Hyprland config keyword.
func (c *Client) GetOption(ctx context.Context, name string) (string, error) {
	data, err := c.run(ctx, "-j", "getoption", name)
	if err != nil {
		return "", err
	}
	var payload struct {
		Str   string   `json:"str"`
		Int   *int64   `json:"int"`
		Float *float64 `json:"float"`
		Set   bool     `json:"set"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode getoption %s: %w", name, err)
	}
	if payload.Str != "" {
		return payload.Str, nil
	}
	if payload.Int != nil {
		return fmt.Sprintf("%d", *payload.Int), nil
	}
	if payload.Float != nil {
		return fmt.Sprintf("%g", *payload.Float), nil
	}
	return "", nil
}

// SetKeyword applies a Hyprland config keyword for the running session.
func (c *Client) SetKeyword(ctx context.Context, name, value string) error {
	_, err := c.run(ctx, "keyword", name, value)
	return err
}

// CursorPos reports the current cursor position.
func (c *Client) CursorPos(ctx context.Context) (int, int, error) {
	data, err := c.queryJSON(ctx, "cursorpos")
	if err != nil {
		return 0, 0, err
	}
	var payload struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, 0, fmt.Errorf("decode cursorpos: %w", err)
	}
	return payload.X, payload.Y, nil
}

// ActiveWindow describes the currently focused window, or nil when none.
type ActiveWindow struct {
	Address   string `json:"address"`
	Class     string `json:"class"`
	Title     string `json:"title"`
	PID       int    `json:"pid"`
	Workspace struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"workspace"`
	Floating   bool `json:"floating"`
	Fullscreen int  `json:"fullscreen"`
}

// QueryActiveWindow returns the focused window, or nil when no window has focus.
func (c *Client) QueryActiveWindow(ctx context.Context) (*ActiveWindow, error) {
	data, err := c.queryJSON(ctx, "activewindow")
	if err != nil {
		return nil, err
	}
	var payload ActiveWindow
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode activewindow: %w", err)
	}
	if payload.Address == "" {
		return nil, nil
	}
	return &payload, nil
}

// Dispatch invokes `hyprctl dispatch`.
func (c *Client) Dispatch(args ...string) error {
	ctx := context.Background()
	dispatchArgs := append([]string{"dispatch"}, args...)
	_, err := c.run(ctx, dispatchArgs...)
	return err
}

// DispatchStrategy describes how dispatch commands are issued to Hyprland.
type DispatchStrategy string

const (
	// DispatchStrategySocket uses the Hyprland command socket directly.
	DispatchStrategySocket DispatchStrategy = "socket"
	// DispatchStrategyHyprctl shells out to the hyprctl binary.
	DispatchStrategyHyprctl DispatchStrategy = "hyprctl"
)

// CommandClient sends typed dispatch commands using the selected strategy.
type CommandClient struct {
	*Client
	dispatcher Dispatcher
}

// Dispatch forwards dispatch requests to the active dispatcher.
func (c *CommandClient) Dispatch(args ...string) error {
	if c.dispatcher != nil {
		return c.dispatcher.Dispatch(args...)
	}
	return c.Client.Dispatch(args...)
}

// Execute sends a typed command in its socket wire form.
func (c *CommandClient) Execute(cmd dispatch.Command) error {
	return c.Dispatch(cmd.Words()...)
}

// BatchDispatcher issues several dispatch commands in one request.
type BatchDispatcher interface {
	DispatchBatch(commands [][]string) error
}

// ExecuteBatch sends the commands as one framed request when the active
// dispatcher supports batching, falling back to sequential dispatch.
func (c *CommandClient) ExecuteBatch(cmds []dispatch.Command) error {
	words := make([][]string, 0, len(cmds))
	for _, cmd := range cmds {
		words = append(words, cmd.Words())
	}
	if batcher, ok := c.dispatcher.(BatchDispatcher); ok {
		return batcher.DispatchBatch(words)
	}
	for _, w := range words {
		if err := c.Dispatch(w...); err != nil {
			return err
		}
	}
	return nil
}

// NewCommandClient returns a client using the requested strategy, falling back
// to hyprctl when the command socket is unavailable.
func NewCommandClient(logger zerolog.Logger, requested DispatchStrategy) (*CommandClient, DispatchStrategy, error) {
	base := NewClient()
	switch requested {
	case DispatchStrategySocket:
		disp, err := newSocketDispatcher()
		if err != nil {
			logger.Warn().Err(err).Msg("falling back to hyprctl dispatch")
			return &CommandClient{Client: base}, DispatchStrategyHyprctl, nil
		}
		logger.Debug().Str("socket", disp.DispatchSocketPath()).Msg("using socket dispatch")
		return &CommandClient{Client: base, dispatcher: disp}, DispatchStrategySocket, nil
	case DispatchStrategyHyprctl:
		return &CommandClient{Client: base}, DispatchStrategyHyprctl, nil
	default:
		return nil, "", fmt.Errorf("unknown dispatch strategy %q", requested)
	}
}

var _ Dispatcher = (*Client)(nil)
var _ Dispatcher = (*CommandClient)(nil)
var _ Dispatcher = (*socketDispatcher)(nil)
