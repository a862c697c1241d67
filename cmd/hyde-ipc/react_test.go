package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/events"
	"github.com/HyDE-Project/hyde-ipc/internal/metrics"
)

func TestInlineReaction(t *testing.T) {
	r, err := inlineReaction("window", "opened", "class:kitty", 5, []string{"toggle-floating"})
	if err != nil {
		t.Fatalf("inlineReaction: %v", err)
	}
	if r.Event != (events.Type{Kind: events.KindWindow, Sub: events.WindowOpened}) {
		t.Fatalf("unexpected event type: %v", r.Event)
	}
	if r.Filter == nil || r.Filter.Pattern != "kitty" {
		t.Fatalf("unexpected filter: %+v", r.Filter)
	}
	if r.MaxCount != 5 {
		t.Fatalf("unexpected max count: %d", r.MaxCount)
	}
	if len(r.Commands) != 1 || r.Commands[0].Name() != "toggle-floating" {
		t.Fatalf("unexpected commands: %+v", r.Commands)
	}
}

func TestInlineReactionRejectsBadInput(t *testing.T) {
	if _, err := inlineReaction("window", "", "", 0, nil); err == nil {
		t.Fatal("expected error for missing window subtype")
	}
	if _, err := inlineReaction("monitor", "", "", 0, []string{"warp-drive"}); err == nil {
		t.Fatal("expected error for unknown dispatcher")
	}
	if _, err := inlineReaction("window", "opened", "pid:soon", 0, nil); err == nil {
		t.Fatal("expected error for bad filter")
	}
}

type recordingExecutor struct {
	dispatched chan string
}

func (e *recordingExecutor) Execute(cmd dispatch.Command) error {
	e.dispatched <- strings.Join(cmd.Words(), " ")
	return nil
}

func TestRunWatchedKeepsReactionsOnBadEdit(t *testing.T) {
	runtimeDir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "instance")

	socketPath := filepath.Join(runtimeDir, "hypr", "instance", ".socket2.sock")
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	conns := make(chan net.Conn, 4)
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conns <- conn
		}
	}()

	cfgPath := filepath.Join(t.TempDir(), "reactions.toml")
	valid := `[[reactions]]
name = "float-kitty"
event = "window.opened"
dispatchers = [
  { name = "toggle-floating" },
]
`
	if err := os.WriteFile(cfgPath, []byte(valid), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	exec := &recordingExecutor{dispatched: make(chan string, 8)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- runWatched(ctx, zerolog.Nop(), exec, metrics.NewCollector(false), cfgPath)
	}()

	var conn net.Conn
	select {
	case conn = <-conns:
	case <-time.After(5 * time.Second):
		t.Fatal("router never subscribed to the event socket")
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("openwindow>>0xabc,1,kitty,zsh\n")); err != nil {
		t.Fatalf("write event: %v", err)
	}
	select {
	case got := <-exec.dispatched:
		if got != "togglefloating" {
			t.Fatalf("unexpected dispatch: %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reaction never fired before the edit")
	}

	if err := os.WriteFile(cfgPath, []byte("this is not [[valid toml"), 0o644); err != nil {
		t.Fatalf("write bad config: %v", err)
	}
	time.Sleep(600 * time.Millisecond)

	select {
	case err := <-done:
		t.Fatalf("watch loop exited on bad edit: %v", err)
	default:
	}

	if _, err := conn.Write([]byte("openwindow>>0xdef,1,kitty,zsh\n")); err != nil {
		t.Fatalf("write event: %v", err)
	}
	select {
	case got := <-exec.dispatched:
		if got != "togglefloating" {
			t.Fatalf("unexpected dispatch after edit: %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reaction stopped firing after the bad edit")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runWatched: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop on cancel")
	}
}

func TestDispatchListCatalogue(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"dispatch", "--list-dispatchers"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Available dispatchers:", "toggle-floating", "resize-window-pixel", "move-cursor-to-corner"} {
		if !strings.Contains(text, want) {
			t.Errorf("catalogue missing %q", want)
		}
	}
}

func TestDispatchRequiresDispatcher(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"dispatch"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without dispatcher")
	}
}

func TestDispatchRejectsUnknownDispatcher(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"dispatch", "warp-drive"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown dispatcher")
	}
}
