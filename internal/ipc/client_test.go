package ipc

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
)

type sequentialDispatcher struct {
	calls [][]string
}

func (d *sequentialDispatcher) Dispatch(args ...string) error {
	d.calls = append(d.calls, args)
	return nil
}

func mustBuild(t *testing.T, name string, args []string) dispatch.Command {
	t.Helper()
	cmd, err := dispatch.Build(name, args)
	if err != nil {
		t.Fatalf("Build(%s): %v", name, err)
	}
	return cmd
}

func TestCommandClientExecuteBatchFrames(t *testing.T) {
	runtimeDir := t.TempDir()
	sig := "instance"
	setEnv(t, "XDG_RUNTIME_DIR", runtimeDir)
	setEnv(t, "HYPRLAND_INSTANCE_SIGNATURE", sig)

	socketPath := filepath.Join(runtimeDir, "hypr", sig, ".socket.sock")
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		accepted <- conn
	}()

	disp, err := newSocketDispatcher()
	if err != nil {
		t.Fatalf("newSocketDispatcher: %v", err)
	}
	client := &CommandClient{Client: NewClient(), dispatcher: disp}

	cmds := []dispatch.Command{
		mustBuild(t, "workspace", []string{"right:1"}),
		mustBuild(t, "toggle-floating", nil),
	}
	if err := client.ExecuteBatch(cmds); err != nil {
		t.Fatalf("ExecuteBatch: %v", err)
	}

	conn := <-accepted
	data, err := io.ReadAll(conn)
	conn.Close()
	if err != nil {
		t.Fatalf("read payload: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	expected := []string{
		"begin",
		"dispatch workspace +1",
		"dispatch togglefloating",
		"commit",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("unexpected payload: %#v", lines)
	}
}

func TestCommandClientExecuteBatchFallsBackSequentially(t *testing.T) {
	seq := &sequentialDispatcher{}
	client := &CommandClient{Client: NewClient(), dispatcher: seq}

	cmds := []dispatch.Command{
		mustBuild(t, "workspace", []string{"3"}),
		mustBuild(t, "kill-active-window", nil),
	}
	if err := client.ExecuteBatch(cmds); err != nil {
		t.Fatalf("ExecuteBatch: %v", err)
	}
	expected := [][]string{{"workspace", "3"}, {"killactive"}}
	if !reflect.DeepEqual(seq.calls, expected) {
		t.Fatalf("unexpected calls: %#v", seq.calls)
	}
}
