package ipc

import (
	"fmt"
	"net"
	"strings"
)

type socketDispatcher struct {
	path string
}

func newSocketDispatcher() (*socketDispatcher, error) {
	path, err := commandSocketPath()
	if err != nil {
		return nil, err
	}
	return &socketDispatcher{path: path}, nil
}

func (d *socketDispatcher) Dispatch(args ...string) error {
	if len(args) == 0 {
		return nil
	}
	return d.DispatchBatch([][]string{args})
}

func (d *socketDispatcher) DispatchBatch(commands [][]string) error {
	if len(commands) == 0 {
		return nil
	}
	conn, err := net.Dial("unix", d.path)
	if err != nil {
		return fmt.Errorf("connect dispatch socket: %w", err)
	}
	defer conn.Close()

	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		if len(cmd) == 0 {
			continue
		}
		parts := append([]string{"dispatch"}, cmd...)
		lines = append(lines, strings.Join(parts, " "))
	}
	if len(lines) == 0 {
		return nil
	}

	// Multi-dispatch payloads must be framed by begin/commit markers.
	// Single dispatches go as a bare line.
	var payload string
	if len(lines) == 1 {
		payload = lines[0] + "\n"
	} else {
		var b strings.Builder
		b.WriteString("begin\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("commit\n")
		payload = b.String()
	}
	if _, err := conn.Write([]byte(payload)); err != nil {
		return fmt.Errorf("write dispatch payload: %w", err)
	}
	return nil
}

func (d *socketDispatcher) DispatchSocketPath() string {
	return d.path
}
