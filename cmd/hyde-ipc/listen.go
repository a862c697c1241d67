package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/events"
	"github.com/HyDE-Project/hyde-ipc/internal/ipc"
	"github.com/HyDE-Project/hyde-ipc/internal/logging"
)

func newListenCmd() *cobra.Command {
	var (
		filter    string
		maxEvents int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "listen [flags]",
		Short: "Listen for and log Hyprland events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("listen")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stream, err := ipc.Subscribe(ctx, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !asJSON {
				fmt.Fprintln(out, "Listening for Hyprland events...")
				fmt.Fprintln(out, "Press Ctrl+C to stop")
			}

			logged := 0
			for {
				select {
				case <-ctx.Done():
					return nil
				case raw, ok := <-stream:
					if !ok {
						return nil
					}
					ev, ok := events.Decode(raw)
					if !ok {
						continue
					}
					if filter != "" && !strings.EqualFold(filter, ev.Type.Kind.String()) {
						continue
					}
					if asJSON {
						printEventJSON(out, ev)
					} else {
						printEventText(out, ev)
					}
					logged++
					if maxEvents > 0 && logged >= maxEvents {
						return nil
					}
				}
			}
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", `only log events of one kind (e.g. "window", "workspace")`)
	cmd.Flags().IntVarP(&maxEvents, "max-events", "n", 0, "maximum number of events to log (0 for unlimited)")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "emit events as JSON lines")
	return cmd
}

func printEventText(out io.Writer, ev events.Event) {
	tag := strings.ToUpper(ev.Type.Kind.String())
	if ev.Type.Sub != events.SubNone {
		fmt.Fprintf(out, "[%s] %s - %s\n", tag, ev.Type.Sub, ev.Payload)
	} else {
		fmt.Fprintf(out, "[%s] %s\n", tag, ev.Payload)
	}
}

func printEventJSON(out io.Writer, ev events.Event) {
	payload := struct {
		Type    string             `json:"type"`
		Window  *events.WindowData `json:"window,omitempty"`
		Payload string             `json:"payload"`
	}{
		Type:    typeText(ev.Type),
		Window:  ev.Window,
		Payload: ev.Payload,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintln(out, string(data))
}

func typeText(t events.Type) string {
	text, err := t.MarshalText()
	if err != nil {
		return t.String()
	}
	return string(text)
}
