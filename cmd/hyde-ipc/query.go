package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/ipc"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query Hyprland for information",
	}
	cmd.AddCommand(newCursorPosCmd(), newActiveWindowCmd())
	return cmd
}

func newCursorPosCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "cursorpos",
		Short: "Print the current cursor position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := ipc.NewClient()
			out := cmd.OutOrStdout()
			x, y, err := client.CursorPos(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "x: %d, y: %d\n", x, y)
			if !watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ticker := time.NewTicker(250 * time.Millisecond)
			defer ticker.Stop()
			lastX, lastY := x, y
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					x, y, err := client.CursorPos(ctx)
					if err != nil {
						return err
					}
					if x != lastX || y != lastY {
						fmt.Fprintf(out, "x: %d, y: %d\n", x, y)
						lastX, lastY = x, y
					}
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep printing the position as it changes")
	return cmd
}

func newActiveWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activewindow",
		Short: "Print the currently focused window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			win, err := ipc.NewClient().QueryActiveWindow(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if win == nil {
				fmt.Fprintln(out, "no focused window")
				return nil
			}
			fmt.Fprintf(out, "address: %s\nclass: %s\ntitle: %s\npid: %d\nworkspace: %d (%s)\n",
				win.Address, win.Class, win.Title, win.PID, win.Workspace.ID, win.Workspace.Name)
			return nil
		},
	}
}
