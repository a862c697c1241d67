package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/ipc"
	"github.com/HyDE-Project/hyde-ipc/internal/logging"
)

const dispatcherCatalogue = `Available dispatchers:
  Basic commands:
  exec <command>                      - Execute a command
  kill-active-window                  - Kill the active window
  exit                                - Exit Hyprland
  force-renderer-reload               - Force the renderer to reload

  Window management:
  toggle-floating [window]            - Toggle floating mode for a window
  toggle-fullscreen [type]            - Toggle fullscreen mode (real, maximize)
  toggle-fake-fullscreen              - Toggle fake fullscreen for the active window
  toggle-pseudo                       - Toggle pseudo tiling for the active window
  toggle-pin                          - Pin the active window to all workspaces
  toggle-opaque                       - Toggle opacity for the active window
  toggle-split                        - Toggle the split orientation (dwindle)
  center-window                       - Center the active window
  bring-active-to-top                 - Bring the active window to the top of the stack

  Focus control:
  move-focus <direction>              - Move focus in a direction (up, down, left, right)
  focus-window <window>               - Focus a specific window
  focus-urgent-or-last                - Focus the urgent window or the last one
  focus-current-or-last               - Switch focus between current and last window
  cycle-window [direction]            - Cycle windows (next, previous)
  swap-window <direction>             - Swap windows in a direction (up, down, left, right)

  Window movement and sizing:
  move-window <target>                - Move window to a monitor (mon:NAME, id, current, +1/-1) or dir:DIRECTION
  resize-active <params>              - Resize the active window (exact <w> <h> | [delta] <dx> <dy>)
  resize-window-pixel <params> <win>  - Resize a specific window

  Workspace management:
  workspace <workspace>               - Switch workspace (number, right:N, left:N, previous, empty, name:NAME)
  move-to-workspace <workspace>       - Move window to a workspace and follow it
  move-to-workspace-silent <ws> [win] - Move window to a workspace without switching to it

  Cursor control:
  move-cursor-to-corner <corner>      - Move cursor to a corner (topleft, topright, bottomleft, bottomright)
  move-cursor <x> <y>                 - Move cursor to a position

Window identifiers take the form class:PATTERN, title:PATTERN, pid:PID, or
address:ADDRESS; a bare string is treated as a class pattern.`

func newDispatchCmd() *cobra.Command {
	var (
		asyncMode bool
		list      bool
	)
	cmd := &cobra.Command{
		Use:   "dispatch [flags] DISPATCHER [ARGS...] [; DISPATCHER [ARGS...]]...",
		Short: "Execute one or more dispatcher commands",
		Long: `Execute a dispatcher command. Several commands separated by ";" tokens are
sent to the compositor as a single batch.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				fmt.Fprintln(cmd.OutOrStdout(), dispatcherCatalogue)
				return nil
			}
			chains := splitChains(args)
			if len(chains) == 0 {
				return fmt.Errorf("dispatcher is required")
			}
			logger := logging.GetLogger("dispatch")
			if asyncMode {
				logger.Warn().Msg("--async is deprecated and has no effect, dispatch is always synchronous")
			}
			commands := make([]dispatch.Command, 0, len(chains))
			for _, chain := range chains {
				command, err := dispatch.Build(chain[0], chain[1:])
				if err != nil {
					return err
				}
				commands = append(commands, command)
			}
			client, strategy, err := ipc.NewCommandClient(logger, ipc.DispatchStrategySocket)
			if err != nil {
				return err
			}
			logger.Debug().Str("strategy", string(strategy)).Int("commands", len(commands)).Msg("dispatching")
			if len(commands) == 1 {
				return client.Execute(commands[0])
			}
			return client.ExecuteBatch(commands)
		},
	}
	cmd.Flags().BoolVarP(&asyncMode, "async", "a", false, "deprecated, no effect")
	cmd.Flags().BoolVarP(&list, "list-dispatchers", "l", false, "list available dispatchers")
	return cmd
}

// splitChains splits the argument list on ";" tokens, one command per chain.
func splitChains(args []string) [][]string {
	var chains [][]string
	current := []string{}
	for _, arg := range args {
		if arg == ";" {
			if len(current) > 0 {
				chains = append(chains, current)
				current = []string{}
			}
			continue
		}
		current = append(current, arg)
	}
	if len(current) > 0 {
		chains = append(chains, current)
	}
	return chains
}
