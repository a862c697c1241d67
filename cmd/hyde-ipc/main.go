package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/logging"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbosity int
	cmd := &cobra.Command{
		Use:     "hyde-ipc",
		Short:   "Companion CLI for Hyprland's IPC interface",
		Long: `hyde-ipc talks to Hyprland over its IPC sockets: it dispatches
commands, gets and sets config keywords, streams compositor events, and runs
reactions that fire dispatchers when events occur.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
	}
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")

	cmd.AddCommand(
		newDispatchCmd(),
		newKeywordCmd(),
		newListenCmd(),
		newReactCmd(),
		newSetupCmd(),
		newGlobalCmd(),
		newQueryCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hyde-ipc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hyde-ipc %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
