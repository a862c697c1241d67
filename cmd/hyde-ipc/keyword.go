package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/ipc"
	"github.com/HyDE-Project/hyde-ipc/internal/logging"
)

func newKeywordCmd() *cobra.Command {
	var (
		asyncMode bool
		get       bool
		set       bool
	)
	cmd := &cobra.Command{
		Use:   "keyword [flags] KEYWORD [VALUE]",
		Short: "Get or set a Hyprland config keyword",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asyncMode {
				logger := logging.GetLogger("keyword")
				logger.Warn().Msg("--async is deprecated and has no effect")
			}
			switch {
			case get:
				client := ipc.NewClient()
				value, err := client.GetOption(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s value is %s\n", args[0], value)
				return nil
			case set:
				if len(args) < 2 {
					return fmt.Errorf("--set requires a value")
				}
				return ipc.NewClient().SetKeyword(cmd.Context(), args[0], args[1])
			default:
				return fmt.Errorf("one of --get or --set is required")
			}
		},
	}
	cmd.Flags().BoolVarP(&asyncMode, "async", "a", false, "deprecated, no effect")
	cmd.Flags().BoolVarP(&get, "get", "g", false, "get the value of a keyword")
	cmd.Flags().BoolVarP(&set, "set", "s", false, "set the value of a keyword")
	cmd.MarkFlagsMutuallyExclusive("get", "set")
	return cmd
}
