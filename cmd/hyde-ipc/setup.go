package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/config"
	"github.com/HyDE-Project/hyde-ipc/internal/service"
)

func newSetupCmd() *cobra.Command {
	var (
		install   bool
		uninstall bool
		start     bool
		kill      bool
		restart   bool
		check     bool
		watch     bool
	)
	cmd := &cobra.Command{
		Use:   "setup [flags]",
		Short: "Manage the hyde-ipc user service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := service.NewManager()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			switch {
			case install:
				if err := mgr.Install(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Service installed and started.")
				return nil
			case uninstall:
				if err := mgr.Uninstall(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Service uninstalled.")
				return nil
			case start:
				if err := mgr.Start(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Service started.")
				return nil
			case kill:
				if err := mgr.Stop(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Service stopped.")
				return nil
			case restart:
				if err := mgr.Restart(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Service restarted.")
				return nil
			case check:
				if mgr.IsActive(ctx) {
					fmt.Fprintln(out, "Service is running.")
				} else {
					fmt.Fprintln(out, "Service is not running.")
				}
				return nil
			case watch:
				return mgr.WatchLogs(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
			default:
				return fmt.Errorf("one of --install, --uninstall, --start, --kill, --restart, --check, or --watch is required")
			}
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "install and start the user service")
	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "uninstall the user service")
	cmd.Flags().BoolVarP(&start, "start", "s", false, "start the user service")
	cmd.Flags().BoolVarP(&kill, "kill", "k", false, "stop the user service")
	cmd.Flags().BoolVar(&restart, "restart", false, "restart the user service")
	cmd.Flags().BoolVarP(&check, "check", "c", false, "check the status of the user service")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "follow the logs of the user service")
	cmd.MarkFlagsMutuallyExclusive("install", "uninstall", "start", "kill", "restart", "check", "watch")
	return cmd
}

func newGlobalCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "global -c CONFIG",
		Short: "Install a reactions file as the global config",
		Long: `Validate a reactions file, copy it to the global config location, make
sure the user service is set up, and restart it so the new reactions take
effect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(configPath); err != nil {
				return err
			}
			mgr := service.NewManager()
			ctx := cmd.Context()
			if err := mgr.EnsureInstalled(ctx); err != nil {
				return err
			}
			dest, err := mgr.InstallConfig(ctx, configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done! %s is set as the global config (%s)\n", configPath, dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config-path", "c", "", "path to the reactions file to install")
	cmd.MarkFlagRequired("config-path")
	return cmd
}
