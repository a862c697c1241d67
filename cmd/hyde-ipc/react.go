package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/HyDE-Project/hyde-ipc/internal/config"
	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/events"
	"github.com/HyDE-Project/hyde-ipc/internal/ipc"
	"github.com/HyDE-Project/hyde-ipc/internal/logging"
	"github.com/HyDE-Project/hyde-ipc/internal/metrics"
	"github.com/HyDE-Project/hyde-ipc/internal/react"
)

func newReactCmd() *cobra.Command {
	var (
		asyncMode    bool
		configPath   string
		watch        bool
		event        string
		subtype      string
		filter       string
		maxReactions uint64
		stats        bool
	)
	cmd := &cobra.Command{
		Use:   "react [flags] [DISPATCHER [ARGS...]]",
		Short: "React to events by dispatching commands",
		Long: `Run reactions against the live event stream. With --config, reactions are
loaded from a TOML file; otherwise a single inline reaction is built from
--event/--subtype and the dispatcher given as positional arguments.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("react")
			if asyncMode {
				logger.Warn().Msg("--async is deprecated and has no effect, reactions always run synchronously")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, strategy, err := ipc.NewCommandClient(logger, ipc.DispatchStrategySocket)
			if err != nil {
				return err
			}
			logger.Debug().Str("strategy", string(strategy)).Msg("dispatch strategy selected")

			collector := metrics.NewCollector(stats)
			defer func() {
				if stats {
					printStats(cmd, collector)
				}
			}()

			if configPath == "" {
				if event == "" {
					return fmt.Errorf("either --config or --event is required")
				}
				reaction, err := inlineReaction(event, subtype, filter, maxReactions, args)
				if err != nil {
					return err
				}
				router := react.NewRouter(logger, client, collector)
				if err := router.Add(reaction); err != nil {
					return err
				}
				return runRouter(ctx, logger, router)
			}

			if !watch {
				router, err := routerFromConfig(configPath, logger, client, collector)
				if err != nil {
					return err
				}
				return runRouter(ctx, logger, router)
			}
			return runWatched(ctx, logger, client, collector, configPath)
		},
	}
	cmd.Flags().BoolVarP(&asyncMode, "async", "a", false, "deprecated, no effect")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "load reactions from a TOML file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file when it changes")
	cmd.Flags().StringVarP(&event, "event", "e", "", `event type to react to (e.g. "window", "workspace")`)
	cmd.Flags().StringVarP(&subtype, "subtype", "s", "", `event subtype (e.g. "opened" for window events)`)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", `window filter (e.g. "class:firefox" or "title:Chrome")`)
	cmd.Flags().Uint64VarP(&maxReactions, "max-reactions", "n", 0, "limit number of reactions (0 for unlimited)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print reaction counters on exit")
	return cmd
}

func inlineReaction(event, subtype, filter string, maxCount uint64, args []string) (*react.Reaction, error) {
	typ, err := events.ParseType(event, subtype)
	if err != nil {
		return nil, err
	}
	reaction := &react.Reaction{Event: typ, MaxCount: maxCount}
	if filter != "" {
		m, err := dispatch.ParseWindowMatcher(filter)
		if err != nil {
			return nil, err
		}
		reaction.Filter = &m
	}
	if len(args) > 0 {
		cmd, err := dispatch.Build(args[0], args[1:])
		if err != nil {
			return nil, err
		}
		reaction.Commands = []dispatch.Command{cmd}
	}
	return reaction, nil
}

func routerFromConfig(path string, logger zerolog.Logger, exec react.Executor, collector *metrics.Collector) (*react.Router, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	reactions, err := f.BuildReactions()
	if err != nil {
		return nil, err
	}
	logger.Info().Str("config", path).Int("reactions", len(reactions)).Msg("loaded reactions")
	router := react.NewRouter(logger, exec, collector)
	for _, r := range reactions {
		if err := router.Add(r); err != nil {
			return nil, err
		}
	}
	return router, nil
}

func runRouter(ctx context.Context, logger zerolog.Logger, router *react.Router) error {
	raw, err := ipc.Subscribe(ctx, logger)
	if err != nil {
		return err
	}
	decoded := make(chan events.Event)
	go func() {
		defer close(decoded)
		for r := range raw {
			ev, ok := events.Decode(r)
			if !ok {
				continue
			}
			select {
			case decoded <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	if err := router.Start(ctx, decoded); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// runWatched reruns the router every time the config file changes. A new
// config is parsed and built before the running router is torn down, so an
// edit that fails validation keeps the previous reactions in place. Trigger
// counters reset on a successful reload, matching a fresh start.
func runWatched(ctx context.Context, logger zerolog.Logger, exec react.Executor, collector *metrics.Collector, path string) error {
	reloads, err := config.Watch(ctx, logger, path)
	if err != nil {
		return err
	}
	previous, _ := os.ReadFile(path)
	router, err := routerFromConfig(path, logger, exec, collector)
	if err != nil {
		return err
	}
	for {
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func(r *react.Router) {
			done <- runRouter(runCtx, logger, r)
		}(router)

	waiting:
		for {
			select {
			case <-ctx.Done():
				cancel()
				<-done
				return nil
			case err := <-done:
				cancel()
				return err
			case reason, ok := <-reloads:
				if !ok {
					cancel()
					<-done
					return nil
				}
				current, _ := os.ReadFile(path)
				next, err := routerFromConfig(path, logger, exec, collector)
				if err != nil {
					logger.Error().Err(err).Msg("config reload failed, keeping previous reactions")
					if diff := config.DiffSerialized(previous, current); diff != "" {
						logger.Debug().Str("diff", diff).Msg("rejected config change")
					}
					continue waiting
				}
				if diff := config.DiffSerialized(previous, current); diff != "" {
					logger.Debug().Str("diff", diff).Msg("config changed")
				}
				previous = current
				logger.Info().Str("reason", reason).Msg("reloading reactions")
				cancel()
				<-done
				router = next
				break waiting
			}
		}
	}
}

func printStats(cmd *cobra.Command, collector *metrics.Collector) {
	snap := collector.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}
