package react

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/events"
	"github.com/HyDE-Project/hyde-ipc/internal/metrics"
)

// Router delivers decoded compositor events to registered reactions, in
// registration order, on a single goroutine.
type Router struct {
	mu        sync.Mutex
	running   bool
	reactions []*registered

	logger    zerolog.Logger
	exec      Executor
	collector *metrics.Collector
}

type registered struct {
	reaction *Reaction

	// one-shot diagnostics, only touched from the routing goroutine
	notedFilterIgnored  bool
	notedFilterUnusable bool
	notedLimit          bool
}

// NewRouter returns a router that executes reaction chains through exec.
// The collector may be nil when stats are not wanted.
func NewRouter(logger zerolog.Logger, exec Executor, collector *metrics.Collector) *Router {
	return &Router{logger: logger, exec: exec, collector: collector}
}

// Add registers a reaction. Registration order is delivery order. Adding
// after Start is an error.
func (r *Router) Add(reaction *Reaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return fmt.Errorf("router already running")
	}
	r.reactions = append(r.reactions, &registered{reaction: reaction})
	return nil
}

// Len returns the number of registered reactions.
func (r *Router) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reactions)
}

// Metrics returns the router's collector, which may be nil.
func (r *Router) Metrics() *metrics.Collector {
	return r.collector
}

// Start consumes events until the stream closes or the context is canceled.
// It can be called at most once; the router stays sealed afterwards.
func (r *Router) Start(ctx context.Context, stream <-chan events.Event) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("router already running")
	}
	r.running = true
	count := len(r.reactions)
	r.mu.Unlock()

	r.logger.Info().Int("reactions", count).Msg("reaction router started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-stream:
			if !ok {
				return nil
			}
			r.route(ev)
		}
	}
}

func (r *Router) route(ev events.Event) {
	for _, reg := range r.reactions {
		if reg.reaction.Event != ev.Type {
			continue
		}
		r.deliver(reg, ev)
	}
}

func (r *Router) deliver(reg *registered, ev events.Event) {
	reaction := reg.reaction
	label := reaction.Label()
	r.collector.RecordMatch(label)

	if !r.filterAdmits(reg, ev) {
		return
	}

	result := reaction.TryTrigger(r.exec, func(cmd dispatch.Command, err error) {
		r.collector.RecordDispatchError(label)
		r.logger.Error().
			Str("reaction", label).
			Str("dispatcher", cmd.Name()).
			Err(err).
			Msg("dispatch failed")
	})
	switch {
	case result.SuppressedByLimit:
		r.collector.RecordSuppressed(label)
		if !reg.notedLimit {
			reg.notedLimit = true
			r.logger.Info().
				Str("reaction", label).
				Uint64("max", reaction.MaxCount).
				Msg("reached maximum reaction count")
		}
	case result.NoDispatchers:
		r.logger.Warn().Str("reaction", label).Msg("no dispatchers defined for reaction")
	case result.Fired:
		r.collector.RecordFired(label)
		r.logger.Debug().
			Str("reaction", label).
			Str("event", ev.Type.String()).
			Int("dispatchers", len(reaction.Commands)).
			Msg("reaction fired")
	}
}

// filterAdmits applies the window filter rules. Filters are only evaluated
// for window opened and window active events; anywhere else they are ignored
// with a one-time note. An active event with no focused window is suppressed
// when a filter is set and fires when none is.
func (r *Router) filterAdmits(reg *registered, ev events.Event) bool {
	reaction := reg.reaction
	if reaction.Filter == nil {
		return true
	}

	filterable := ev.Type.Kind == events.KindWindow &&
		(ev.Type.Sub == events.WindowOpened || ev.Type.Sub == events.WindowActive)
	if !filterable {
		if !reg.notedFilterIgnored {
			reg.notedFilterIgnored = true
			r.logger.Info().
				Str("reaction", reaction.Label()).
				Str("event", ev.Type.String()).
				Msg("window filter is not applicable to this event, ignoring")
		}
		return true
	}

	if ev.Type.Sub == events.WindowActive && ev.Window == nil {
		return false
	}
	usable := reaction.Filter.Kind == dispatch.MatchClass || reaction.Filter.Kind == dispatch.MatchTitle
	if !usable && !reg.notedFilterUnusable {
		reg.notedFilterUnusable = true
		r.logger.Info().
			Str("reaction", reaction.Label()).
			Str("filter", reaction.Filter.String()).
			Msg("pid and address filters never match events, reaction will not fire")
	}
	return windowMatches(reaction.Filter, ev.Window)
}

// Describe renders a human readable summary of the registered reactions.
func (r *Router) Describe() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for i, reg := range r.reactions {
		reaction := reg.reaction
		fmt.Fprintf(&b, "%d. %s on %s", i+1, reaction.Label(), reaction.Event)
		if reaction.Filter != nil {
			fmt.Fprintf(&b, " [filter %s]", reaction.Filter)
		}
		if reaction.MaxCount > 0 {
			fmt.Fprintf(&b, " (max %d)", reaction.MaxCount)
		}
		fmt.Fprintf(&b, ": %d dispatchers\n", len(reaction.Commands))
	}
	return b.String()
}
