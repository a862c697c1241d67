// Package react routes compositor events to dispatch command chains.
package react

import (
	"sync/atomic"

	"github.com/HyDE-Project/hyde-ipc/internal/dispatch"
	"github.com/HyDE-Project/hyde-ipc/internal/events"
)

// Executor sends a typed dispatch command to the compositor.
type Executor interface {
	Execute(cmd dispatch.Command) error
}

// Reaction binds an event type to a chain of dispatch commands. Each reaction
// carries its own trigger counter; MaxCount of zero means unlimited.
type Reaction struct {
	Name        string
	Description string
	Event       events.Type
	Filter      *dispatch.WindowMatcher
	Commands    []dispatch.Command
	MaxCount    uint64

	triggered atomic.Uint64
}

// TriggerResult reports the outcome of a trigger attempt.
type TriggerResult struct {
	// Fired is true when the counter admitted the trigger and the chain was
	// executed (possibly with per-command errors).
	Fired bool
	// SuppressedByLimit is true when MaxCount had already been reached.
	SuppressedByLimit bool
	// NoDispatchers is true when the chain is empty. The trigger still
	// counts against MaxCount but nothing fires.
	NoDispatchers bool
}

// TriggerCount returns how many times the reaction has been admitted.
func (r *Reaction) TriggerCount() uint64 {
	return r.triggered.Load()
}

// TryTrigger atomically claims a trigger slot and, if admitted, executes the
// command chain. Execution is best effort: a failing command does not stop
// the rest of the chain. onError receives each command error; it may be nil.
func (r *Reaction) TryTrigger(exec Executor, onError func(cmd dispatch.Command, err error)) TriggerResult {
	prev := r.triggered.Add(1) - 1
	if r.MaxCount > 0 && prev >= r.MaxCount {
		return TriggerResult{SuppressedByLimit: true}
	}
	if len(r.Commands) == 0 {
		return TriggerResult{NoDispatchers: true}
	}
	for _, cmd := range r.Commands {
		if err := exec.Execute(cmd); err != nil && onError != nil {
			onError(cmd, err)
		}
	}
	return TriggerResult{Fired: true}
}

// Exhausted reports whether the trigger limit has been reached.
func (r *Reaction) Exhausted() bool {
	return r.MaxCount > 0 && r.triggered.Load() >= r.MaxCount
}

// Label returns the reaction's name, falling back to its event type.
func (r *Reaction) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Event.String()
}
