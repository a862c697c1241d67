package metrics

import (
	"sort"
	"sync"
	"time"
)

// Collector aggregates per-reaction counters.
type Collector struct {
	mu        sync.RWMutex
	enabled   bool
	started   time.Time
	reactions map[string]*ReactionMetrics
}

// ReactionMetrics captures the counters tracked for a single reaction.
type ReactionMetrics struct {
	Reaction       string    `json:"reaction"`
	Matched        uint64    `json:"matched"`
	Fired          uint64    `json:"fired"`
	Suppressed     uint64    `json:"suppressed"`
	DispatchErrors uint64    `json:"dispatchErrors"`
	LastMatched    time.Time `json:"lastMatched,omitempty"`
	LastFired      time.Time `json:"lastFired,omitempty"`
	LastErrored    time.Time `json:"lastErrored,omitempty"`
}

// Totals aggregates counters across all reactions in a snapshot.
type Totals struct {
	Matched        uint64 `json:"matched"`
	Fired          uint64 `json:"fired"`
	Suppressed     uint64 `json:"suppressed"`
	DispatchErrors uint64 `json:"dispatchErrors"`
}

// Snapshot is the serializable view of the current metrics state.
type Snapshot struct {
	Enabled   bool              `json:"enabled"`
	Started   time.Time         `json:"started,omitempty"`
	Totals    Totals            `json:"totals"`
	Reactions []ReactionMetrics `json:"reactions,omitempty"`
}

// NewCollector returns a collector with the provided opt-in state.
func NewCollector(enabled bool) *Collector {
	c := &Collector{}
	c.SetEnabled(enabled)
	return c
}

// Enabled reports whether collection is currently active.
func (c *Collector) Enabled() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// SetEnabled toggles collection, resetting counters when enabling.
func (c *Collector) SetEnabled(enabled bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if !enabled {
		c.reactions = nil
		c.started = time.Time{}
		return
	}
	c.started = time.Now()
	c.reactions = make(map[string]*ReactionMetrics)
}

// RecordMatch increments the matched counter for a reaction.
func (c *Collector) RecordMatch(reaction string) {
	c.update(reaction, func(m *ReactionMetrics, now time.Time) {
		m.Matched++
		m.LastMatched = now
	})
}

// RecordFired increments the fired counter for a reaction.
func (c *Collector) RecordFired(reaction string) {
	c.update(reaction, func(m *ReactionMetrics, now time.Time) {
		m.Fired++
		m.LastFired = now
	})
}

// RecordSuppressed increments the suppressed counter for a reaction.
func (c *Collector) RecordSuppressed(reaction string) {
	c.update(reaction, func(m *ReactionMetrics, now time.Time) {
		m.Suppressed++
	})
}

// RecordDispatchError increments the dispatch error counter for a reaction.
func (c *Collector) RecordDispatchError(reaction string) {
	c.update(reaction, func(m *ReactionMetrics, now time.Time) {
		m.DispatchErrors++
		m.LastErrored = now
	})
}

func (c *Collector) update(reaction string, mutate func(*ReactionMetrics, time.Time)) {
	if c == nil || mutate == nil {
		return
	}
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	if c.reactions == nil {
		c.reactions = make(map[string]*ReactionMetrics)
	}
	m, exists := c.reactions[reaction]
	if !exists {
		m = &ReactionMetrics{Reaction: reaction}
		c.reactions[reaction] = m
	}
	mutate(m, now)
}

// Snapshot returns the current counters for serialization or display.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := Snapshot{Enabled: c.enabled}
	if !c.enabled {
		return snap
	}
	snap.Started = c.started
	if len(c.reactions) == 0 {
		return snap
	}
	snap.Reactions = make([]ReactionMetrics, 0, len(c.reactions))
	for _, m := range c.reactions {
		if m == nil {
			continue
		}
		clone := *m
		snap.Reactions = append(snap.Reactions, clone)
		snap.Totals.Matched += clone.Matched
		snap.Totals.Fired += clone.Fired
		snap.Totals.Suppressed += clone.Suppressed
		snap.Totals.DispatchErrors += clone.DispatchErrors
	}
	sort.Slice(snap.Reactions, func(i, j int) bool {
		return snap.Reactions[i].Reaction < snap.Reactions[j].Reaction
	})
	return snap
}
