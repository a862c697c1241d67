package metrics

import "testing"

func TestCollectorDisabledIgnoresRecords(t *testing.T) {
	c := NewCollector(false)
	c.RecordMatch("focus-follow")
	c.RecordFired("focus-follow")
	snap := c.Snapshot()
	if snap.Enabled {
		t.Fatal("expected disabled snapshot")
	}
	if len(snap.Reactions) != 0 {
		t.Fatalf("expected no reactions, got %d", len(snap.Reactions))
	}
}

func TestCollectorCountsAndTotals(t *testing.T) {
	c := NewCollector(true)
	c.RecordMatch("a")
	c.RecordMatch("a")
	c.RecordFired("a")
	c.RecordSuppressed("a")
	c.RecordMatch("b")
	c.RecordDispatchError("b")

	snap := c.Snapshot()
	if !snap.Enabled {
		t.Fatal("expected enabled snapshot")
	}
	if len(snap.Reactions) != 2 {
		t.Fatalf("expected 2 reactions, got %d", len(snap.Reactions))
	}
	if snap.Reactions[0].Reaction != "a" || snap.Reactions[1].Reaction != "b" {
		t.Fatalf("expected sorted reactions, got %q %q", snap.Reactions[0].Reaction, snap.Reactions[1].Reaction)
	}
	a := snap.Reactions[0]
	if a.Matched != 2 || a.Fired != 1 || a.Suppressed != 1 {
		t.Fatalf("unexpected counters for a: %+v", a)
	}
	if snap.Totals.Matched != 3 || snap.Totals.Fired != 1 || snap.Totals.Suppressed != 1 || snap.Totals.DispatchErrors != 1 {
		t.Fatalf("unexpected totals: %+v", snap.Totals)
	}
	if a.LastMatched.IsZero() || a.LastFired.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestCollectorDisableResets(t *testing.T) {
	c := NewCollector(true)
	c.RecordMatch("a")
	c.SetEnabled(false)
	c.SetEnabled(true)
	snap := c.Snapshot()
	if len(snap.Reactions) != 0 {
		t.Fatalf("expected reset counters, got %d reactions", len(snap.Reactions))
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.RecordMatch("a")
	c.RecordFired("a")
	if c.Enabled() {
		t.Fatal("nil collector should report disabled")
	}
	if snap := c.Snapshot(); snap.Enabled {
		t.Fatal("nil collector snapshot should be zero")
	}
}
