package phase

import (
	"fmt"
	"time"
)

// Clock produces timestamps and evidence IDs for a run. The production
// clock uses wall time and random IDs; the deterministic clock derives
// both from a monotonic counter so two runs on the same blueprint emit
// byte-identical histories.
type Clock interface {
	// Timestamp returns the next ISO-8601 timestamp for a state emission.
	Timestamp() string
	// EvidenceID returns the next evidence record ID.
	EvidenceID() string
}

type wallClock struct {
	newID func() string
}

func (c *wallClock) Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func (c *wallClock) EvidenceID() string {
	return c.newID()
}

// counterClock is the deterministic clock: timestamps advance one second
// per emission from a fixed epoch, and evidence IDs are sequential under
// the run ID.
type counterClock struct {
	runID  string
	ticks  int
	nextEv int
	epoch  time.Time
}

func newCounterClock(runID string) *counterClock {
	return &counterClock{
		runID: runID,
		epoch: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (c *counterClock) Timestamp() string {
	ts := c.epoch.Add(time.Duration(c.ticks) * time.Second)
	c.ticks++
	return ts.Format(time.RFC3339)
}

func (c *counterClock) EvidenceID() string {
	c.nextEv++
	return fmt.Sprintf("%s-ev-%04d", c.runID, c.nextEv)
}
