package mcp

import (
	"sync"
	"time"
)

// ClientHealth is a read-only snapshot of one client's recent behaviour.
// It informs operators; it never influences failover order.
type ClientHealth struct {
	Name        string     `json:"name"`
	Transport   string     `json:"transport"`
	Successes   int64      `json:"successes"`
	Failures    int64      `json:"failures"`
	LastError   string     `json:"last_error,omitempty"`
	LastSuccess *time.Time `json:"last_success,omitempty"`
	LastFailure *time.Time `json:"last_failure,omitempty"`
}

// HealthTracker accumulates per-client outcome counters.
type HealthTracker struct {
	mu    sync.Mutex
	order []string
	stats map[string]*ClientHealth
}

// NewHealthTracker creates a tracker seeded with the hub's client list.
func NewHealthTracker(clients []Client) *HealthTracker {
	t := &HealthTracker{stats: make(map[string]*ClientHealth)}
	for _, c := range clients {
		t.order = append(t.order, c.Name())
		t.stats[c.Name()] = &ClientHealth{Name: c.Name(), Transport: c.Transport()}
	}
	return t
}

// RecordSuccess notes a successful invocation for the named client.
func (t *HealthTracker) RecordSuccess(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.stats[name]; ok {
		now := time.Now()
		s.Successes++
		s.LastSuccess = &now
	}
}

// RecordFailure notes a failed invocation and its cause.
func (t *HealthTracker) RecordFailure(name string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.stats[name]; ok {
		now := time.Now()
		s.Failures++
		s.LastError = err.Error()
		s.LastFailure = &now
	}
}

// Snapshot returns a copy of every client's health, in configuration order.
func (t *HealthTracker) Snapshot() []ClientHealth {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ClientHealth, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.stats[name])
	}
	return out
}
