package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/loom-agents/loom/pkg/models"
)

// MemStore is an in-memory SessionStore. The default when no database is
// configured; also the store unit tests run against.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	events   map[string][]models.Event
}

// NewMemStore creates an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{
		sessions: make(map[string][]byte),
		events:   make(map[string][]models.Event),
	}
}

// Load returns a deep copy of the stored state, or ErrSessionNotFound.
func (m *MemStore) Load(_ context.Context, sessionID string) (*models.SessionState, error) {
	m.mu.RLock()
	raw, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	var state models.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session %q: %w", sessionID, err)
	}
	return &state, nil
}

// Save stores a serialized snapshot so later caller mutations cannot leak in.
func (m *MemStore) Save(_ context.Context, sessionID string, state *models.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %q: %w", sessionID, err)
	}
	m.mu.Lock()
	m.sessions[sessionID] = raw
	m.mu.Unlock()
	return nil
}

// AppendEvent appends to the session's event log.
func (m *MemStore) AppendEvent(_ context.Context, sessionID string, event models.Event) error {
	m.mu.Lock()
	m.events[sessionID] = append(m.events[sessionID], event)
	m.mu.Unlock()
	return nil
}

// Events returns a copy of the session's event log in append order.
func (m *MemStore) Events(_ context.Context, sessionID string) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Event, len(m.events[sessionID]))
	copy(out, m.events[sessionID])
	return out, nil
}
