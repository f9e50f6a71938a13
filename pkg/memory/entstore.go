package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/loom-agents/loom/ent"
	"github.com/loom-agents/loom/ent/sessionevent"
	"github.com/loom-agents/loom/ent/workflowsession"
	"github.com/loom-agents/loom/pkg/models"
)

// EntStore is the PostgreSQL-backed SessionStore. State documents live in
// workflow_sessions; the event log lives in session_events, ordered by the
// serial primary key.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a database-backed session store.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// Load returns the persisted state for sessionID, or ErrSessionNotFound.
func (s *EntStore) Load(ctx context.Context, sessionID string) (*models.SessionState, error) {
	row, err := s.client.WorkflowSession.Query().
		Where(workflowsession.ID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("query session %q: %w", sessionID, err)
	}

	state, err := stateFromDocument(row.State)
	if err != nil {
		return nil, fmt.Errorf("decode session %q: %w", sessionID, err)
	}
	return state, nil
}

// Save upserts the full state document for sessionID.
func (s *EntStore) Save(ctx context.Context, sessionID string, state *models.SessionState) error {
	doc, err := stateToDocument(state)
	if err != nil {
		return fmt.Errorf("encode session %q: %w", sessionID, err)
	}

	err = s.client.WorkflowSession.Create().
		SetID(sessionID).
		SetState(doc).
		OnConflictColumns(workflowsession.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session %q: %w", sessionID, err)
	}
	return nil
}

// AppendEvent appends one entry to the session's event log.
func (s *EntStore) AppendEvent(ctx context.Context, sessionID string, event models.Event) error {
	create := s.client.SessionEvent.Create().
		SetSessionID(sessionID).
		SetType(event.Type).
		SetThreadID(event.ThreadID).
		SetTimestamp(event.Timestamp)
	if event.Data != nil {
		create.SetPayload(event.Data)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("append event to session %q: %w", sessionID, err)
	}
	return nil
}

// Events returns the session's event log in append order.
func (s *EntStore) Events(ctx context.Context, sessionID string) ([]models.Event, error) {
	rows, err := s.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(ent.Asc(sessionevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events for session %q: %w", sessionID, err)
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, models.Event{
			Type:      row.Type,
			Timestamp: row.Timestamp,
			ThreadID:  row.ThreadID,
			Data:      row.Payload,
		})
	}
	return events, nil
}

// stateToDocument converts the state into the JSONB document shape.
func stateToDocument(state *models.SessionState) (map[string]interface{}, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// stateFromDocument is the inverse of stateToDocument.
func stateFromDocument(doc map[string]interface{}) (*models.SessionState, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var state models.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
