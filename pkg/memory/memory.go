// Package memory provides the coordinator that owns session state
// persistence, the per-session event log, and RAG context retrieval.
// No other component writes session state.
package memory

import (
	"context"
	"errors"

	"github.com/loom-agents/loom/pkg/models"
)

// ErrPolicyDenied indicates a session write was rejected by the write
// policy.
var ErrPolicyDenied = errors.New("session write denied by policy")

// ErrSessionNotFound indicates no state exists for a session ID.
var ErrSessionNotFound = errors.New("session not found")

// contextDocumentLimit caps how many RAG documents are attached to a plan.
const contextDocumentLimit = 5

// SessionStore persists session state and the append-only per-session
// event log.
type SessionStore interface {
	// Load returns the state for sessionID, or ErrSessionNotFound.
	Load(ctx context.Context, sessionID string) (*models.SessionState, error)
	// Save upserts the full state document for sessionID.
	Save(ctx context.Context, sessionID string, state *models.SessionState) error
	// AppendEvent appends one entry to the session's event log.
	AppendEvent(ctx context.Context, sessionID string, event models.Event) error
	// Events returns the session's event log in append order.
	Events(ctx context.Context, sessionID string) ([]models.Event, error)
}

// RAGAdapter retrieves context documents for a query. Optional: a nil
// adapter yields an empty context without a warning.
type RAGAdapter interface {
	Retrieve(ctx context.Context, query string, limit int) ([]models.Document, error)
}

// WritePolicy vets a session write before it reaches the store. Returning
// an error (conventionally wrapping ErrPolicyDenied) rejects the write.
type WritePolicy func(sessionID string, state *models.SessionState) error
