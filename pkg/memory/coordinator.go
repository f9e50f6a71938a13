package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/loom-agents/loom/pkg/models"
)

// Coordinator is the exclusive owner of session state. It serialises writes
// per session ID; concurrent reads are unrestricted.
type Coordinator struct {
	store  SessionStore
	rag    RAGAdapter
	policy WritePolicy
	logger *slog.Logger

	// Per-session write mutex to enforce the single-writer rule.
	writeMu sync.Map // sessionID → *sync.Mutex
}

// NewCoordinator creates a memory coordinator. rag and policy may be nil.
func NewCoordinator(store SessionStore, rag RAGAdapter, policy WritePolicy) *Coordinator {
	return &Coordinator{
		store:  store,
		rag:    rag,
		policy: policy,
		logger: slog.Default(),
	}
}

// LoadState returns the persisted session state for the goal (or a fresh
// one) plus up to five RAG documents retrieved for the goal's query.
// Retrieval failure is non-fatal: it logs a warning and returns an empty
// context. A missing RAG adapter yields an empty context silently.
func (c *Coordinator) LoadState(ctx context.Context, goal models.Goal) (*models.SessionState, []models.Document, error) {
	state, err := c.store.Load(ctx, goal.SessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			state = models.NewSessionState()
		} else {
			return nil, nil, fmt.Errorf("load session %q: %w", goal.SessionID, err)
		}
	}

	var docs []models.Document
	if c.rag != nil {
		query := goal.Objective
		if len(goal.RequiredCapabilities) > 0 {
			query += " " + strings.Join(goal.RequiredCapabilities, " ")
		}
		docs, err = c.rag.Retrieve(ctx, query, contextDocumentLimit)
		if err != nil {
			c.logger.Warn("RAG retrieval failed, continuing without context",
				"session_id", goal.SessionID, "error", err)
			docs = nil
		}
		if len(docs) > contextDocumentLimit {
			docs = docs[:contextDocumentLimit]
		}
	}

	return state, docs, nil
}

// PersistPlan writes the plan's steps and reasoning into session state and
// appends a plan-created event carrying the step capabilities.
func (c *Coordinator) PersistPlan(ctx context.Context, plan *models.Plan) error {
	sessionID := plan.Goal.SessionID
	mu := c.lockSession(sessionID)
	defer mu.Unlock()

	state, err := c.loadOrFresh(ctx, sessionID)
	if err != nil {
		return err
	}

	state.Steps = make([]models.StepRecord, len(plan.Steps))
	copy(state.Steps, plan.Steps)
	state.Reasoning = plan.Reasoning
	state.LastUpdated = time.Now()

	if err := c.save(ctx, sessionID, state); err != nil {
		return err
	}

	capabilities := make([]string, len(plan.Steps))
	for i, step := range plan.Steps {
		capabilities[i] = step.Capability
	}
	return c.appendEvent(ctx, sessionID, models.NewEvent(
		models.EventTypePlanCreated, sessionID,
		map[string]any{"steps": capabilities},
	))
}

// PersistStep upserts the step record for its capability (first persist
// appends, later persists overwrite and bump CompletedAt) and appends a
// step-completed event. The step output passes through uninspected.
func (c *Coordinator) PersistStep(ctx context.Context, goal models.Goal, step models.StepRecord) error {
	sessionID := goal.SessionID
	mu := c.lockSession(sessionID)
	defer mu.Unlock()

	state, err := c.loadOrFresh(ctx, sessionID)
	if err != nil {
		return err
	}

	now := time.Now()
	step.CompletedAt = &now
	state.UpsertStep(step)

	if err := c.save(ctx, sessionID, state); err != nil {
		return err
	}

	return c.appendEvent(ctx, sessionID, models.NewEvent(
		models.EventTypeStepCompleted, sessionID,
		map[string]any{
			"capability": step.Capability,
			"worker":     step.WorkerName,
			"status":     string(step.Status),
		},
	))
}

// Events returns the session's append-only event log.
func (c *Coordinator) Events(ctx context.Context, sessionID string) ([]models.Event, error) {
	return c.store.Events(ctx, sessionID)
}

// State returns the current session state, or ErrSessionNotFound.
func (c *Coordinator) State(ctx context.Context, sessionID string) (*models.SessionState, error) {
	return c.store.Load(ctx, sessionID)
}

func (c *Coordinator) lockSession(sessionID string) *sync.Mutex {
	muI, _ := c.writeMu.LoadOrStore(sessionID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	return mu
}

func (c *Coordinator) loadOrFresh(ctx context.Context, sessionID string) (*models.SessionState, error) {
	state, err := c.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return models.NewSessionState(), nil
		}
		return nil, fmt.Errorf("load session %q: %w", sessionID, err)
	}
	return state, nil
}

func (c *Coordinator) save(ctx context.Context, sessionID string, state *models.SessionState) error {
	if c.policy != nil {
		if err := c.policy(sessionID, state); err != nil {
			return fmt.Errorf("session %q: %w", sessionID, err)
		}
	}
	if err := c.store.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("save session %q: %w", sessionID, err)
	}
	return nil
}

func (c *Coordinator) appendEvent(ctx context.Context, sessionID string, event models.Event) error {
	if err := c.store.AppendEvent(ctx, sessionID, event); err != nil {
		return fmt.Errorf("append event for session %q: %w", sessionID, err)
	}
	return nil
}
