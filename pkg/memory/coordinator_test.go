package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

type fakeRAG struct {
	docs    []models.Document
	err     error
	queries []string
}

func (f *fakeRAG) Retrieve(_ context.Context, query string, _ int) ([]models.Document, error) {
	f.queries = append(f.queries, query)
	return f.docs, f.err
}

func testGoal() models.Goal {
	return models.Goal{
		SessionID:            "s1",
		Objective:            "write docs",
		RequiredCapabilities: []string{"draft", "review"},
	}
}

func TestLoadStateFreshSession(t *testing.T) {
	c := NewCoordinator(NewMemStore(), nil, nil)

	state, docs, err := c.LoadState(context.Background(), testGoal())
	require.NoError(t, err)
	assert.Empty(t, state.Steps)
	assert.Empty(t, state.Facts)
	assert.False(t, state.LastUpdated.IsZero())
	// No RAG adapter: empty context, no error.
	assert.Empty(t, docs)
}

func TestLoadStateRAGQuery(t *testing.T) {
	rag := &fakeRAG{docs: []models.Document{{ID: "d1", Content: "style guide"}}}
	c := NewCoordinator(NewMemStore(), rag, nil)

	_, docs, err := c.LoadState(context.Background(), testGoal())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)

	require.Len(t, rag.queries, 1)
	assert.Equal(t, "write docs draft review", rag.queries[0])
}

func TestLoadStateRAGFailureNonFatal(t *testing.T) {
	rag := &fakeRAG{err: errors.New("vector store unreachable")}
	c := NewCoordinator(NewMemStore(), rag, nil)

	state, docs, err := c.LoadState(context.Background(), testGoal())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, docs)
}

func TestPersistPlanWritesStateAndEvent(t *testing.T) {
	store := NewMemStore()
	c := NewCoordinator(store, nil, nil)
	goal := testGoal()

	plan := &models.Plan{
		Goal: goal,
		Steps: []models.StepRecord{
			{Capability: "draft", WorkerName: "A", Status: models.StepStatusPending},
			{Capability: "review", WorkerName: "B", Status: models.StepStatusPending},
		},
		Reasoning: &models.Reasoning{Strategy: models.StrategyChainOfThought},
	}
	require.NoError(t, c.PersistPlan(context.Background(), plan))

	state, err := c.State(context.Background(), goal.SessionID)
	require.NoError(t, err)
	require.Len(t, state.Steps, 2)
	assert.Equal(t, models.StrategyChainOfThought, state.Reasoning.Strategy)

	events, err := c.Events(context.Background(), goal.SessionID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypePlanCreated, events[0].Type)
	assert.Equal(t, []any{"draft", "review"}, events[0].Data["steps"])
	assert.NoError(t, events[0].ValidateTimestamp())
}

func TestPersistStepUpsert(t *testing.T) {
	c := NewCoordinator(NewMemStore(), nil, nil)
	goal := testGoal()
	ctx := context.Background()

	first := models.StepRecord{
		Capability: "draft", WorkerName: "A",
		Status: models.StepStatusCompleted, Output: "v1",
	}
	require.NoError(t, c.PersistStep(ctx, goal, first))

	state, err := c.State(ctx, goal.SessionID)
	require.NoError(t, err)
	require.Len(t, state.Steps, 1)
	firstCompleted := state.Steps[0].CompletedAt
	require.NotNil(t, firstCompleted)

	// Re-running the capability overwrites the record, not appends.
	second := models.StepRecord{
		Capability: "draft", WorkerName: "A2",
		Status: models.StepStatusCompleted, Output: "v2",
	}
	require.NoError(t, c.PersistStep(ctx, goal, second))

	state, err = c.State(ctx, goal.SessionID)
	require.NoError(t, err)
	require.Len(t, state.Steps, 1)
	assert.Equal(t, "A2", state.Steps[0].WorkerName)
	assert.Equal(t, "v2", state.Steps[0].Output)
	require.NotNil(t, state.Steps[0].CompletedAt)
	assert.False(t, state.Steps[0].CompletedAt.Before(*firstCompleted))

	events, err := c.Events(ctx, goal.SessionID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	for _, evt := range events {
		assert.Equal(t, models.EventTypeStepCompleted, evt.Type)
	}
}

func TestWritePolicyDenies(t *testing.T) {
	policy := func(sessionID string, _ *models.SessionState) error {
		return ErrPolicyDenied
	}
	c := NewCoordinator(NewMemStore(), nil, policy)

	err := c.PersistStep(context.Background(), testGoal(), models.StepRecord{
		Capability: "draft", Status: models.StepStatusCompleted,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPolicyDenied)
}
