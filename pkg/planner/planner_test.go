package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/approval"
	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/workers"
)

func newTestPlanner(t *testing.T, defs ...workers.Definition) (*Planner, *memory.Coordinator) {
	t.Helper()
	registry := workers.NewRegistry()
	for _, def := range defs {
		require.NoError(t, registry.Register(def))
	}
	coordinator := memory.NewCoordinator(memory.NewMemStore(), nil, nil)
	runner := NewRunner(registry, coordinator, approval.NewGate(false, nil), nil, nil)
	return New(registry, coordinator, runner, nil), coordinator
}

func echoWorker(name string, caps ...string) workers.Definition {
	return workers.Definition{
		Name:         name,
		Capabilities: caps,
		Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
			return "did " + in.Capability, nil
		},
	}
}

func TestPrepareChainPlanning(t *testing.T) {
	p, _ := newTestPlanner(t, echoWorker("A", "draft"), echoWorker("B", "review"))

	plan, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "write docs",
		RequiredCapabilities: []string{"draft", "review"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StrategyChainOfThought, plan.Reasoning.Strategy)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "draft", plan.Steps[0].Capability)
	assert.Equal(t, "A", plan.Steps[0].WorkerName)
	assert.Equal(t, models.StepStatusPending, plan.Steps[0].Status)
	assert.Equal(t, "review", plan.Steps[1].Capability)
	assert.Equal(t, "B", plan.Steps[1].WorkerName)
	assert.Equal(t, models.StepStatusPending, plan.Steps[1].Status)
	assert.Len(t, plan.Reasoning.Thoughts, 2)
	assert.Empty(t, plan.Reasoning.Paths)
}

func TestPrepareTreePlanning(t *testing.T) {
	p, _ := newTestPlanner(t,
		echoWorker("A", "ingest"), echoWorker("B", "summarise"),
		echoWorker("C", "validate"), echoWorker("D", "deploy"))

	plan, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "ship the report",
		RequiredCapabilities: []string{"ingest", "summarise", "validate", "deploy"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StrategyTreeOfThought, plan.Reasoning.Strategy)
	require.Len(t, plan.Reasoning.Paths, 2)

	primary := plan.Reasoning.Paths[0]
	assert.True(t, primary.Chosen)
	assert.Equal(t, []string{"ingest", "summarise", "validate", "deploy"}, primary.Ordering)
	assert.InDelta(t, 0.7, primary.Score, 1e-9)

	alternative := plan.Reasoning.Paths[1]
	assert.Equal(t, []string{"deploy", "validate", "summarise", "ingest"}, alternative.Ordering)
	assert.InDelta(t, 0.5, alternative.Score, 1e-9)
}

func TestPrepareExplicitTreeStrategy(t *testing.T) {
	p, _ := newTestPlanner(t, echoWorker("A", "draft"))

	plan, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "one step tree",
		RequiredCapabilities: []string{"draft"},
		Strategy:             models.StrategyTreeOfThought,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StrategyTreeOfThought, plan.Reasoning.Strategy)
	// Reversed single-step ordering equals the primary, so it is omitted.
	require.Len(t, plan.Reasoning.Paths, 1)
	assert.True(t, plan.Reasoning.Paths[0].Chosen)
}

func TestPrepareVendorWeighting(t *testing.T) {
	p, _ := newTestPlanner(t, echoWorker("A", "draft"))

	plan, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "weighted",
		RequiredCapabilities: []string{"draft"},
		Input:                map[string]any{"provider": "anthropic"},
	})
	require.NoError(t, err)

	require.NotNil(t, plan.Reasoning.VendorWeighting)
	assert.InDelta(t, 0.62, plan.Reasoning.VendorWeighting["claude-3-5-sonnet"], 1e-9)
	assert.InDelta(t, 0.38, plan.Reasoning.VendorWeighting["claude-3-5-haiku"], 1e-9)

	var sum float64
	for _, w := range plan.Reasoning.VendorWeighting {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
}

func TestPrepareUnknownProviderIgnored(t *testing.T) {
	p, _ := newTestPlanner(t, echoWorker("A", "draft"))

	plan, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "no weights",
		RequiredCapabilities: []string{"draft"},
		Input:                map[string]any{"provider": "acme-llm"},
	})
	require.NoError(t, err)
	assert.Nil(t, plan.Reasoning.VendorWeighting)
}

func TestPrepareStepListMatchesCapabilities(t *testing.T) {
	p, _ := newTestPlanner(t,
		echoWorker("A", "x"), echoWorker("B", "y"), echoWorker("C", "z"))

	goal := models.Goal{
		SessionID:            "s",
		Objective:            "property check",
		RequiredCapabilities: []string{"z", "x", "y"},
	}
	plan, err := p.Prepare(context.Background(), goal)
	require.NoError(t, err)

	require.Len(t, plan.Steps, len(goal.RequiredCapabilities))
	for i, cap := range goal.RequiredCapabilities {
		assert.Equal(t, cap, plan.Steps[i].Capability)
	}
}

func TestPrepareMissingCapabilityFatal(t *testing.T) {
	p, _ := newTestPlanner(t, echoWorker("A", "draft"))

	_, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "impossible",
		RequiredCapabilities: []string{"draft", "teleport"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapabilityUnassigned)
	assert.Contains(t, err.Error(), "teleport")
}

func TestPrepareValidation(t *testing.T) {
	p, _ := newTestPlanner(t, echoWorker("A", "draft"))

	_, err := p.Prepare(context.Background(), models.Goal{
		SessionID: "s", RequiredCapabilities: []string{"draft"},
	})
	assert.ErrorIs(t, err, ErrEmptyObjective)

	_, err = p.Prepare(context.Background(), models.Goal{
		SessionID: "s", Objective: "no caps",
	})
	assert.ErrorIs(t, err, ErrNoCapabilities)
}

func TestPreparePersistsPlan(t *testing.T) {
	p, coordinator := newTestPlanner(t, echoWorker("A", "draft"))

	_, err := p.Prepare(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "persisted",
		RequiredCapabilities: []string{"draft"},
	})
	require.NoError(t, err)

	events, err := coordinator.Events(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypePlanCreated, events[0].Type)
}
