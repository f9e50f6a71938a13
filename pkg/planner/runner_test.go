package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/approval"
	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/workers"
)

func newRunnerHarness(t *testing.T, gate *approval.Gate, defs ...workers.Definition) (*Planner, *memory.Coordinator) {
	t.Helper()
	registry := workers.NewRegistry()
	for _, def := range defs {
		require.NoError(t, registry.Register(def))
	}
	coordinator := memory.NewCoordinator(memory.NewMemStore(), nil, nil)
	runner := NewRunner(registry, coordinator, gate, nil, nil)
	return New(registry, coordinator, runner, nil), coordinator
}

func TestRunSequentialExecution(t *testing.T) {
	var order []string
	worker := func(name string, caps ...string) workers.Definition {
		return workers.Definition{
			Name:         name,
			Capabilities: caps,
			Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
				order = append(order, in.Capability)
				return in.Capability + " done", nil
			},
		}
	}

	p, _ := newRunnerHarness(t, approval.NewGate(false, nil),
		worker("A", "draft"), worker("B", "review"), worker("C", "publish"))

	result, err := p.Run(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "pipeline",
		RequiredCapabilities: []string{"draft", "review", "publish"},
	})
	require.NoError(t, err)

	// Step i starts only after step i-1 completed.
	assert.Equal(t, []string{"draft", "review", "publish"}, order)
	require.Len(t, result.Steps, 3)
	for _, step := range result.Steps {
		assert.Equal(t, models.StepStatusCompleted, step.Status)
		require.NotNil(t, step.CompletedAt)
	}
}

func TestRunStepFailureStopsExecution(t *testing.T) {
	var ran []string
	boom := errors.New("validator crashed")
	defs := []workers.Definition{
		{
			Name: "ok", Capabilities: []string{"draft"},
			Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
				ran = append(ran, in.Capability)
				return "fine", nil
			},
		},
		{
			Name: "bad", Capabilities: []string{"validate"},
			Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
				ran = append(ran, in.Capability)
				return nil, boom
			},
		},
		{
			Name: "never", Capabilities: []string{"publish"},
			Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
				ran = append(ran, in.Capability)
				return nil, nil
			},
		},
	}

	p, coordinator := newRunnerHarness(t, approval.NewGate(false, nil), defs...)

	_, err := p.Run(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "fail fast",
		RequiredCapabilities: []string{"draft", "validate", "publish"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The failed step halts the plan; the third worker never runs.
	assert.Equal(t, []string{"draft", "validate"}, ran)

	state, err := coordinator.State(context.Background(), "s")
	require.NoError(t, err)
	failed := state.FindStep("validate")
	require.NotNil(t, failed)
	assert.Equal(t, models.StepStatusFailed, failed.Status)
	assert.Contains(t, failed.Error, "validator crashed")
}

func TestRunApprovalDenied(t *testing.T) {
	gate := approval.NewGate(true, func(_ context.Context, req approval.Request) (approval.Decision, error) {
		if req.Capability == "codemod" {
			return approval.DecisionDenied, nil
		}
		return approval.DecisionApproved, nil
	})

	var ran []string
	worker := func(name string, caps ...string) workers.Definition {
		return workers.Definition{
			Name:         name,
			Capabilities: caps,
			Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
				ran = append(ran, in.Capability)
				return nil, nil
			},
		}
	}

	p, _ := newRunnerHarness(t, gate,
		worker("A", "draft"), worker("B", "codemod"), worker("C", "review"))

	_, err := p.Run(context.Background(), models.Goal{
		SessionID:            "s",
		Objective:            "apply refactors",
		RequiredCapabilities: []string{"draft", "codemod", "review"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, approval.ErrApprovalDenied)
	assert.Contains(t, err.Error(), "codemod")

	// The denied step's worker and everything after never run.
	assert.Equal(t, []string{"draft"}, ran)
}

func TestRunWorkerReceivesContext(t *testing.T) {
	var captured *workers.RunContext
	def := workers.Definition{
		Name: "inspector", Capabilities: []string{"inspect"},
		Handler: func(_ context.Context, _ workers.Input, rc *workers.RunContext) (any, error) {
			captured = rc
			return "ok", nil
		},
	}

	p, _ := newRunnerHarness(t, approval.NewGate(false, nil), def)

	goal := models.Goal{
		SessionID:            "s",
		Objective:            "inspect things",
		RequiredCapabilities: []string{"inspect"},
		Input:                map[string]any{"target": "repo"},
	}
	_, err := p.Run(context.Background(), goal)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, goal.Objective, captured.Goal.Objective)
	require.NotNil(t, captured.Memory)
}

func TestRunCancelledContext(t *testing.T) {
	p, _ := newRunnerHarness(t, approval.NewGate(false, nil), echoWorker("A", "draft"))

	ctx, cancel := context.WithCancel(context.Background())
	plan, err := p.Prepare(ctx, models.Goal{
		SessionID:            "s",
		Objective:            "cancelled",
		RequiredCapabilities: []string{"draft"},
	})
	require.NoError(t, err)
	cancel()

	_, err = p.runner.Execute(ctx, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
