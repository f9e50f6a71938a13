package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loom-agents/loom/pkg/approval"
	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/workers"
)

// Runner executes a plan's steps strictly sequentially. A step failure
// propagates immediately: no subsequent step runs. Concurrency across
// goals is allowed — a Runner is safe for concurrent Execute calls because
// all per-run state lives in the plan.
type Runner struct {
	registry *workers.Registry
	memory   *memory.Coordinator
	gate     *approval.Gate
	tools    models.ToolInvoker
	sink     EventSink
	logger   *slog.Logger
}

// NewRunner creates a worker runner. gate and sink may be nil.
func NewRunner(registry *workers.Registry, coordinator *memory.Coordinator, gate *approval.Gate, tools models.ToolInvoker, sink EventSink) *Runner {
	return &Runner{
		registry: registry,
		memory:   coordinator,
		gate:     gate,
		tools:    tools,
		sink:     sink,
		logger:   slog.Default(),
	}
}

// Execute walks the plan's steps in order. For each step it gates
// approval, resolves the worker, loads current session state, invokes the
// handler, and persists the result. Returns the final step records.
func (r *Runner) Execute(ctx context.Context, plan *models.Plan) ([]models.StepRecord, error) {
	goal := plan.Goal
	results := make([]models.StepRecord, 0, len(plan.Steps))

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		r.emit(models.NewEvent(models.EventTypeNodeStart, goal.SessionID, map[string]any{
			"capability": step.Capability,
			"worker":     step.WorkerName,
		}))

		record, err := r.executeStep(ctx, goal, plan, step)
		if err != nil {
			record.Status = models.StepStatusFailed
			record.Error = err.Error()
			if persistErr := r.memory.PersistStep(ctx, goal, record); persistErr != nil {
				r.logger.Warn("Failed to persist failed step",
					"session_id", goal.SessionID,
					"capability", step.Capability,
					"error", persistErr)
			}
			return results, err
		}

		results = append(results, record)
		r.emit(models.NewEvent(models.EventTypeNodeFinish, goal.SessionID, map[string]any{
			"capability": record.Capability,
			"worker":     record.WorkerName,
			"status":     string(record.Status),
		}))
	}

	return results, nil
}

// executeStep runs one step through the gate, the worker, and persistence.
func (r *Runner) executeStep(ctx context.Context, goal models.Goal, plan *models.Plan, step models.StepRecord) (models.StepRecord, error) {
	if err := r.gate.Check(ctx, approval.Request{
		Goal:       goal,
		Capability: step.Capability,
		Input:      step.Input,
		SessionID:  goal.SessionID,
	}); err != nil {
		return step, err
	}

	worker := r.registry.FindByCapability(step.Capability)
	if worker == nil {
		return step, fmt.Errorf("%w: %q", ErrNoWorkerForCapability, step.Capability)
	}

	state, err := r.memory.State(ctx, goal.SessionID)
	if err != nil {
		state = models.NewSessionState()
	}

	output, err := worker.Handler(ctx, workers.Input{
		Capability: step.Capability,
		Input:      step.Input,
	}, &workers.RunContext{
		Tools:            r.tools,
		Goal:             goal,
		Memory:           state,
		ContextDocuments: plan.RetrievedContext,
	})
	if err != nil {
		return step, fmt.Errorf("worker %q on %q: %w", worker.Name, step.Capability, err)
	}

	step.WorkerName = worker.Name
	step.Status = models.StepStatusCompleted
	step.Output = output

	if err := r.memory.PersistStep(ctx, goal, step); err != nil {
		return step, err
	}
	return step, nil
}

func (r *Runner) emit(event models.Event) {
	if r.sink != nil {
		r.sink.Emit(event)
	}
}
