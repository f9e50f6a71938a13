// Package planner turns goals into capability-bound plans and executes
// them step by step through the worker runner.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/workers"
)

// EventSink receives lifecycle events. Implemented by the streaming
// manager; a nil sink disables emission.
type EventSink interface {
	Emit(event models.Event)
}

// Planner decomposes goals into plans. Plans are deterministic: one step
// per required capability, in the goal's order.
type Planner struct {
	registry *workers.Registry
	memory   *memory.Coordinator
	runner   *Runner
	sink     EventSink
	logger   *slog.Logger
}

// New creates a planner. sink may be nil.
func New(registry *workers.Registry, coordinator *memory.Coordinator, runner *Runner, sink EventSink) *Planner {
	return &Planner{
		registry: registry,
		memory:   coordinator,
		runner:   runner,
		sink:     sink,
		logger:   slog.Default(),
	}
}

// Prepare normalises the goal, builds the ordered step list, loads session
// context, computes the reasoning trace, and persists the plan. A
// capability with no registered worker is fatal.
func (p *Planner) Prepare(ctx context.Context, goal models.Goal) (*models.Plan, error) {
	normalised, err := normaliseGoal(goal)
	if err != nil {
		return nil, err
	}

	steps := make([]models.StepRecord, 0, len(normalised.RequiredCapabilities))
	for _, capability := range normalised.RequiredCapabilities {
		worker := p.registry.FindByCapability(capability)
		if worker == nil {
			return nil, fmt.Errorf("%w: %q", ErrCapabilityUnassigned, capability)
		}
		steps = append(steps, models.StepRecord{
			Capability: capability,
			WorkerName: worker.Name,
			Status:     models.StepStatusPending,
			Input:      normalised.Input,
		})
	}

	_, docs, err := p.memory.LoadState(ctx, normalised)
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{
		Goal:             normalised,
		Steps:            steps,
		RetrievedContext: docs,
		Reasoning:        buildReasoning(normalised, steps),
	}

	if err := p.memory.PersistPlan(ctx, plan); err != nil {
		return nil, err
	}

	p.logger.Info("Plan prepared",
		"session_id", normalised.SessionID,
		"steps", len(steps),
		"strategy", plan.Reasoning.Strategy)

	return plan, nil
}

// Run prepares a plan for the goal and dispatches it to the worker runner.
func (p *Planner) Run(ctx context.Context, goal models.Goal) (*models.ExecutionResult, error) {
	plan, err := p.Prepare(ctx, goal)
	if err != nil {
		return nil, err
	}
	return p.Dispatch(ctx, plan)
}

// Dispatch executes an already prepared plan through the worker runner,
// emitting the start, error, and finish lifecycle events.
func (p *Planner) Dispatch(ctx context.Context, plan *models.Plan) (*models.ExecutionResult, error) {
	p.emit(models.NewEvent(models.EventTypeStart, plan.Goal.SessionID, map[string]any{
		"objective": plan.Goal.Objective,
		"steps":     len(plan.Steps),
	}))

	steps, err := p.runner.Execute(ctx, plan)
	if err != nil {
		p.emit(models.NewEvent(models.EventTypeError, plan.Goal.SessionID, map[string]any{
			"error": err.Error(),
		}))
		return nil, err
	}

	p.emit(models.NewEvent(models.EventTypeFinish, plan.Goal.SessionID, map[string]any{
		"steps": len(steps),
	}))

	return &models.ExecutionResult{
		Goal:      plan.Goal,
		Steps:     steps,
		Context:   plan.RetrievedContext,
		Reasoning: plan.Reasoning,
	}, nil
}

func (p *Planner) emit(event models.Event) {
	if p.sink != nil {
		p.sink.Emit(event)
	}
}

// normaliseGoal trims the goal's fields and applies the default strategy.
// The capability order is preserved: it is the canonical execution order.
func normaliseGoal(goal models.Goal) (models.Goal, error) {
	goal.Objective = strings.TrimSpace(goal.Objective)
	if goal.Objective == "" {
		return goal, ErrEmptyObjective
	}
	if len(goal.RequiredCapabilities) == 0 {
		return goal, ErrNoCapabilities
	}
	caps := make([]string, len(goal.RequiredCapabilities))
	for i, c := range goal.RequiredCapabilities {
		caps[i] = strings.TrimSpace(c)
	}
	goal.RequiredCapabilities = caps
	if goal.Strategy == "" {
		goal.Strategy = models.StrategyChainOfThought
	}
	return goal, nil
}
