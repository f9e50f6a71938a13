// Package models defines the shared domain entities of the workflow kernel:
// goals, plans, steps, session state, events, evidence, and PRP run state.
package models

// PlanningStrategy selects how the planner builds its reasoning trace.
type PlanningStrategy string

const (
	StrategyChainOfThought PlanningStrategy = "chain-of-thought"
	StrategyTreeOfThought  PlanningStrategy = "tree-of-thought"
)

// Goal is a high-level objective submitted for planning and execution.
// Immutable after creation. RequiredCapabilities is ordered; the order is
// the canonical execution order.
type Goal struct {
	SessionID            string           `json:"session_id"`
	Objective            string           `json:"objective"`
	RequiredCapabilities []string         `json:"required_capabilities"`
	Input                map[string]any   `json:"input,omitempty"`
	Strategy             PlanningStrategy `json:"strategy,omitempty"`
}
