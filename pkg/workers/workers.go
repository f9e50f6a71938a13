// Package workers defines worker definitions and the registry that indexes
// them by name and by capability.
package workers

import (
	"context"

	"github.com/loom-agents/loom/pkg/models"
)

// Input is what a worker handler receives for one step.
type Input struct {
	Capability string         `json:"capability"`
	Input      map[string]any `json:"input,omitempty"`
}

// RunContext carries the per-step environment handed to a worker: the tool
// router, the goal being executed, the current session state, and the
// documents retrieved for the goal.
type RunContext struct {
	Tools            models.ToolInvoker
	Goal             models.Goal
	Memory           *models.SessionState
	ContextDocuments []models.Document
}

// Handler executes one step. The returned value becomes the step output.
type Handler func(ctx context.Context, in Input, rc *RunContext) (any, error)

// Definition declares a worker: a unique name, the capabilities it can
// handle (non-empty), and the handler that does the work.
type Definition struct {
	Name         string
	Description  string
	Capabilities []string
	Handler      Handler
}
