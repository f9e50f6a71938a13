// Package approval mediates human/policy approval for sensitive
// capabilities before a worker step runs.
package approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/loom-agents/loom/pkg/models"
)

// ErrApprovalDenied indicates the gate rejected a capability. Always
// wrapped with the capability name.
var ErrApprovalDenied = errors.New("approval denied")

// Decision is the gate's answer for one request.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionDenied   Decision = "denied"
)

// Request describes the step awaiting approval.
type Request struct {
	Goal       models.Goal    `json:"goal"`
	Capability string         `json:"capability"`
	Input      map[string]any `json:"input,omitempty"`
	SessionID  string         `json:"session_id"`
}

// GateFunc decides a single approval request. The call is synchronous: a
// human-in-the-loop implementation blocks until resolved or the context
// expires.
type GateFunc func(ctx context.Context, req Request) (Decision, error)

// Gate wraps a GateFunc with the require toggle from configuration. A nil
// or non-required gate approves everything.
type Gate struct {
	require bool
	fn      GateFunc
}

// NewGate creates an approval gate. fn may be nil when require is false.
func NewGate(require bool, fn GateFunc) *Gate {
	return &Gate{require: require, fn: fn}
}

// Required reports whether steps must pass through the gate.
func (g *Gate) Required() bool {
	return g != nil && g.require && g.fn != nil
}

// Check runs the gate for one step. A denied decision fails with
// ErrApprovalDenied carrying the capability name; gate errors propagate.
func (g *Gate) Check(ctx context.Context, req Request) error {
	if !g.Required() {
		return nil
	}
	decision, err := g.fn(ctx, req)
	if err != nil {
		return fmt.Errorf("approval gate for %q: %w", req.Capability, err)
	}
	if decision != DecisionApproved {
		return fmt.Errorf("%w: %s", ErrApprovalDenied, req.Capability)
	}
	return nil
}
