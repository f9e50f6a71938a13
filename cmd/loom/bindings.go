package main

import (
	"context"
	"fmt"
	"time"

	"github.com/loom-agents/loom/pkg/approval"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/tools"
	"github.com/loom-agents/loom/pkg/workers"
)

// workerHandlers is the catalog of builtin worker handler bindings. The
// configuration's workers[].handler field names one of these.
var workerHandlers = map[string]workers.Handler{
	// echo returns the step's capability and input unchanged. Useful for
	// wiring checks and as a template for real handlers.
	"echo": func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
		return map[string]any{
			"capability": in.Capability,
			"input":      in.Input,
		}, nil
	},

	// tool-runner invokes the tool named by the step input's "tool" key
	// and returns the tool result as the step output.
	"tool-runner": func(ctx context.Context, in workers.Input, rc *workers.RunContext) (any, error) {
		name, _ := in.Input["tool"].(string)
		if name == "" {
			return nil, fmt.Errorf("capability %q: step input needs a \"tool\" key", in.Capability)
		}
		result, err := rc.Tools.Invoke(ctx, models.ToolRequest{
			Tool:  name,
			Input: in.Input["args"],
			Kind:  models.ToolKindAnalysis,
		})
		if err != nil {
			return nil, err
		}
		return result.Result, nil
	},

	// fact-recorder returns the step input's "fact" as the step output so
	// it lands in the persisted step record.
	"fact-recorder": func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
		fact, _ := in.Input["fact"].(string)
		if fact == "" {
			return nil, fmt.Errorf("capability %q: step input needs a \"fact\" key", in.Capability)
		}
		return map[string]any{"recorded": fact}, nil
	},
}

// localTools is the catalog of builtin local tool bindings for the router.
var localTools = map[string]tools.LocalHandler{
	"clock": func(_ context.Context, _ models.ToolRequest) (any, error) {
		return map[string]any{"now": time.Now().UTC().Format(time.RFC3339)}, nil
	},
	"echo": func(_ context.Context, req models.ToolRequest) (any, error) {
		return req.Input, nil
	},
}

// gateFuncs is the catalog of approval gate bindings.
var gateFuncs = map[string]approval.GateFunc{
	"allow-all": func(_ context.Context, _ approval.Request) (approval.Decision, error) {
		return approval.DecisionApproved, nil
	},
	"deny-all": func(_ context.Context, _ approval.Request) (approval.Decision, error) {
		return approval.DecisionDenied, nil
	},
}
