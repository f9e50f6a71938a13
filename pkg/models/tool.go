package models

import "context"

// ToolKind classifies a tool invocation for routing and audit.
type ToolKind string

const (
	ToolKindSearch     ToolKind = "search"
	ToolKindCodemod    ToolKind = "codemod"
	ToolKindValidation ToolKind = "validation"
	ToolKindAnalysis   ToolKind = "analysis"
)

// ToolRequest asks the router to invoke a named tool.
type ToolRequest struct {
	Tool    string         `json:"tool"`
	Input   any            `json:"input"`
	Kind    ToolKind       `json:"kind"`
	Context map[string]any `json:"context,omitempty"`
}

// ToolResult is the outcome of a tool invocation. TokensUsed is always ≥ 1:
// when the transport does not report a count the router estimates one from
// the serialized payload size.
type ToolResult struct {
	Tool       string         `json:"tool"`
	Result     any            `json:"result"`
	TokensUsed int            `json:"tokens_used"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// ToolInvoker is the surface workers use to reach tools. The router behind
// it decides whether a request is served locally or dispatched to an MCP
// transport.
type ToolInvoker interface {
	Invoke(ctx context.Context, req ToolRequest) (*ToolResult, error)
}
