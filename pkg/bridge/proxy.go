package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loom-agents/loom/pkg/version"
)

// Proxied method set. initialize is answered locally; requests for any
// other method are rejected.
const (
	methodInitialize    = "initialize"
	methodToolsList     = "tools/list"
	methodToolsCall     = "tools/call"
	methodResourcesList = "resources/list"
	methodResourcesRead = "resources/read"
	methodPromptsList   = "prompts/list"
	methodPromptsGet    = "prompts/get"
)

// protocolVersion is advertised to target-side clients during the MCP
// handshake.
const protocolVersion = "2025-03-26"

// sourceSession is the slice of the MCP client session the proxy forwards
// through. *mcpsdk.ClientSession satisfies it.
type sourceSession interface {
	ListTools(ctx context.Context, params *mcpsdk.ListToolsParams) (*mcpsdk.ListToolsResult, error)
	CallTool(ctx context.Context, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error)
	ListResources(ctx context.Context, params *mcpsdk.ListResourcesParams) (*mcpsdk.ListResourcesResult, error)
	ReadResource(ctx context.Context, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error)
	ListPrompts(ctx context.Context, params *mcpsdk.ListPromptsParams) (*mcpsdk.ListPromptsResult, error)
	GetPrompt(ctx context.Context, params *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error)
}

// proxy forwards target-side requests to the source session. Params are
// passed through verbatim; each forwarded call is tagged with a fresh
// request ID for correlation in logs.
type proxy struct {
	session sourceSession
	logging bool
	logger  *slog.Logger
	nextID  atomic.Int64
}

func newProxy(session sourceSession, logging bool, logger *slog.Logger) *proxy {
	return &proxy{session: session, logging: logging, logger: logger}
}

// handle dispatches one request and returns the source's response.
func (p *proxy) handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	requestID := p.nextID.Add(1)
	if p.logging {
		p.logger.Info("Forwarding request",
			"request_id", requestID, "method", method)
	}

	result, err := p.forward(ctx, method, params)
	if err != nil {
		if p.logging {
			p.logger.Warn("Forwarded request failed",
				"request_id", requestID, "method", method, "error", err)
		}
		return nil, err
	}
	return result, nil
}

func (p *proxy) forward(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case methodInitialize:
		// The source session did its own handshake when the bridge
		// connected, so this is not forwarded.
		return initializeResult(), nil
	case methodToolsList:
		return forwardCall(ctx, params, p.session.ListTools)
	case methodToolsCall:
		return forwardCall(ctx, params, p.session.CallTool)
	case methodResourcesList:
		return forwardCall(ctx, params, p.session.ListResources)
	case methodResourcesRead:
		return forwardCall(ctx, params, p.session.ReadResource)
	case methodPromptsList:
		return forwardCall(ctx, params, p.session.ListPrompts)
	case methodPromptsGet:
		return forwardCall(ctx, params, p.session.GetPrompt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrMethodUnsupported, method)
	}
}

// forwardCall decodes raw params into the method's parameter type and
// invokes the session. Absent params decode to the zero value.
func forwardCall[P any, R any](ctx context.Context, raw json.RawMessage, call func(context.Context, *P) (*R, error)) (*R, error) {
	params := new(P)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, params); err != nil {
			return nil, fmt.Errorf("decode params: %w", err)
		}
	}
	return call(ctx, params)
}

// initializeResult advertises the proxied surface: tools, resources, and
// prompts, plus logging.
func initializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
			"prompts":   map[string]any{},
			"logging":   map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    version.AppName,
			"version": version.GitCommit,
		},
	}
}

func rpcCodeFor(err error) int {
	if errors.Is(err, ErrMethodUnsupported) {
		return codeMethodNotFound
	}
	return codeInternalError
}
