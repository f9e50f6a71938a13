// Package mcp provides the tool transport clients (stdio child processes
// and streamable HTTP endpoints) and the hub that fails over between them.
package mcp

import (
	"context"
	"encoding/json"

	"github.com/loom-agents/loom/pkg/models"
)

// Transport kind values recorded in result metadata.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Client is a single transport-backed tool provider. Each Invoke is
// self-contained: stdio clients spawn a fresh child process per call and
// HTTP clients issue an independent request.
type Client interface {
	Name() string
	Transport() string
	Invoke(ctx context.Context, req models.ToolRequest) (*models.ToolResult, error)
}

// wirePayload is the response shape shared by both wire protocols: either
// an envelope {"result": ..., "tokensUsed": ...} or a bare payload that is
// itself the result.
type wirePayload struct {
	Result     json.RawMessage `json:"result"`
	TokensUsed *float64        `json:"tokensUsed"`
}

// decodeResult parses raw transport output into (result, tokensUsed).
// Takes payload.result when present, otherwise the entire payload. Tokens
// come from the payload when numeric, else from the size estimator.
func decodeResult(raw []byte) (any, int, error) {
	var envelope wirePayload
	// Envelope detection requires a JSON object; arrays/scalars are bare results.
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Result != nil {
		var result any
		if err := json.Unmarshal(envelope.Result, &result); err != nil {
			return nil, 0, err
		}
		tokens := 0
		if envelope.TokensUsed != nil {
			tokens = int(*envelope.TokensUsed)
		}
		if tokens < 1 {
			tokens = EstimateTokens(envelope.Result)
		}
		return result, tokens, nil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, 0, err
	}
	return result, EstimateTokens(raw), nil
}

// resultMetadata builds the metadata map every client attaches.
func resultMetadata(transport, client string) map[string]any {
	return map[string]any{
		"transport": transport,
		"client":    client,
	}
}
