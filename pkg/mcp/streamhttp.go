package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/loom-agents/loom/pkg/models"
)

// maxErrorBodyBytes caps how much of a failed response body is carried in
// the error message.
const maxErrorBodyBytes = 2048

// HTTPClient invokes a tool over a streamable HTTP endpoint: one POST per
// call with the same JSON body shape as the stdio protocol and an X-Tool
// header naming the tool.
type HTTPClient struct {
	name    string
	url     string
	headers map[string]string
	client  *http.Client
}

// NewHTTPClient creates a streamable HTTP transport client. httpClient may
// be nil, in which case http.DefaultClient is used.
func NewHTTPClient(name, url string, headers map[string]string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{name: name, url: url, headers: headers, client: httpClient}
}

// Name returns the configured client name.
func (c *HTTPClient) Name() string { return c.name }

// Transport returns the transport kind for result metadata.
func (c *HTTPClient) Transport() string { return TransportStreamableHTTP }

// Invoke POSTs the request body and parses the response with the shared
// result/tokens extraction rules. Non-2xx responses fail with the status.
func (c *HTTPClient) Invoke(ctx context.Context, req models.ToolRequest) (*models.ToolResult, error) {
	body, err := json.Marshal(stdioRequest{Tool: req.Tool, Input: req.Input, Kind: req.Kind})
	if err != nil {
		return nil, fmt.Errorf("marshal http request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", c.url, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Tool", req.Tool)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("client %q: %w", c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client %q: read response: %w", c.name, err)
	}

	result, tokens, err := decodeResult(bytes.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("client %q: parse response: %w", c.name, err)
	}

	return &models.ToolResult{
		Tool:       req.Tool,
		Result:     result,
		TokensUsed: tokens,
		Metadata:   resultMetadata(TransportStreamableHTTP, c.name),
	}, nil
}
