package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

func TestHTTPClientInvoke(t *testing.T) {
	var gotTool, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTool = r.Header.Get("X-Tool")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"result": {"status": "applied"}, "tokensUsed": 11}`))
	}))
	defer srv.Close()

	client := NewHTTPClient("remote", srv.URL, map[string]string{"X-Team": "core"}, nil)
	result, err := client.Invoke(context.Background(), models.ToolRequest{
		Tool: "deploy", Input: map[string]any{"env": "staging"}, Kind: models.ToolKindValidation,
	})
	require.NoError(t, err)

	assert.Equal(t, "deploy", gotTool)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "deploy", gotBody["tool"])
	assert.Equal(t, "validation", gotBody["kind"])

	assert.Equal(t, map[string]any{"status": "applied"}, result.Result)
	assert.Equal(t, 11, result.TokensUsed)
	assert.Equal(t, TransportStreamableHTTP, result.Metadata["transport"])
	assert.Equal(t, "remote", result.Metadata["client"])
}

func TestHTTPClientConfigHeaders(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"result": true}`))
	}))
	defer srv.Close()

	client := NewHTTPClient("auth", srv.URL, map[string]string{"Authorization": "Bearer tok"}, nil)
	_, err := client.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotHeader)
}

func TestHTTPClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient("remote", srv.URL, nil, nil)
	_, err := client.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "backend unavailable")
}

func TestHTTPClientTokenEstimateFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": "abcdefgh"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient("remote", srv.URL, nil, nil)
	result, err := client.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.TokensUsed, 1)
}
