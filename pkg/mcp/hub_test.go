package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

// fakeClient is a scripted client for failover tests.
type fakeClient struct {
	name string
	err  error
}

func (f *fakeClient) Name() string      { return f.name }
func (f *fakeClient) Transport() string { return TransportStdio }

func (f *fakeClient) Invoke(_ context.Context, req models.ToolRequest) (*models.ToolResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ToolResult{
		Tool:       req.Tool,
		Result:     "ok from " + f.name,
		TokensUsed: 1,
		Metadata:   resultMetadata(TransportStdio, f.name),
	}, nil
}

func TestHubNoClients(t *testing.T) {
	hub := NewHub(nil)
	_, err := hub.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMCPClients)
}

func TestHubFailover(t *testing.T) {
	boom := errors.New("boom")
	hub := NewHub([]Client{
		&fakeClient{name: "A", err: boom},
		&fakeClient{name: "B", err: boom},
		&fakeClient{name: "C"},
	})

	result, err := hub.Invoke(context.Background(), models.ToolRequest{Tool: "search"})
	require.NoError(t, err)
	assert.Equal(t, "ok from C", result.Result)
	assert.Equal(t, "C", result.Metadata["client"])
}

func TestHubAllClientsFail(t *testing.T) {
	hub := NewHub([]Client{
		&fakeClient{name: "A", err: errors.New("a down")},
		&fakeClient{name: "B", err: errors.New("b down")},
	})

	_, err := hub.Invoke(context.Background(), models.ToolRequest{Tool: "search"})
	require.Error(t, err)

	var agg *AllClientsFailedError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, []string{"A", "B"}, agg.ClientNames())
	assert.Contains(t, agg.Error(), "a down")
	assert.Contains(t, agg.Error(), "b down")
}

func TestHubFirstSuccessShortCircuits(t *testing.T) {
	hub := NewHub([]Client{
		&fakeClient{name: "A"},
		&fakeClient{name: "B", err: errors.New("never reached")},
	})

	result, err := hub.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.NoError(t, err)
	assert.Equal(t, "A", result.Metadata["client"])

	health := hub.Health()
	require.Len(t, health, 2)
	assert.Equal(t, int64(1), health[0].Successes)
	assert.Equal(t, int64(0), health[1].Failures)
}

func TestHubCancelledContext(t *testing.T) {
	hub := NewHub([]Client{&fakeClient{name: "A"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hub.Invoke(ctx, models.ToolRequest{Tool: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
