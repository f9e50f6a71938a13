package tools

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

type fakeHub struct {
	calls atomic.Int64
	err   error
}

func (f *fakeHub) Invoke(_ context.Context, req models.ToolRequest) (*models.ToolResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &models.ToolResult{
		Tool:       req.Tool,
		Result:     "hub result",
		TokensUsed: 10,
		Metadata:   map[string]any{"transport": "stdio", "client": "A"},
	}, nil
}

func TestRouterLocalHandlerWins(t *testing.T) {
	hub := &fakeHub{}
	router := NewRouter(hub, 0)
	require.NoError(t, router.RegisterLocal("grep", func(_ context.Context, req models.ToolRequest) (any, error) {
		return map[string]any{"matches": 2, "tool": req.Tool}, nil
	}))

	result, err := router.Invoke(context.Background(), models.ToolRequest{Tool: "grep", Kind: models.ToolKindSearch})
	require.NoError(t, err)
	assert.Equal(t, "local", result.Metadata["transport"])
	assert.GreaterOrEqual(t, result.TokensUsed, 1)
	assert.Equal(t, int64(0), hub.calls.Load())
}

func TestRouterFallsThroughToHub(t *testing.T) {
	hub := &fakeHub{}
	router := NewRouter(hub, 0)

	result, err := router.Invoke(context.Background(), models.ToolRequest{Tool: "remote-thing"})
	require.NoError(t, err)
	assert.Equal(t, "hub result", result.Result)
	assert.Equal(t, int64(1), hub.calls.Load())
}

func TestRouterDuplicateLocalHandler(t *testing.T) {
	router := NewRouter(&fakeHub{}, 0)
	require.NoError(t, router.RegisterLocal("x", func(context.Context, models.ToolRequest) (any, error) { return nil, nil }))
	err := router.RegisterLocal("x", func(context.Context, models.ToolRequest) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrDuplicateHandler)
}

func TestRouterLocalHandlerError(t *testing.T) {
	router := NewRouter(&fakeHub{}, 0)
	boom := errors.New("handler blew up")
	require.NoError(t, router.RegisterLocal("bad", func(context.Context, models.ToolRequest) (any, error) {
		return nil, boom
	}))

	_, err := router.Invoke(context.Background(), models.ToolRequest{Tool: "bad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRouterTokenBudget(t *testing.T) {
	hub := &fakeHub{} // charges 10 tokens per call
	router := NewRouter(hub, 15)

	_, err := router.Invoke(context.Background(), models.ToolRequest{Tool: "a"})
	require.NoError(t, err)
	assert.Equal(t, 10, router.Consumed())

	// Second call is allowed (consumed < budget) and overshoots.
	_, err = router.Invoke(context.Background(), models.ToolRequest{Tool: "b"})
	require.NoError(t, err)
	assert.Equal(t, 20, router.Consumed())

	// Third call is rejected: budget exhausted.
	_, err = router.Invoke(context.Background(), models.ToolRequest{Tool: "c"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenBudgetExceeded)
}

func TestRouterInvokeBatchAllSettled(t *testing.T) {
	hub := &fakeHub{}
	router := NewRouter(hub, 0)
	require.NoError(t, router.RegisterLocal("ok", func(context.Context, models.ToolRequest) (any, error) {
		return "fine", nil
	}))
	require.NoError(t, router.RegisterLocal("fail", func(context.Context, models.ToolRequest) (any, error) {
		return nil, errors.New("nope")
	}))

	results := router.InvokeBatch(context.Background(), []models.ToolRequest{
		{Tool: "ok"},
		{Tool: "fail"},
		{Tool: "remote"},
	})
	require.Len(t, results, 3)

	// Positional alignment: success, failure, hub success.
	require.NoError(t, results[0].Err)
	assert.Equal(t, "fine", results[0].Result.Result)

	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)

	require.NoError(t, results[2].Err)
	assert.Equal(t, "hub result", results[2].Result.Result)
}
