// Package tools routes tool invocation requests to local handlers or the
// MCP client hub, and enforces the per-router token budget.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/loom-agents/loom/pkg/models"
)

var (
	// ErrTokenBudgetExceeded indicates the router's cumulative token budget
	// is exhausted.
	ErrTokenBudgetExceeded = errors.New("token budget exceeded")

	// ErrDuplicateHandler indicates a local handler name was registered twice.
	ErrDuplicateHandler = errors.New("duplicate local tool handler")
)

// LocalHandler serves a tool invocation in-process.
type LocalHandler func(ctx context.Context, req models.ToolRequest) (any, error)

// HubInvoker is the slice of the MCP hub the router depends on.
type HubInvoker interface {
	Invoke(ctx context.Context, req models.ToolRequest) (*models.ToolResult, error)
}

// Router resolves tool requests: a registered local handler name wins,
// anything else is dispatched to the MCP hub. A router is scoped to one
// run and carries that run's token budget.
type Router struct {
	hub    HubInvoker
	logger *slog.Logger

	mu       sync.Mutex
	handlers map[string]LocalHandler
	budget   int // 0 means unlimited
	consumed int
}

// NewRouter creates a router backed by the given hub. budget caps the
// cumulative tokensUsed across invocations; 0 disables the cap.
func NewRouter(hub HubInvoker, budget int) *Router {
	return &Router{
		hub:      hub,
		logger:   slog.Default(),
		handlers: make(map[string]LocalHandler),
		budget:   budget,
	}
}

// RegisterLocal adds a local handler under the given tool name.
func (r *Router) RegisterLocal(name string, handler LocalHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, name)
	}
	r.handlers[name] = handler
	return nil
}

// Consumed returns the tokens consumed so far.
func (r *Router) Consumed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.consumed
}

// Invoke resolves and executes one tool request. Local handlers are tried
// first; unmatched names go to the hub. Every result charges at least one
// token against the budget.
func (r *Router) Invoke(ctx context.Context, req models.ToolRequest) (*models.ToolResult, error) {
	if err := r.checkBudget(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	handler, isLocal := r.handlers[req.Tool]
	r.mu.Unlock()

	var result *models.ToolResult
	if isLocal {
		output, err := handler(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("local tool %q: %w", req.Tool, err)
		}
		result = &models.ToolResult{
			Tool:       req.Tool,
			Result:     output,
			TokensUsed: estimatePayloadTokens(output),
			Metadata:   map[string]any{"transport": "local", "client": "local"},
		}
	} else {
		hubResult, err := r.hub.Invoke(ctx, req)
		if err != nil {
			return nil, err
		}
		result = hubResult
	}

	r.charge(result.TokensUsed)
	return result, nil
}

// InvokeBatch fans the requests out concurrently and gathers every outcome
// regardless of individual failures (allSettled semantics). The returned
// slice is positionally aligned with the requests.
func (r *Router) InvokeBatch(ctx context.Context, reqs []models.ToolRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))
	var wg sync.WaitGroup
	wg.Add(len(reqs))
	for i, req := range reqs {
		go func(i int, req models.ToolRequest) {
			defer wg.Done()
			result, err := r.Invoke(ctx, req)
			results[i] = BatchResult{Result: result, Err: err}
		}(i, req)
	}
	wg.Wait()
	return results
}

// BatchResult is one settled outcome of a batch invocation.
type BatchResult struct {
	Result *models.ToolResult
	Err    error
}

func (r *Router) checkBudget() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.budget > 0 && r.consumed >= r.budget {
		return fmt.Errorf("%w: consumed %d of %d", ErrTokenBudgetExceeded, r.consumed, r.budget)
	}
	return nil
}

func (r *Router) charge(tokens int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consumed += tokens
	if r.budget > 0 && r.consumed > r.budget {
		r.logger.Warn("Token budget exhausted",
			"consumed", r.consumed, "budget", r.budget)
	}
}
