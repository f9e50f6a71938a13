package mcp

import (
	"context"
	"log/slog"

	"github.com/loom-agents/loom/pkg/models"
)

// Hub fronts an ordered list of transport clients and fails over between
// them. Ordering is the configuration order — there is no health-based
// reordering; an external orchestrator may re-seed the configuration.
//
// Invoke is sequential across clients (failover order must be observed)
// but safe to call concurrently from different runs: each individual
// invocation is self-contained.
type Hub struct {
	clients []Client
	health  *HealthTracker
	logger  *slog.Logger
}

// NewHub creates a hub over the given clients, tried in order.
func NewHub(clients []Client) *Hub {
	return &Hub{
		clients: clients,
		health:  NewHealthTracker(clients),
		logger:  slog.Default(),
	}
}

// Clients returns the configured client count.
func (h *Hub) Clients() int { return len(h.clients) }

// Health returns the hub's per-client health snapshot.
func (h *Hub) Health() []ClientHealth { return h.health.Snapshot() }

// Invoke tries each client in configuration order. The first success wins;
// on error the per-client cause is recorded and the next client is tried.
// When every client fails the aggregate error lists each cause in order.
func (h *Hub) Invoke(ctx context.Context, req models.ToolRequest) (*models.ToolResult, error) {
	if len(h.clients) == 0 {
		return nil, ErrNoMCPClients
	}

	var causes []ClientFailure
	for _, client := range h.clients {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := client.Invoke(ctx, req)
		if err == nil {
			h.health.RecordSuccess(client.Name())
			return result, nil
		}

		h.health.RecordFailure(client.Name(), err)
		h.logger.Warn("MCP client failed, trying next",
			"client", client.Name(),
			"transport", client.Transport(),
			"tool", req.Tool,
			"error", err)
		causes = append(causes, ClientFailure{Client: client.Name(), Err: err})
	}

	return nil, &AllClientsFailedError{Causes: causes}
}
