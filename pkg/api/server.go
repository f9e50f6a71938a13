// Package api exposes the ops surface of the workflow kernel: goal
// submission, session and run inspection, health, and the WebSocket
// event stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loom-agents/loom/pkg/config"
	"github.com/loom-agents/loom/pkg/database"
	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/phase"
	"github.com/loom-agents/loom/pkg/planner"
	"github.com/loom-agents/loom/pkg/services"
)

// BridgeHealth reports the transport bridge's liveness to the health
// endpoint. Implemented by bridge.Bridge; nil means no bridge configured.
type BridgeHealth interface {
	Healthy() bool
}

// HubHealth reports the MCP hub's client count. Implemented by mcp.Hub.
type HubHealth interface {
	Clients() int
}

// KernelFactory builds a phase kernel for one run request. The flag
// selects deterministic mode: replayable run IDs and counter timestamps.
type KernelFactory func(deterministic bool) *phase.Kernel

// Server is the HTTP API server.
type Server struct {
	cfg         *config.ServerConfig
	dbClient    *database.Client
	coordinator *memory.Coordinator
	planner     *planner.Planner
	newKernel   KernelFactory
	runs        *services.RunService
	hub         HubHealth
	bridge      BridgeHealth
	connManager *ConnectionManager
	logger      *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. dbClient, runs, hub, and bridge may be
// nil; the corresponding endpoints degrade gracefully.
func NewServer(cfg *config.ServerConfig, coordinator *memory.Coordinator, pl *planner.Planner, newKernel KernelFactory) *Server {
	s := &Server{
		cfg:         cfg,
		coordinator: coordinator,
		planner:     pl,
		newKernel:   newKernel,
		logger:      slog.Default(),
	}
	s.connManager = NewConnectionManager(coordinator, 10*time.Second)
	return s
}

// SetDatabase wires the database client for health checks.
func (s *Server) SetDatabase(db *database.Client) { s.dbClient = db }

// SetRunService wires PRP run persistence.
func (s *Server) SetRunService(runs *services.RunService) { s.runs = runs }

// SetHub wires the MCP hub health source.
func (s *Server) SetHub(hub HubHealth) { s.hub = hub }

// SetBridge wires the transport bridge health source.
func (s *Server) SetBridge(bridge BridgeHealth) { s.bridge = bridge }

// ConnManager returns the WebSocket connection manager so the streaming
// manager can be subscribed to it at wiring time.
func (s *Server) ConnManager() *ConnectionManager { return s.connManager }

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/ws", s.wsHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/goals", s.createGoalHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/events", s.getSessionEventsHandler)
		v1.POST("/runs", s.createRunHandler)
		v1.GET("/runs", s.listRunsHandler)
		v1.GET("/runs/:id", s.getRunHandler)
	}

	return router
}

// Start runs the HTTP server on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
