// Loom workflow kernel server — plans goals across capability-scoped
// workers, runs PRP phase workflows, and serves the ops API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loom-agents/loom/pkg/api"
	"github.com/loom-agents/loom/pkg/approval"
	"github.com/loom-agents/loom/pkg/bridge"
	"github.com/loom-agents/loom/pkg/config"
	"github.com/loom-agents/loom/pkg/database"
	"github.com/loom-agents/loom/pkg/mcp"
	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/phase"
	"github.com/loom-agents/loom/pkg/planner"
	"github.com/loom-agents/loom/pkg/services"
	"github.com/loom-agents/loom/pkg/streaming"
	"github.com/loom-agents/loom/pkg/tools"
	"github.com/loom-agents/loom/pkg/workers"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting loom", "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Session store: in-memory by default, PostgreSQL when configured
	var store memory.SessionStore = memory.NewMemStore()
	var dbClient *database.Client
	var runService *services.RunService

	if cfg.Memory != nil && cfg.Memory.Session == config.SessionAdapterPostgres {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}

		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		slog.Info("Connected to PostgreSQL database")

		store = memory.NewEntStore(dbClient.Client)
		runService = services.NewRunService(dbClient.Client)
	}

	// Optional RAG adapter behind the coordinator.
	var rag memory.RAGAdapter
	if cfg.Memory != nil && cfg.Memory.RAG == config.RAGAdapterDocs {
		docStore, err := memory.LoadDocStore(filepath.Join(*configDir, "documents.yaml"))
		if err != nil {
			slog.Error("Failed to load RAG document store", "error", err)
			os.Exit(1)
		}
		rag = docStore
		slog.Info("RAG document store loaded", "documents", docStore.Len())
	}

	coordinator := memory.NewCoordinator(store, rag, nil)

	// 3. Worker registry from configuration
	registry := workers.NewRegistry()
	for _, wc := range cfg.Workers {
		handler, ok := workerHandlers[wc.Handler]
		if !ok {
			slog.Error("Unknown worker handler binding",
				"worker", wc.Name, "handler", wc.Handler)
			os.Exit(1)
		}
		err := registry.Register(workers.Definition{
			Name:         wc.Name,
			Description:  wc.Description,
			Capabilities: wc.Capabilities,
			Handler:      handler,
		})
		if err != nil {
			slog.Error("Failed to register worker", "worker", wc.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Workers registered", "count", len(cfg.Workers))

	// 4. MCP hub and tool router
	var mcpClients []mcp.Client
	if cfg.MCP != nil {
		for _, sc := range cfg.MCP.Stdio {
			mcpClients = append(mcpClients, mcp.NewStdioClient(sc.Name, sc.Command, sc.Args, sc.Cwd))
		}
		for _, hc := range cfg.MCP.StreamableHTTP {
			mcpClients = append(mcpClients, mcp.NewHTTPClient(hc.Name, hc.URL, hc.Headers, nil))
		}
	}
	hub := mcp.NewHub(mcpClients)

	budget := 0
	if cfg.Tools != nil {
		budget = cfg.Tools.Budget
	}
	router := tools.NewRouter(hub, budget)
	if cfg.Tools != nil {
		for name, binding := range cfg.Tools.Local {
			handler, ok := localTools[binding]
			if !ok {
				slog.Error("Unknown local tool binding", "tool", name, "binding", binding)
				os.Exit(1)
			}
			if err := router.RegisterLocal(name, handler); err != nil {
				slog.Error("Failed to register local tool", "tool", name, "error", err)
				os.Exit(1)
			}
		}
	}
	slog.Info("Tool router initialized", "mcp_clients", hub.Clients(), "budget", budget)

	// 5. Approval gate
	gate := approval.NewGate(false, nil)
	if cfg.Approvals != nil && cfg.Approvals.Require {
		fn, ok := gateFuncs[cfg.Approvals.Gate]
		if !ok {
			slog.Error("Unknown approval gate binding", "gate", cfg.Approvals.Gate)
			os.Exit(1)
		}
		gate = approval.NewGate(true, fn)
	}

	// 6. Streaming manager
	streamOpts := streaming.Options{BufferSize: 1}
	if cfg.Streaming != nil {
		streamOpts = streaming.Options{
			BufferSize:    cfg.Streaming.BufferSize,
			FlushInterval: cfg.Streaming.FlushInterval(),
		}
	}
	stream := streaming.NewManager(streamOpts)

	// 7. Planner and runner
	runner := planner.NewRunner(registry, coordinator, gate, router, stream)
	pl := planner.New(registry, coordinator, runner, stream)

	// 8. Phase kernel factory for the runs API
	kernelFactory := func(deterministic bool) *phase.Kernel {
		return phase.NewKernel(phase.Options{
			Deterministic: deterministic,
			Sink:          stream,
		})
	}

	// 9. Transport bridge (optional)
	var br *bridge.Bridge
	if cfg.Bridge != nil {
		br, err = bridge.NewBridge(*cfg.Bridge)
		if err != nil {
			slog.Error("Invalid bridge configuration", "error", err)
			os.Exit(1)
		}
		if err := br.Start(ctx); err != nil {
			slog.Error("Failed to start bridge", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := br.Stop(); err != nil {
				slog.Error("Error stopping bridge", "error", err)
			}
		}()
		slog.Info("Bridge started",
			"source", cfg.Bridge.Source.Type, "target", cfg.Bridge.Target.Type)
	}

	// 10. HTTP server
	serverCfg := cfg.Server
	if serverCfg == nil {
		serverCfg = config.DefaultServerConfig()
	}
	httpServer := api.NewServer(serverCfg, coordinator, pl, kernelFactory)
	if dbClient != nil {
		httpServer.SetDatabase(dbClient)
	}
	if runService != nil {
		httpServer.SetRunService(runService)
	}
	httpServer.SetHub(hub)
	if br != nil {
		httpServer.SetBridge(br)
	}

	// Live events flow to WebSocket subscribers.
	stream.Subscribe("websocket", httpServer.ConnManager().Deliver)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", serverCfg.ListenAddr)
		if err := httpServer.Start(serverCfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Loom started successfully", "workers", len(cfg.Workers))

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: flush pending event batches, stop HTTP
	stream.Flush()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
