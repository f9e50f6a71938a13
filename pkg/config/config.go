// Package config loads and validates the loom.yaml configuration: workers,
// memory adapters, approval policy, MCP clients, local tools, streaming,
// and the optional transport bridge.
package config

import (
	"time"

	"github.com/loom-agents/loom/pkg/bridge"
)

// Config is the fully resolved application configuration.
type Config struct {
	configDir string

	Server    *ServerConfig    `yaml:"server"`
	Workers   []WorkerConfig   `yaml:"workers"`
	Memory    *MemoryConfig    `yaml:"memory"`
	Approvals *ApprovalConfig  `yaml:"approvals"`
	MCP       *MCPConfig       `yaml:"mcp"`
	Tools     *ToolsConfig     `yaml:"tools"`
	Streaming *StreamingConfig `yaml:"streaming"`
	Bridge    *bridge.Config   `yaml:"bridge"`
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig holds the ops API server settings.
type ServerConfig struct {
	ListenAddr       string   `yaml:"listen_addr"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// WorkerConfig declares one capability-scoped worker. Handler is a binding
// name resolved against the registered handler catalog at wiring time.
type WorkerConfig struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Capabilities []string `yaml:"capabilities"`
	Handler      string   `yaml:"handler"`
}

// Memory adapter bindings.
const (
	SessionAdapterMemory   = "memory"
	SessionAdapterPostgres = "postgres"

	// RAGAdapterDocs is the file-backed document store: documents.yaml in
	// the config directory.
	RAGAdapterDocs = "docs"
)

// MemoryConfig selects the session store and the optional RAG adapter.
type MemoryConfig struct {
	Session string `yaml:"session"`
	RAG     string `yaml:"rag,omitempty"`
}

// ApprovalConfig controls the approval gate. Gate is a function binding
// resolved at wiring time; empty with Require true means deny-all.
type ApprovalConfig struct {
	Require bool   `yaml:"require"`
	Gate    string `yaml:"gate,omitempty"`
}

// MCPConfig lists the hub's transport clients in failover order: all stdio
// clients first, then the streamable-HTTP ones.
type MCPConfig struct {
	Stdio          []StdioClientConfig `yaml:"stdio"`
	StreamableHTTP []HTTPClientConfig  `yaml:"streamableHttp"`
}

// StdioClientConfig describes a spawn-per-call stdio tool server.
type StdioClientConfig struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
	Cwd     string   `yaml:"cwd,omitempty"`
}

// HTTPClientConfig describes a streamable-HTTP tool endpoint. URL must be
// https.
type HTTPClientConfig struct {
	Name    string            `yaml:"name"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// ToolsConfig declares local tool handlers and the per-router token budget.
// Local maps tool name to a handler binding; zero Budget means unlimited.
type ToolsConfig struct {
	Budget int               `yaml:"budget"`
	Local  map[string]string `yaml:"local,omitempty"`
}

// StreamingConfig tunes the streaming manager's batching.
type StreamingConfig struct {
	BufferSize      int `yaml:"buffer_size"`
	FlushIntervalMS int `yaml:"flush_interval_ms"`
}

// FlushInterval returns the batch flush deadline as a duration.
func (s *StreamingConfig) FlushInterval() time.Duration {
	return time.Duration(s.FlushIntervalMS) * time.Millisecond
}

// Stats summarises the loaded configuration for startup logging.
type Stats struct {
	Workers    int
	StdioMCP   int
	HTTPMCP    int
	LocalTools int
	BridgeSet  bool
	RAGSet     bool
}

// Stats returns counts for startup logging.
func (c *Config) Stats() Stats {
	s := Stats{Workers: len(c.Workers)}
	if c.MCP != nil {
		s.StdioMCP = len(c.MCP.Stdio)
		s.HTTPMCP = len(c.MCP.StreamableHTTP)
	}
	if c.Tools != nil {
		s.LocalTools = len(c.Tools.Local)
	}
	s.BridgeSet = c.Bridge != nil
	s.RAGSet = c.Memory != nil && c.Memory.RAG != ""
	return s
}
