package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/bridge"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))
	return dir
}

const validYAML = `
workers:
  - name: drafter
    description: writes first drafts
    capabilities: [draft]
    handler: builtin.draft
  - name: reviewer
    capabilities: [review, critique]
    handler: builtin.review
memory:
  session: memory
approvals:
  require: true
  gate: manual
mcp:
  stdio:
    - name: local-tools
      command: ./bin/tool-server
      args: ["--verbose"]
  streamableHttp:
    - name: hosted
      url: https://tools.example.com/rpc
      headers:
        Authorization: "Bearer {{.LOOM_TEST_TOKEN}}"
tools:
  budget: 100000
  local:
    search: builtin.search
streaming:
  buffer_size: 4
  flush_interval_ms: 100
`

func TestInitializeValidConfig(t *testing.T) {
	t.Setenv("LOOM_TEST_TOKEN", "sekret-123")
	dir := writeConfig(t, validYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, cfg.Workers, 2)
	assert.Equal(t, "drafter", cfg.Workers[0].Name)
	assert.Equal(t, []string{"review", "critique"}, cfg.Workers[1].Capabilities)

	require.True(t, cfg.Approvals.Require)
	assert.Equal(t, "manual", cfg.Approvals.Gate)

	require.Len(t, cfg.MCP.Stdio, 1)
	assert.Equal(t, "./bin/tool-server", cfg.MCP.Stdio[0].Command)
	require.Len(t, cfg.MCP.StreamableHTTP, 1)
	assert.Equal(t, "Bearer sekret-123", cfg.MCP.StreamableHTTP[0].Headers["Authorization"])

	assert.Equal(t, 100000, cfg.Tools.Budget)
	assert.Equal(t, 4, cfg.Streaming.BufferSize)
	assert.Equal(t, 100*time.Millisecond, cfg.Streaming.FlushInterval())

	// Unset sections fall back to defaults.
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
}

func TestInitializeDefaults(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: solo
    capabilities: [everything]
    handler: builtin.solo
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, SessionAdapterMemory, cfg.Memory.Session)
	assert.Equal(t, 1, cfg.Streaming.BufferSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Streaming.FlushInterval())
	assert.Zero(t, cfg.Tools.Budget)
	assert.Nil(t, cfg.Bridge)
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "workers: [unclosed")
	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestValidateNoWorkers(t *testing.T) {
	dir := writeConfig(t, `
memory:
  session: memory
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "at least one worker")
}

func TestValidateDuplicateWorkerName(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: twin
    capabilities: [a]
    handler: h
  - name: twin
    capabilities: [b]
    handler: h
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate worker name")
}

func TestValidateWorkerMissingHandler(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: broken
    capabilities: [a]
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidatePlaintextMCPURL(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: solo
    capabilities: [a]
    handler: h
mcp:
  streamableHttp:
    - name: insecure
      url: http://tools.example.com/rpc
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plaintext")
}

func TestValidateUnknownSessionAdapter(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: solo
    capabilities: [a]
    handler: h
memory:
  session: redis
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateUnknownRAGAdapter(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: solo
    capabilities: [a]
    handler: h
memory:
  session: memory
  rag: pinecone
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "rag")
}

func TestValidateBridge(t *testing.T) {
	dir := writeConfig(t, `
workers:
  - name: solo
    capabilities: [a]
    handler: h
bridge:
  source:
    type: stdio
    command: ./bin/mcp-server
  target:
    type: stdio
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, bridge.ErrSameTransport)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("LOOM_EXPAND_A", "alpha")

	t.Run("expands known variables", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.LOOM_EXPAND_A}}"))
		assert.Equal(t, "value: alpha", string(out))
	})

	t.Run("missing variables become empty", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.LOOM_EXPAND_MISSING}}x"))
		assert.Equal(t, "value: x", string(out))
	})

	t.Run("dollar signs pass through", func(t *testing.T) {
		out := ExpandEnv([]byte(`pattern: "^secret.*$"`))
		assert.Equal(t, `pattern: "^secret.*$"`, string(out))
	})

	t.Run("malformed template passes through", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.unclosed"))
		assert.Equal(t, "value: {{.unclosed", string(out))
	})
}
