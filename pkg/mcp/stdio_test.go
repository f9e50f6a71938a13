package mcp

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

// requireShell skips tests that spawn /bin/sh on platforms without it.
func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stdio transport tests require a POSIX shell")
	}
}

func TestStdioClientInvoke(t *testing.T) {
	requireShell(t)

	// Echo a fixed envelope regardless of input.
	client := NewStdioClient("echo", "sh",
		[]string{"-c", `cat >/dev/null; printf '{"result": "done", "tokensUsed": 9}'`}, "")

	result, err := client.Invoke(context.Background(), models.ToolRequest{
		Tool: "fmt", Input: map[string]any{"a": 1}, Kind: models.ToolKindCodemod,
	})
	require.NoError(t, err)
	assert.Equal(t, "done", result.Result)
	assert.Equal(t, 9, result.TokensUsed)
	assert.Equal(t, TransportStdio, result.Metadata["transport"])
	assert.Equal(t, "echo", result.Metadata["client"])
}

func TestStdioClientReceivesRequestLine(t *testing.T) {
	requireShell(t)

	// The child echoes its stdin back as the bare payload, proving the
	// request line reached it intact.
	client := NewStdioClient("mirror", "sh", []string{"-c", "cat"}, "")

	result, err := client.Invoke(context.Background(), models.ToolRequest{
		Tool: "probe", Input: "x", Kind: models.ToolKindSearch,
	})
	require.NoError(t, err)

	payload, ok := result.Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "probe", payload["tool"])
	assert.Equal(t, "x", payload["input"])
	assert.Equal(t, "search", payload["kind"])
}

func TestStdioClientNonZeroExit(t *testing.T) {
	requireShell(t)

	client := NewStdioClient("broken", "sh",
		[]string{"-c", `echo "tool exploded" >&2; exit 3`}, "")

	_, err := client.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode)
	assert.Contains(t, exitErr.Stderr, "tool exploded")
}

func TestStdioClientInvalidOutput(t *testing.T) {
	requireShell(t)

	client := NewStdioClient("garbage", "sh", []string{"-c", `echo "not json"`}, "")
	_, err := client.Invoke(context.Background(), models.ToolRequest{Tool: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse stdout")
}

func TestStdioClientContextCancellation(t *testing.T) {
	requireShell(t)

	client := NewStdioClient("sleeper", "sh", []string{"-c", "sleep 30"}, "")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Invoke(ctx, models.ToolRequest{Tool: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// The child must be terminated promptly, not after its full sleep.
	assert.Less(t, time.Since(start), 10*time.Second)
}
