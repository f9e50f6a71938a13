package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/loom-agents/loom/pkg/models"
)

// termGracePeriod is how long a cancelled child process gets between
// SIGTERM and SIGKILL.
const termGracePeriod = 5 * time.Second

// StdioClient invokes a tool by spawning a child process per call and
// exchanging one line-delimited JSON message over stdio: the request object
// is written to stdin (then stdin is closed), and stdout is read until the
// child exits.
type StdioClient struct {
	name    string
	command string
	args    []string
	dir     string
}

// NewStdioClient creates a stdio transport client.
func NewStdioClient(name, command string, args []string, dir string) *StdioClient {
	return &StdioClient{name: name, command: command, args: args, dir: dir}
}

// Name returns the configured client name.
func (c *StdioClient) Name() string { return c.name }

// Transport returns the transport kind for result metadata.
func (c *StdioClient) Transport() string { return TransportStdio }

// stdioRequest is the single JSON line written to the child's stdin.
type stdioRequest struct {
	Tool  string          `json:"tool"`
	Input any             `json:"input"`
	Kind  models.ToolKind `json:"kind"`
}

// Invoke runs one child process for the request. A non-zero exit code fails
// with the child's stderr as the message. On context cancellation the child
// receives SIGTERM, then SIGKILL after the grace period.
func (c *StdioClient) Invoke(ctx context.Context, req models.ToolRequest) (*models.ToolResult, error) {
	line, err := json.Marshal(stdioRequest{Tool: req.Tool, Input: req.Input, Kind: req.Kind})
	if err != nil {
		return nil, fmt.Errorf("marshal stdio request: %w", err)
	}
	line = append(line, '\n')

	cmd := exec.CommandContext(ctx, c.command, c.args...)
	cmd.Dir = c.dir
	cmd.Stdin = bytes.NewReader(line)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Graceful termination: SIGTERM on cancel, SIGKILL after the grace period.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = termGracePeriod

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, &ExitError{
				Command:  c.command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return nil, fmt.Errorf("spawn %q: %w", c.command, err)
	}

	result, tokens, err := decodeResult(bytes.TrimSpace(stdout.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("client %q: parse stdout: %w", c.name, err)
	}

	return &models.ToolResult{
		Tool:       req.Tool,
		Result:     result,
		TokensUsed: tokens,
		Metadata:   resultMetadata(TransportStdio, c.name),
	}, nil
}
