package mcp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMCPClients indicates the hub has no configured clients.
	ErrNoMCPClients = errors.New("no MCP clients configured")
)

// ClientFailure records one failed client attempt during failover.
type ClientFailure struct {
	Client string
	Err    error
}

// AllClientsFailedError aggregates the per-client causes after every
// configured client failed. Causes preserve configuration order.
type AllClientsFailedError struct {
	Causes []ClientFailure
}

// Error returns a summary listing each client and its cause.
func (e *AllClientsFailedError) Error() string {
	parts := make([]string, 0, len(e.Causes))
	for _, c := range e.Causes {
		parts = append(parts, fmt.Sprintf("%s: %v", c.Client, c.Err))
	}
	return fmt.Sprintf("all %d MCP clients failed: [%s]",
		len(e.Causes), strings.Join(parts, "; "))
}

// ClientNames returns the failed client names in attempt order.
func (e *AllClientsFailedError) ClientNames() []string {
	names := make([]string, 0, len(e.Causes))
	for _, c := range e.Causes {
		names = append(names, c.Client)
	}
	return names
}

// HTTPStatusError indicates a non-2xx response from a streamable HTTP
// transport.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("http status %d", e.StatusCode)
}

// ExitError indicates a stdio child process exited non-zero. The message
// carries the child's stderr output.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d: %s",
		e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
}
