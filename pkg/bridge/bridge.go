// Package bridge exposes an MCP endpoint on one transport while proxying
// every request to a server on another transport. The target side speaks
// JSON-RPC 2.0 over stdio or streamable HTTP; the source side is a real
// MCP client session.
package bridge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loom-agents/loom/pkg/version"
)

// Health is the bridge's health snapshot.
type Health struct {
	Running         bool   `json:"running"`
	SourceType      string `json:"source_type"`
	TargetType      string `json:"target_type"`
	ClientConnected bool   `json:"client_connected"`
}

// Healthy reports whether the bridge is fully operational.
func (h Health) Healthy() bool {
	return h.Running && h.ClientConnected
}

// Bridge proxies MCP traffic from its target transport to its source.
// Start may be called once per instance; Stop is idempotent.
type Bridge struct {
	cfg    Config
	logger *slog.Logger

	// dial connects the source session. Replaced in tests.
	dial func(ctx context.Context) (sourceSession, func() error, error)

	// stdio target pipes, overridable in tests.
	stdioIn  io.Reader
	stdioOut io.Writer

	mu           sync.Mutex
	running      bool
	closeSession func() error
	target       targetServer
	cancelServe  context.CancelFunc
	serveDone    chan struct{}
}

// NewBridge validates the configuration and builds a bridge.
func NewBridge(cfg Config) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Bridge{
		cfg:      cfg,
		logger:   slog.Default(),
		stdioIn:  os.Stdin,
		stdioOut: os.Stdout,
	}
	b.dial = b.connectSource
	return b, nil
}

// Start connects the source client and begins serving the target. A second
// Start on a running bridge fails with ErrAlreadyRunning. A failure on the
// way up tears down whatever was partially initialised.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrAlreadyRunning
	}

	session, closeSession, err := b.dialWithRetries(ctx)
	if err != nil {
		return fmt.Errorf("connect to source: %w", err)
	}
	b.closeSession = closeSession

	p := newProxy(session, b.cfg.Options.Logging, b.logger)
	target, err := b.buildTarget(p)
	if err != nil {
		b.cleanupLocked()
		return err
	}
	b.target = target

	serveCtx, cancel := context.WithCancel(context.Background())
	b.cancelServe = cancel

	if err := b.listenWithRetries(serveCtx, target); err != nil {
		b.cleanupLocked()
		return fmt.Errorf("bind target: %w", err)
	}

	b.serveDone = make(chan struct{})
	go func() {
		defer close(b.serveDone)
		if err := target.serve(serveCtx); err != nil && serveCtx.Err() == nil {
			b.logger.Error("Bridge target server stopped", "error", err)
		}
	}()

	b.running = true
	b.logger.Info("Bridge started",
		"source", b.cfg.Source.Type, "target", b.cfg.Target.Type)
	return nil
}

// Stop shuts the bridge down. Calling Stop on a stopped bridge is a no-op.
func (b *Bridge) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		return nil
	}
	b.cleanupLocked()
	b.running = false
	b.logger.Info("Bridge stopped")
	return nil
}

// Health reports the bridge's current state.
func (b *Bridge) Health() Health {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Health{
		Running:         b.running,
		SourceType:      b.cfg.Source.Type,
		TargetType:      b.cfg.Target.Type,
		ClientConnected: b.closeSession != nil,
	}
}

// Healthy reports whether the bridge is running with a live source session.
func (b *Bridge) Healthy() bool {
	return b.Health().Healthy()
}

// dialWithRetries attempts the source connection up to Options.Retries
// times, bounding each attempt with Options.Timeout.
func (b *Bridge) dialWithRetries(ctx context.Context) (sourceSession, func() error, error) {
	attempts := b.cfg.Options.Retries
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, b.cfg.Options.timeout())
		session, closeSession, err := b.dial(attemptCtx)
		cancel()
		if err == nil {
			return session, closeSession, nil
		}
		lastErr = err
		b.logger.Warn("Source connect attempt failed",
			"attempt", attempt, "attempts", attempts, "error", err)
	}
	return nil, nil, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// listenWithRetries binds the target transport, retrying up to
// Options.Retries times. An occupied port therefore fails Start instead of
// leaving a bridge that reports healthy but serves nothing.
func (b *Bridge) listenWithRetries(ctx context.Context, target targetServer) error {
	attempts := b.cfg.Options.Retries
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := target.listen(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		b.logger.Warn("Target bind attempt failed",
			"attempt", attempt, "attempts", attempts, "error", err)
	}
	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// connectSource builds the SDK transport for the configured source and
// opens a client session over it.
func (b *Bridge) connectSource(ctx context.Context) (sourceSession, func() error, error) {
	transport, err := b.sourceTransport()
	if err != nil {
		return nil, nil, err
	}

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, nil, err
	}
	return session, session.Close, nil
}

func (b *Bridge) sourceTransport() (mcpsdk.Transport, error) {
	src := b.cfg.Source
	switch src.Type {
	case TransportStdio:
		cmd := exec.Command(src.Command, src.Args...)
		env := os.Environ()
		for k, v := range src.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
		return &mcpsdk.CommandTransport{Command: cmd}, nil
	case TransportStreamableHTTP:
		transport := &mcpsdk.StreamableClientTransport{Endpoint: src.URL}
		if len(src.Headers) > 0 {
			transport.HTTPClient = &http.Client{
				Transport: &headerTransport{
					base:    http.DefaultTransport,
					headers: src.Headers,
				},
			}
		}
		return transport, nil
	default:
		return nil, fmt.Errorf("unsupported source transport %q", src.Type)
	}
}

func (b *Bridge) buildTarget(p *proxy) (targetServer, error) {
	switch b.cfg.Target.Type {
	case TransportStdio:
		return newStdioServer(b.stdioIn, b.stdioOut, p), nil
	case TransportStreamableHTTP:
		return newHTTPServer(b.cfg.Target.ListenAddr, p, b.logger), nil
	default:
		return nil, fmt.Errorf("unsupported target transport %q", b.cfg.Target.Type)
	}
}

// cleanupLocked tears down the client and server, swallowing and logging
// their errors. Caller holds b.mu.
func (b *Bridge) cleanupLocked() {
	if b.cancelServe != nil {
		b.cancelServe()
		b.cancelServe = nil
	}
	if b.target != nil {
		if err := b.target.close(); err != nil {
			b.logger.Warn("Failed to close bridge target", "error", err)
		}
		b.target = nil
	}
	if b.serveDone != nil {
		<-b.serveDone
		b.serveDone = nil
	}
	if b.closeSession != nil {
		if err := b.closeSession(); err != nil {
			b.logger.Warn("Failed to close source session", "error", err)
		}
		b.closeSession = nil
	}
}

// headerTransport injects static headers into every outbound request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}
