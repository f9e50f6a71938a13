package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// targetServer is the exposed side of the bridge.
type targetServer interface {
	// listen binds the transport. Must succeed before serve is called.
	listen(ctx context.Context) error
	// serve blocks until the context is cancelled or the transport closes.
	serve(ctx context.Context) error
	close() error
}

// stdioServer speaks newline-delimited JSON-RPC on an in/out pair,
// normally the process's own stdin and stdout.
type stdioServer struct {
	in    io.Reader
	out   io.Writer
	proxy *proxy
	mu    sync.Mutex
}

func newStdioServer(in io.Reader, out io.Writer, p *proxy) *stdioServer {
	return &stdioServer{in: in, out: out, proxy: p}
}

func (s *stdioServer) listen(ctx context.Context) error {
	return nil
}

func (s *stdioServer) serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var inflight sync.WaitGroup
	defer inflight.Wait()

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		// The scanner reuses its buffer between lines; rpcRequest keeps raw
		// slices into it, so copy before handing off.
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.write(errorResponse(nil, codeParseError, err.Error()))
			continue
		}

		// Dispatch concurrently so a slow tools/call does not stall the
		// requests queued behind it. write serialises response frames.
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			if resp, ok := dispatch(ctx, s.proxy, req); ok {
				s.write(resp)
			}
		}()
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		return err
	}
	return nil
}

func (s *stdioServer) write(resp rpcResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	payload = append(payload, '\n')
	_, _ = s.out.Write(payload)
}

func (s *stdioServer) close() error {
	if closer, ok := s.in.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// httpServer accepts JSON-RPC requests as POST bodies.
type httpServer struct {
	addr   string
	proxy  *proxy
	logger *slog.Logger
	ln     net.Listener
	srv    *http.Server
}

func newHTTPServer(addr string, p *proxy, logger *slog.Logger) *httpServer {
	return &httpServer{addr: addr, proxy: p, logger: logger}
}

// listen binds the address so the caller sees a bad or occupied port as a
// synchronous error instead of a log line from the serve goroutine.
func (s *httpServer) listen(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	return nil
}

func (s *httpServer) serve(ctx context.Context) error {
	err := s.srv.Serve(s.ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *httpServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req rpcRequest
	resp, ok := func() (rpcResponse, bool) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return errorResponse(nil, codeInvalidRequest, err.Error()), true
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return errorResponse(nil, codeParseError, err.Error()), true
		}
		return dispatch(r.Context(), s.proxy, req)
	}()
	if !ok {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("Failed to write bridge response", "error", err)
	}
}

func (s *httpServer) close() error {
	if s.srv == nil {
		if s.ln != nil {
			return s.ln.Close()
		}
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// dispatch runs one request through the proxy and frames the outcome. The
// second return is false for notifications, which get no response frame.
func dispatch(ctx context.Context, p *proxy, req rpcRequest) (rpcResponse, bool) {
	if len(req.ID) == 0 {
		// Notification. The only one a client sends over the proxied
		// lifecycle is notifications/initialized, which needs no action.
		return rpcResponse{}, false
	}
	if req.Method == "" {
		return errorResponse(req.ID, codeInvalidRequest, "missing method"), true
	}
	result, err := p.handle(ctx, req.Method, req.Params)
	if err != nil {
		return errorResponse(req.ID, rpcCodeFor(err), err.Error()), true
	}
	return successResponse(req.ID, result), true
}
