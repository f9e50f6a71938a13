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
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = json.RawMessage(`{"type":"object"}`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSession records forwarded calls and returns scripted results. The
// target side dispatches concurrently, so recording is mutex-guarded.
type fakeSession struct {
	mu         sync.Mutex
	calls      []string
	toolParams *mcpsdk.CallToolParams
	err        error

	// callToolGate, when set, blocks CallTool until it is closed.
	callToolGate chan struct{}
}

func (f *fakeSession) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method)
}

func (f *fakeSession) ListTools(_ context.Context, _ *mcpsdk.ListToolsParams) (*mcpsdk.ListToolsResult, error) {
	f.record(methodToolsList)
	if f.err != nil {
		return nil, f.err
	}
	return &mcpsdk.ListToolsResult{Tools: []*mcpsdk.Tool{
		{Name: "search", Description: "searches", InputSchema: testSchema},
	}}, nil
}

func (f *fakeSession) CallTool(_ context.Context, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	f.record(methodToolsCall)
	f.mu.Lock()
	f.toolParams = params
	f.mu.Unlock()
	if f.callToolGate != nil {
		<-f.callToolGate
	}
	if f.err != nil {
		return nil, f.err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "found it"}},
	}, nil
}

func (f *fakeSession) ListResources(_ context.Context, _ *mcpsdk.ListResourcesParams) (*mcpsdk.ListResourcesResult, error) {
	f.record(methodResourcesList)
	return &mcpsdk.ListResourcesResult{}, f.err
}

func (f *fakeSession) ReadResource(_ context.Context, _ *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
	f.record(methodResourcesRead)
	return &mcpsdk.ReadResourceResult{}, f.err
}

func (f *fakeSession) ListPrompts(_ context.Context, _ *mcpsdk.ListPromptsParams) (*mcpsdk.ListPromptsResult, error) {
	f.record(methodPromptsList)
	return &mcpsdk.ListPromptsResult{}, f.err
}

func (f *fakeSession) GetPrompt(_ context.Context, _ *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
	f.record(methodPromptsGet)
	return &mcpsdk.GetPromptResult{}, f.err
}

func testConfig() Config {
	return Config{
		Source:  EndpointConfig{Type: TransportStreamableHTTP, URL: "https://mcp.example.com/rpc"},
		Target:  EndpointConfig{Type: TransportStdio},
		Options: Options{TimeoutMS: MinTimeoutMS, Retries: 1},
	}
}

// newTestBridge wires a bridge onto pipes with a fake source session.
func newTestBridge(t *testing.T, session sourceSession) (*Bridge, *io.PipeWriter, *bufio.Reader) {
	t.Helper()
	b, err := NewBridge(testConfig())
	require.NoError(t, err)

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	b.stdioIn = inR
	b.stdioOut = outW
	b.dial = func(context.Context) (sourceSession, func() error, error) {
		return session, func() error { return nil }, nil
	}
	t.Cleanup(func() { _ = b.Stop() })
	return b, inW, bufio.NewReader(outR)
}

func writeRequest(t *testing.T, in *io.PipeWriter, req rpcRequest) {
	t.Helper()
	payload, err := json.Marshal(req)
	require.NoError(t, err)
	payload = append(payload, '\n')
	_, err = in.Write(payload)
	require.NoError(t, err)
}

func readResponse(t *testing.T, out *bufio.Reader) rpcResponse {
	t.Helper()
	line, err := out.ReadBytes('\n')
	require.NoError(t, err)
	var resp rpcResponse
	require.NoError(t, json.Unmarshal(line, &resp))
	return resp
}

func roundTrip(t *testing.T, in *io.PipeWriter, out *bufio.Reader, req rpcRequest) rpcResponse {
	t.Helper()
	writeRequest(t, in, req)
	return readResponse(t, out)
}

func TestConfigValidation(t *testing.T) {
	t.Run("same transport rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Target = EndpointConfig{Type: TransportStreamableHTTP, ListenAddr: ":0"}
		assert.ErrorIs(t, cfg.Validate(), ErrSameTransport)
	})

	t.Run("plaintext source rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Source.URL = "http://mcp.example.com/rpc"
		assert.ErrorIs(t, cfg.Validate(), ErrPlaintextSource)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := testConfig()
		cfg.Options = Options{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultTimeoutMS, cfg.Options.TimeoutMS)
		assert.Equal(t, DefaultRetries, cfg.Options.Retries)
	})

	t.Run("timeout below minimum rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Options.TimeoutMS = 500
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative retries rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Options.Retries = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("stdio source requires command", func(t *testing.T) {
		cfg := Config{
			Source: EndpointConfig{Type: TransportStdio},
			Target: EndpointConfig{Type: TransportStreamableHTTP, ListenAddr: ":0"},
		}
		assert.Error(t, cfg.Validate())
	})
}

func TestStartSecondCallFails(t *testing.T) {
	b, _, _ := newTestBridge(t, &fakeSession{})

	require.NoError(t, b.Start(context.Background()))
	assert.ErrorIs(t, b.Start(context.Background()), ErrAlreadyRunning)
}

func TestStopIdempotent(t *testing.T) {
	b, _, _ := newTestBridge(t, &fakeSession{})

	require.NoError(t, b.Start(context.Background()))
	require.NoError(t, b.Stop())
	require.NoError(t, b.Stop())

	health := b.Health()
	assert.False(t, health.Running)
	assert.False(t, health.Healthy())
}

func TestHealth(t *testing.T) {
	b, _, _ := newTestBridge(t, &fakeSession{})

	before := b.Health()
	assert.False(t, before.Running)
	assert.Equal(t, TransportStreamableHTTP, before.SourceType)
	assert.Equal(t, TransportStdio, before.TargetType)

	require.NoError(t, b.Start(context.Background()))
	after := b.Health()
	assert.True(t, after.Running)
	assert.True(t, after.ClientConnected)
	assert.True(t, after.Healthy())
}

func TestProxyForwardsToolsList(t *testing.T) {
	session := &fakeSession{}
	b, in, out := newTestBridge(t, session)
	require.NoError(t, b.Start(context.Background()))

	resp := roundTrip(t, in, out, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`1`),
		Method:  methodToolsList,
	})

	require.Nil(t, resp.Error)
	assert.Equal(t, []string{methodToolsList}, session.calls)

	result, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	assert.Contains(t, string(result), `"search"`)
}

func TestProxyForwardsParamsVerbatim(t *testing.T) {
	session := &fakeSession{}
	b, in, out := newTestBridge(t, session)
	require.NoError(t, b.Start(context.Background()))

	resp := roundTrip(t, in, out, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`2`),
		Method:  methodToolsCall,
		Params:  json.RawMessage(`{"name":"search","arguments":{"query":"logs","limit":3}}`),
	})

	require.Nil(t, resp.Error)
	require.NotNil(t, session.toolParams)
	assert.Equal(t, "search", session.toolParams.Name)
	args, ok := session.toolParams.Arguments.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "logs", args["query"])
}

func TestStdioSlowCallDoesNotBlockOthers(t *testing.T) {
	session := &fakeSession{callToolGate: make(chan struct{})}
	b, in, out := newTestBridge(t, session)
	require.NoError(t, b.Start(context.Background()))

	// The first request parks inside the source session; the one behind it
	// must still complete and answer first.
	writeRequest(t, in, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`1`),
		Method:  methodToolsCall,
		Params:  json.RawMessage(`{"name":"search"}`),
	})
	writeRequest(t, in, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`2`),
		Method:  methodToolsList,
	})

	first := readResponse(t, out)
	require.Nil(t, first.Error)
	assert.Equal(t, "2", string(first.ID))

	close(session.callToolGate)
	second := readResponse(t, out)
	require.Nil(t, second.Error)
	assert.Equal(t, "1", string(second.ID))
}

func TestInitializeHandshake(t *testing.T) {
	b, in, out := newTestBridge(t, &fakeSession{})
	require.NoError(t, b.Start(context.Background()))

	resp := roundTrip(t, in, out, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`1`),
		Method:  methodInitialize,
	})
	require.Nil(t, resp.Error)

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var result struct {
		ProtocolVersion string                    `json:"protocolVersion"`
		Capabilities    map[string]map[string]any `json:"capabilities"`
		ServerInfo      struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, protocolVersion, result.ProtocolVersion)
	for _, capability := range []string{"tools", "resources", "prompts", "logging"} {
		assert.Contains(t, result.Capabilities, capability)
	}
	assert.Equal(t, "loom", result.ServerInfo.Name)
}

func TestInitializedNotificationGetsNoResponse(t *testing.T) {
	b, in, out := newTestBridge(t, &fakeSession{})
	require.NoError(t, b.Start(context.Background()))

	writeRequest(t, in, rpcRequest{
		JSONRPC: jsonrpcVersion,
		Method:  "notifications/initialized",
	})

	// The next frame on the wire answers the follow-up request, not the
	// notification.
	resp := roundTrip(t, in, out, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`7`),
		Method:  methodToolsList,
	})
	require.Nil(t, resp.Error)
	assert.Equal(t, "7", string(resp.ID))
}

func TestProxyUnknownMethod(t *testing.T) {
	b, in, out := newTestBridge(t, &fakeSession{})
	require.NoError(t, b.Start(context.Background()))

	resp := roundTrip(t, in, out, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`3`),
		Method:  "tools/delete",
	})

	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)
}

func TestProxySourceErrorSurfaces(t *testing.T) {
	session := &fakeSession{err: errors.New("upstream gone")}
	b, in, out := newTestBridge(t, session)
	require.NoError(t, b.Start(context.Background()))

	resp := roundTrip(t, in, out, rpcRequest{
		JSONRPC: jsonrpcVersion,
		ID:      json.RawMessage(`4`),
		Method:  methodResourcesList,
	})

	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInternalError, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "upstream gone")
}

func TestDialRetries(t *testing.T) {
	b, err := NewBridge(Config{
		Source:  EndpointConfig{Type: TransportStreamableHTTP, URL: "https://mcp.example.com/rpc"},
		Target:  EndpointConfig{Type: TransportStdio},
		Options: Options{TimeoutMS: MinTimeoutMS, Retries: 3},
	})
	require.NoError(t, err)

	inR, _ := io.Pipe()
	_, outW := io.Pipe()
	b.stdioIn = inR
	b.stdioOut = outW

	var attempts int
	b.dial = func(context.Context) (sourceSession, func() error, error) {
		attempts++
		if attempts < 3 {
			return nil, nil, errors.New("connection refused")
		}
		return &fakeSession{}, func() error { return nil }, nil
	}
	t.Cleanup(func() { _ = b.Stop() })

	require.NoError(t, b.Start(context.Background()))
	assert.Equal(t, 3, attempts)
}

func TestDialExhaustsRetries(t *testing.T) {
	b, err := NewBridge(testConfig())
	require.NoError(t, err)

	var attempts int
	b.dial = func(context.Context) (sourceSession, func() error, error) {
		attempts++
		return nil, nil, errors.New("connection refused")
	}

	startErr := b.Start(context.Background())
	require.Error(t, startErr)
	assert.Contains(t, startErr.Error(), "connection refused")
	assert.Equal(t, 1, attempts)
	assert.False(t, b.Health().Running)
}

func TestStartFailsWhenTargetPortOccupied(t *testing.T) {
	blocker, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer blocker.Close()

	b, err := NewBridge(Config{
		Source:  EndpointConfig{Type: TransportStdio, Command: "./bin/mcp-server"},
		Target:  EndpointConfig{Type: TransportStreamableHTTP, ListenAddr: blocker.Addr().String()},
		Options: Options{TimeoutMS: MinTimeoutMS, Retries: 2},
	})
	require.NoError(t, err)

	var sessionClosed bool
	b.dial = func(context.Context) (sourceSession, func() error, error) {
		return &fakeSession{}, func() error { sessionClosed = true; return nil }, nil
	}

	startErr := b.Start(context.Background())
	require.Error(t, startErr)
	assert.Contains(t, startErr.Error(), "bind target")

	// A failed start tears everything down again.
	assert.False(t, b.Health().Running)
	assert.False(t, b.Healthy())
	assert.True(t, sessionClosed)
}

func TestStartServesHTTPTarget(t *testing.T) {
	session := &fakeSession{}
	b, err := NewBridge(Config{
		Source:  EndpointConfig{Type: TransportStdio, Command: "./bin/mcp-server"},
		Target:  EndpointConfig{Type: TransportStreamableHTTP, ListenAddr: "127.0.0.1:0"},
		Options: Options{TimeoutMS: MinTimeoutMS, Retries: 1},
	})
	require.NoError(t, err)
	b.dial = func(context.Context) (sourceSession, func() error, error) {
		return session, func() error { return nil }, nil
	}
	t.Cleanup(func() { _ = b.Stop() })

	require.NoError(t, b.Start(context.Background()))
	addr := b.target.(*httpServer).ln.Addr().String()

	body := strings.NewReader(`{"jsonrpc":"2.0","id":5,"method":"tools/list"}`)
	resp, err := http.Post("http://"+addr, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rpcResp rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rpcResp))
	assert.Nil(t, rpcResp.Error)
	assert.Equal(t, []string{methodToolsList}, session.calls)
}

func TestHTTPTargetHandler(t *testing.T) {
	session := &fakeSession{}
	p := newProxy(session, false, discardLogger())
	srv := newHTTPServer(":0", p, discardLogger())

	ts := httptest.NewServer(http.HandlerFunc(srv.handle))
	defer ts.Close()

	body := strings.NewReader(`{"jsonrpc":"2.0","id":9,"method":"prompts/list"}`)
	resp, err := http.Post(ts.URL, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rpcResp rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rpcResp))
	assert.Nil(t, rpcResp.Error)
	assert.Equal(t, []string{methodPromptsList}, session.calls)
}

func TestHTTPTargetAcceptsNotification(t *testing.T) {
	p := newProxy(&fakeSession{}, false, discardLogger())
	srv := newHTTPServer(":0", p, discardLogger())

	ts := httptest.NewServer(http.HandlerFunc(srv.handle))
	defer ts.Close()

	body := strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	resp, err := http.Post(ts.URL, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestHTTPTargetRejectsGet(t *testing.T) {
	p := newProxy(&fakeSession{}, false, discardLogger())
	srv := newHTTPServer(":0", p, discardLogger())

	ts := httptest.NewServer(http.HandlerFunc(srv.handle))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
