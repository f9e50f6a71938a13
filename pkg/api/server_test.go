package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/approval"
	"github.com/loom-agents/loom/pkg/config"
	"github.com/loom-agents/loom/pkg/memory"
	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/phase"
	"github.com/loom-agents/loom/pkg/planner"
	"github.com/loom-agents/loom/pkg/workers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeHub struct{ clients int }

func (h *fakeHub) Clients() int { return h.clients }

type fakeBridge struct{ healthy bool }

func (b *fakeBridge) Healthy() bool { return b.healthy }

// newTestServer wires a server over an in-memory store with one worker
// that echoes its capability.
func newTestServer(t *testing.T) (*Server, *memory.Coordinator) {
	t.Helper()

	registry := workers.NewRegistry()
	require.NoError(t, registry.Register(workers.Definition{
		Name:         "drafter",
		Capabilities: []string{"draft"},
		Handler: func(_ context.Context, in workers.Input, _ *workers.RunContext) (any, error) {
			return map[string]any{"done": in.Capability}, nil
		},
	}))

	coordinator := memory.NewCoordinator(memory.NewMemStore(), nil, nil)
	gate := approval.NewGate(false, nil)
	runner := planner.NewRunner(registry, coordinator, gate, nil, nil)
	pl := planner.New(registry, coordinator, runner, nil)

	factory := func(deterministic bool) *phase.Kernel {
		return phase.NewKernel(phase.Options{Deterministic: deterministic})
	}

	cfg := &config.ServerConfig{ListenAddr: ":0"}
	return NewServer(cfg, coordinator, pl, factory), coordinator
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthDefaultsHealthy(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Router(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestHealthDegradedWithoutMCPClients(t *testing.T) {
	s, _ := newTestServer(t)
	s.SetHub(&fakeHub{clients: 0})
	s.SetBridge(&fakeBridge{healthy: true})

	rec := doJSON(t, s.Router(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusDegraded, resp.Status)
	assert.Equal(t, healthStatusDegraded, resp.Checks["mcp_hub"].Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["bridge"].Status)
}

func TestCreateGoalAccepted(t *testing.T) {
	s, coordinator := newTestServer(t)
	router := s.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/goals", CreateGoalRequest{
		SessionID:            "sess-goal",
		Objective:            "draft the launch note",
		RequiredCapabilities: []string{"draft"},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp GoalAccepted
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sess-goal", resp.SessionID)
	assert.Equal(t, 1, resp.Steps)

	// The detached execution completes the single step.
	require.Eventually(t, func() bool {
		state, err := coordinator.State(context.Background(), "sess-goal")
		if err != nil {
			return false
		}
		step := state.FindStep("draft")
		return step != nil && step.Status == models.StepStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCreateGoalGeneratesSessionID(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/api/v1/goals", CreateGoalRequest{
		Objective:            "draft something",
		RequiredCapabilities: []string{"draft"},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp GoalAccepted
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
}

func TestCreateGoalUnknownCapability(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/api/v1/goals", CreateGoalRequest{
		Objective:            "do the impossible",
		RequiredCapabilities: []string{"levitate"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGoalMissingObjective(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/api/v1/goals", map[string]any{
		"required_capabilities": []string{"draft"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodGet, "/api/v1/sessions/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionEvents(t *testing.T) {
	s, coordinator := newTestServer(t)
	router := s.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/goals", CreateGoalRequest{
		SessionID:            "sess-ev",
		Objective:            "draft it",
		RequiredCapabilities: []string{"draft"},
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		events, err := coordinator.Events(context.Background(), "sess-ev")
		return err == nil && len(events) >= 2
	}, 2*time.Second, 10*time.Millisecond)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/sess-ev/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Events []models.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Events)
	assert.Equal(t, models.EventTypePlanCreated, resp.Events[0].Type)
}

func TestCreateRunCompletes(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/api/v1/runs", CreateRunRequest{
		Blueprint:     `{"service":"checkout","goal":"capture rework"}`,
		Deterministic: true,
		Artifacts: phase.Artifacts{
			Tests: phase.TestReport{
				Files:    []string{"capture_test.go"},
				Coverage: 91.0,
				Output:   []string{"ok"},
			},
			Commits: []string{"red: capture", "green: capture"},
			Budgets: phase.BudgetScores{Accessibility: 95, Performance: 90, Security: 85},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.PhaseCompleted, resp.Run.Phase)
	require.NotNil(t, resp.Run.Cerebrum)
	assert.Equal(t, models.DecisionPromote, resp.Run.Cerebrum.Decision)
	assert.NotEmpty(t, resp.History)
}

func TestCreateRunEmptyBlueprint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodPost, "/api/v1/runs", CreateRunRequest{
		Blueprint: "   ",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRunWithoutArchive(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s.Router(), http.MethodGet, "/api/v1/runs/prp-x", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
