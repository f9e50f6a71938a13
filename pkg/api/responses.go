package api

import "github.com/loom-agents/loom/pkg/models"

// HealthCheck is the status of a single component check.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// GoalAccepted is the POST /api/v1/goals body: the goal is queued and the
// session ID is the handle for state, events, and the WebSocket stream.
type GoalAccepted struct {
	SessionID string `json:"session_id"`
	Steps     int    `json:"steps"`
}

// SessionResponse is the GET /api/v1/sessions/:id body.
type SessionResponse struct {
	SessionID string               `json:"session_id"`
	State     *models.SessionState `json:"state"`
}

// RunResponse is the body for run endpoints. History is included only for
// freshly executed runs (POST); persisted lookups return the final state.
type RunResponse struct {
	Run     models.PRPState   `json:"run"`
	History []models.PRPState `json:"history,omitempty"`
}
