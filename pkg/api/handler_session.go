package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loom-agents/loom/pkg/memory"
)

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")

	state, err := s.coordinator.State(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, memory.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, &SessionResponse{
		SessionID: sessionID,
		State:     state,
	})
}

// getSessionEventsHandler handles GET /api/v1/sessions/:id/events, returning
// the session's append-only event log in emission order.
func (s *Server) getSessionEventsHandler(c *gin.Context) {
	sessionID := c.Param("id")

	events, err := s.coordinator.Events(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"events":     events,
	})
}
