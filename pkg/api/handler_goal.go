package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/planner"
)

// CreateGoalRequest is the POST /api/v1/goals body.
type CreateGoalRequest struct {
	SessionID            string                  `json:"session_id"`
	Objective            string                  `json:"objective" binding:"required"`
	RequiredCapabilities []string                `json:"required_capabilities" binding:"required"`
	Input                map[string]any          `json:"input"`
	Strategy             models.PlanningStrategy `json:"strategy"`
}

// createGoalHandler handles POST /api/v1/goals. The plan is prepared
// synchronously so capability binding errors surface as 400s; execution
// runs detached and streams progress over the WebSocket channel.
func (s *Server) createGoalHandler(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	goal := models.Goal{
		SessionID:            sessionID,
		Objective:            req.Objective,
		RequiredCapabilities: req.RequiredCapabilities,
		Input:                req.Input,
		Strategy:             req.Strategy,
	}

	plan, err := s.planner.Prepare(c.Request.Context(), goal)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrEmptyObjective),
			errors.Is(err, planner.ErrNoCapabilities),
			errors.Is(err, planner.ErrCapabilityUnassigned):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// Detached from the request context: the run outlives the HTTP call.
	go func() {
		if _, err := s.planner.Dispatch(context.Background(), plan); err != nil {
			s.logger.Error("Goal execution failed",
				"session_id", sessionID, "error", err)
		}
	}()

	c.JSON(http.StatusAccepted, &GoalAccepted{
		SessionID: sessionID,
		Steps:     len(plan.Steps),
	})
}
