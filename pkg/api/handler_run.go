package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loom-agents/loom/pkg/models"
	"github.com/loom-agents/loom/pkg/phase"
	"github.com/loom-agents/loom/pkg/services"
)

// CreateRunRequest is the POST /api/v1/runs body.
type CreateRunRequest struct {
	Blueprint     string          `json:"blueprint" binding:"required"`
	Artifacts     phase.Artifacts `json:"artifacts"`
	Deterministic bool            `json:"deterministic"`
}

// createRunHandler handles POST /api/v1/runs. The kernel runs to a
// terminal phase synchronously; when persistence is wired the finished run
// is archived before the response is written.
func (s *Server) createRunHandler(c *gin.Context) {
	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kernel := s.newKernel(req.Deterministic)
	result, err := kernel.Run(c.Request.Context(), req.Blueprint, req.Artifacts)
	if err != nil {
		if errors.Is(err, phase.ErrBlueprintEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if s.runs != nil {
		if err := s.runs.SaveResult(c.Request.Context(), result, req.Deterministic); err != nil {
			s.logger.Error("Failed to archive run",
				"run_id", result.State.RunID, "error", err)
		}
	}

	c.JSON(http.StatusOK, &RunResponse{
		Run:     result.State,
		History: result.History,
	})
}

// getRunHandler handles GET /api/v1/runs/:id from the archive.
func (s *Server) getRunHandler(c *gin.Context) {
	if s.runs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run archive not available"})
		return
	}
	runID := c.Param("id")

	run, err := s.runs.GetRun(c.Request.Context(), runID)
	if err != nil {
		if errors.Is(err, services.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	evidence, err := s.runs.GetEvidence(c.Request.Context(), runID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	state := models.PRPState{
		RunID:     run.ID,
		Blueprint: run.Blueprint,
		Phase:     models.Phase(run.Phase),
		Evidence:  evidence,
	}
	if run.ValidationResults != nil {
		state.ValidationResults = decodeVerdicts(run.ValidationResults)
	}
	if run.Cerebrum != nil {
		state.Cerebrum = decodeDecision(run.Cerebrum)
	}
	state.Metadata = run.Metadata

	c.JSON(http.StatusOK, &RunResponse{Run: state})
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *gin.Context) {
	if s.runs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run archive not available"})
		return
	}

	runs, err := s.runs.ListRuns(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]gin.H, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, gin.H{
			"run_id":        run.ID,
			"phase":         run.Phase,
			"deterministic": run.Deterministic,
			"created_at":    run.CreatedAt,
			"completed_at":  run.CompletedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"runs": summaries})
}

// decodeVerdicts rebuilds typed verdicts from the stored JSONB document.
func decodeVerdicts(doc map[string]interface{}) map[models.Phase]models.Verdict {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	var out map[models.Phase]models.Verdict
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// decodeDecision rebuilds the typed cerebrum decision.
func decodeDecision(doc map[string]interface{}) *models.Decision {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	var out models.Decision
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}
