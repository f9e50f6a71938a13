package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loom-agents/loom/pkg/database"
	"github.com/loom-agents/loom/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only loom's own components (database, MCP hub, bridge) are reported;
// per-client MCP failures degrade rather than fail the check so that an
// unreachable external tool server never takes the whole process down.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.dbClient != nil {
		_, err := database.Health(reqCtx, s.dbClient.DB())
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.hub != nil {
		if s.hub.Clients() == 0 {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["mcp_hub"] = HealthCheck{Status: healthStatusDegraded, Message: "no MCP clients configured"}
		} else {
			checks["mcp_hub"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.bridge != nil {
		if !s.bridge.Healthy() {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["bridge"] = HealthCheck{Status: healthStatusDegraded, Message: "bridge not running"}
		} else {
			checks["bridge"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
