package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hireflow/scout/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is the result of probing one component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	ReadSource string                 `json:"read_source"`
	Checks     map[string]HealthCheck `json:"checks"`
}

// healthHandler reports liveness of the store backends. Only owned
// components are probed; external collaborators (messaging provider, LLM)
// are excluded so their outages never restart this process. A dead primary
// is unhealthy; a dead mirror only degrades.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	primary := s.deps.Store.Primary()
	if err := primary.DB.PingContext(reqCtx); err != nil {
		status = healthStatusUnhealthy
		checks[primary.Name] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks[primary.Name] = HealthCheck{Status: healthStatusHealthy}
	}

	if secondary := s.deps.Store.Secondary(); secondary != nil {
		if err := secondary.DB.PingContext(reqCtx); err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks[secondary.Name] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks[secondary.Name] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:     status,
		Version:    version.GitCommit,
		ReadSource: s.deps.Store.ReadSource(),
		Checks:     checks,
	})
}
