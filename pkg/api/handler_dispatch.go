package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// DispatchRequest triggers one dispatcher pass. Limit zero means the
// configured batch limit; JobID restricts the pass to one job's actions.
type DispatchRequest struct {
	Limit int    `json:"limit,omitempty"`
	JobID string `json:"job_id,omitempty"`
}

// dispatchHandler drains due outbound actions once and reports per-outcome
// counts. Budget exhaustion is not an error here; exhausted sends show up as
// deferred in the report.
func (s *Server) dispatchHandler(c *echo.Context) error {
	if s.deps.Dispatcher == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "outbound dispatch is not configured")
	}
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Limit < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must not be negative")
	}

	report, err := s.deps.Dispatcher.DispatchJob(c.Request().Context(), req.JobID, req.Limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}
