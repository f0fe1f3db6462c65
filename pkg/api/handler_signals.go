package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// ingestSignalsHandler sweeps the job's recorded outcomes into candidate
// signals. Re-running is idempotent; created counts only new rows.
func (s *Server) ingestSignalsHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}

	ctx := c.Request().Context()
	if _, err := s.deps.Jobs.GetJob(ctx, jobID); err != nil {
		return mapServiceError(err)
	}

	report, err := s.deps.Signals.IngestJob(ctx, jobID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// signalsViewHandler returns the live-scored candidate ranking with the
// signal timeline. An optional status filter narrows the ranked matches.
func (s *Server) signalsViewHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}
	var statuses []string
	if raw := c.QueryParam("status"); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	ctx := c.Request().Context()
	if _, err := s.deps.Jobs.GetJob(ctx, jobID); err != nil {
		return mapServiceError(err)
	}

	view, err := s.deps.Signals.BuildJobView(ctx, jobID, statuses)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, view)
}
