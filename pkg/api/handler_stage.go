package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/services"
)

// idempotencyHeader carries the caller-chosen replay key for mutations.
const idempotencyHeader = "Idempotency-Key"

// runStageHandler handles POST /api/v1/jobs/:id/stages/:step.
//
// With an Idempotency-Key header the stored response of a completed call is
// replayed byte for byte; the same key with a different payload is a
// conflict. The record is keyed by route, so the same key on another job or
// step is a distinct call.
func (s *Server) runStageHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}
	step := c.Param("step")
	if step == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "step is required")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	var req models.StageRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload: "+err.Error())
		}
	}

	ctx := c.Request().Context()
	key := c.Request().Header.Get(idempotencyHeader)
	route := c.Request().URL.Path
	payloadHash := services.HashPayload(body)

	if key != "" {
		record, err := s.deps.Idempotency.Lookup(ctx, route, key)
		switch {
		case err == nil:
			if record.PayloadHash != payloadHash {
				return echo.NewHTTPError(http.StatusConflict, "idempotency key reused with a different payload")
			}
			return c.JSONBlob(record.StatusCode, []byte(record.Response))
		case !errors.Is(err, services.ErrNotFound):
			return mapServiceError(err)
		}
	}

	summary, err := s.deps.Workflow.RunStage(ctx, step, jobID, req)
	if err != nil {
		return mapServiceError(err)
	}

	response, err := json.Marshal(summary)
	if err != nil {
		return mapServiceError(err)
	}

	if key != "" {
		// A concurrent call with the same key may have won the insert; the
		// stored record is canonical either way, so every caller converges
		// on the same bytes.
		record, err := s.deps.Idempotency.Store(ctx, route, key, payloadHash, http.StatusOK, string(response))
		if err != nil {
			slog.Warn("Failed to store idempotency record", "route", route, "error", err)
		} else {
			if record.PayloadHash != payloadHash {
				return echo.NewHTTPError(http.StatusConflict, "idempotency key reused with a different payload")
			}
			return c.JSONBlob(record.StatusCode, []byte(record.Response))
		}
	}
	return c.JSONBlob(http.StatusOK, response)
}
