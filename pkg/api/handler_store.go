package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/store"
)

// ReadSourceRequest names the backend reads should come from.
type ReadSourceRequest struct {
	Source string `json:"source"`
}

// DualWriteStrictRequest toggles whether mirror failures abort the write.
type DualWriteStrictRequest struct {
	Strict bool `json:"strict"`
}

// BackfillRequest runs the embedded-to-server copy. DSN may name a Postgres
// target to open for this run; empty means the configured secondary backend.
type BackfillRequest struct {
	DSN           string   `json:"dsn,omitempty"`
	BatchSize     int      `json:"batch_size,omitempty"`
	TruncateFirst bool     `json:"truncate_first,omitempty"`
	Tables        []string `json:"tables,omitempty"`
}

func (s *Server) storeStatusHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Store.Status())
}

func (s *Server) switchReadSourceHandler(c *echo.Context) error {
	var req ReadSourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Source == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "source is required")
	}

	if err := s.deps.Store.SwitchReadSource(req.Source); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	slog.Info("Read source switched over API",
		"source", req.Source,
		"principal", principal(c))
	return c.JSON(http.StatusOK, s.deps.Store.Status())
}

func (s *Server) dualWriteStrictHandler(c *echo.Context) error {
	var req DualWriteStrictRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !s.deps.Store.SetStrict(req.Strict) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "dual-write is not configured")
	}
	slog.Info("Dual-write strictness changed",
		"strict", req.Strict,
		"principal", principal(c))
	return c.JSON(http.StatusOK, s.deps.Store.Status())
}

// parityHandler compares the embedded and server backends table by table.
// Direction is fixed at embedded source, server target, matching the
// migration the report is checking on.
func (s *Server) parityHandler(c *echo.Context) error {
	lite, pg := s.backends()
	if lite == nil || pg == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "parity requires both backends")
	}

	deep, err := boolParam(c, "deep")
	if err != nil {
		return err
	}
	sampleLimit := 0
	if raw := c.QueryParam("sample_limit"); raw != "" {
		sampleLimit, err = strconv.Atoi(raw)
		if err != nil || sampleLimit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid sample_limit: must be a non-negative integer")
		}
	}
	var tables []string
	if raw := c.QueryParam("tables"); raw != "" {
		tables = strings.Split(raw, ",")
	}

	report, err := store.ParityReport(c.Request().Context(), lite, pg, store.ParityOptions{
		Deep:        deep,
		SampleLimit: sampleLimit,
		Tables:      tables,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) backfillHandler(c *echo.Context) error {
	var req BackfillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.BatchSize < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch_size must not be negative")
	}

	lite, pg := s.backends()
	if lite == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "backfill requires the embedded backend")
	}

	ctx := c.Request().Context()
	target := pg
	if req.DSN != "" {
		opened, err := store.OpenPostgres(ctx, req.DSN, 4, 2)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer func() { _ = opened.Close() }()
		target = opened
	}
	if target == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "backfill requires a postgres target: configure one or pass dsn")
	}

	slog.Info("Backfill started over API",
		"target", target.Name,
		"truncate_first", req.TruncateFirst,
		"principal", principal(c))
	report, err := store.Backfill(ctx, lite, target, store.BackfillOptions{
		BatchSize:     req.BatchSize,
		TruncateFirst: req.TruncateFirst,
		Tables:        req.Tables,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// backends returns the embedded and server backends regardless of which one
// is primary.
func (s *Server) backends() (lite, pg *store.Backend) {
	for _, b := range []*store.Backend{s.deps.Store.Primary(), s.deps.Store.Secondary()} {
		if b == nil {
			continue
		}
		switch b.Name {
		case config.BackendSQLite:
			lite = b
		case config.BackendPostgres:
			pg = b
		}
	}
	return lite, pg
}
