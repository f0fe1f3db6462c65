package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/store"
)

func TestStoreStatusHandler(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/store/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status store.Status
	decode(t, rec, &status)
	assert.Equal(t, "sqlite", status.Primary)
	assert.Empty(t, status.Secondary)
	assert.Equal(t, "sqlite", status.ReadSource)
	assert.False(t, status.DualWrite)
}

func TestSwitchReadSourceHandler(t *testing.T) {
	f := newAPIFixture(t)

	// Re-selecting the only backend is a no-op that still reports state.
	rec := f.do(t, http.MethodPost, "/api/v1/store/read-source", ReadSourceRequest{Source: "sqlite"})
	require.Equal(t, http.StatusOK, rec.Code)
	var status store.Status
	decode(t, rec, &status)
	assert.Equal(t, "sqlite", status.ReadSource)

	// Without a postgres backend the name does not resolve.
	rec = f.do(t, http.MethodPost, "/api/v1/store/read-source", ReadSourceRequest{Source: "postgres"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown read source")

	rec = f.do(t, http.MethodPost, "/api/v1/store/read-source", ReadSourceRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "source is required")
}

func TestDualWriteStrictHandler_NotConfigured(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/store/dual-write-strict", DualWriteStrictRequest{Strict: true})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "dual-write is not configured")
}

func TestParityHandler_RequiresBothBackends(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/store/parity", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "parity requires both backends")
}

func TestBackfillHandler(t *testing.T) {
	f := newAPIFixture(t)

	// No configured secondary and no DSN leaves nothing to copy into.
	rec := f.do(t, http.MethodPost, "/api/v1/store/backfill", BackfillRequest{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "backfill requires a postgres target")

	rec = f.do(t, http.MethodPost, "/api/v1/store/backfill", BackfillRequest{BatchSize: -5})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "batch_size must not be negative")
}
