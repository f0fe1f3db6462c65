package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/signals"
)

func TestIngestSignalsHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/signals/ingest", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var report signals.IngestReport
	decode(t, rec, &report)
	assert.Equal(t, jobID, report.JobID)
	assert.Greater(t, report.Created, 0)
	assert.Equal(t, report.Created, report.Total)
	assert.NotEmpty(t, report.Sources)

	// Sweeping again re-reads the same records without duplicating rows.
	rec = f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/signals/ingest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var second signals.IngestReport
	decode(t, rec, &second)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, report.Total, second.Total)
}

func TestIngestSignalsHandler_UnknownJob(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/jobs/nope/signals/ingest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignalsViewHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/signals/ingest", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/signals", nil)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var view signals.JobView
	decode(t, rec, &view)
	assert.Equal(t, jobID, view.JobID)
	require.Len(t, view.Candidates, 1)

	row := view.Candidates[0]
	assert.Equal(t, 1, row.Rank)
	assert.Greater(t, row.BaseScore, 0.0)
	assert.Greater(t, row.SignalsTotal, 0)
	assert.NotEmpty(t, view.Timeline)
	assert.NotEmpty(t, view.CategoryCounts)
	assert.False(t, view.GeneratedAt.IsZero())
}

func TestSignalsViewHandler_StatusFilter(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/signals?status=verified", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view signals.JobView
	decode(t, rec, &view)
	assert.Empty(t, view.Candidates)

	rec = f.do(t, http.MethodGet, "/api/v1/jobs/nope/signals", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
