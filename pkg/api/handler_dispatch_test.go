package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/dispatch"
)

func TestDispatchHandler(t *testing.T) {
	f := newAPIFixture(t)
	f.connectAccount(t, "acc-1")
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatch", DispatchRequest{})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var report dispatch.Report
	decode(t, rec, &report)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 0, report.Failed)

	sent := f.fake.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "Ada")

	// The queue is drained; a second pass finds nothing.
	rec = f.do(t, http.MethodPost, "/api/v1/dispatch", DispatchRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &report)
	assert.Equal(t, 0, report.Processed)
}

func TestDispatchHandler_JobFilter(t *testing.T) {
	f := newAPIFixture(t)
	f.connectAccount(t, "acc-1")
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatch", DispatchRequest{JobID: "other-job"})
	require.Equal(t, http.StatusOK, rec.Code)
	var report dispatch.Report
	decode(t, rec, &report)
	assert.Equal(t, 0, report.Processed)

	rec = f.do(t, http.MethodPost, "/api/v1/dispatch", DispatchRequest{JobID: jobID})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &report)
	assert.Equal(t, 1, report.Sent)
}

func TestDispatchHandler_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/dispatch", DispatchRequest{Limit: -1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit must not be negative")
}

func TestDispatchHandler_NotConfigured(t *testing.T) {
	// A server wired without a dispatcher refuses the route instead of
	// panicking.
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.dispatchHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, http.StatusServiceUnavailable, he.Code)
			assert.Contains(t, he.Message, "not configured")
		}
	}
}
