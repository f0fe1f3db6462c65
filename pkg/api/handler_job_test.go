package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/models"
)

func TestCreateJobHandler(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("creates and returns the job", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs", models.CreateJobRequest{
			Title:  "Platform Engineer",
			JDText: "Go and Kubernetes.",
		})
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		var job ent.Job
		decode(t, rec, &job)
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, "Platform Engineer", job.Title)
		assert.Equal(t, "auto", string(job.RoutingMode))
	})

	t.Run("missing title is 400", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs", models.CreateJobRequest{
			JDText: "Go and Kubernetes.",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "title is required")
	})

	t.Run("bad routing mode is 400", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs", models.CreateJobRequest{
			Title:       "Platform Engineer",
			JDText:      "Go.",
			RoutingMode: "roundrobin",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must be auto or manual")
	})
}

func TestGetJobHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)

	t.Run("returns the job", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var job ent.Job
		decode(t, rec, &job)
		assert.Equal(t, jobID, job.ID)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/jobs/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListJobsHandler(t *testing.T) {
	f := newAPIFixture(t)
	f.createJob(t)
	f.createJob(t)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list models.JobListResponse
	decode(t, rec, &list)
	assert.Equal(t, 2, list.TotalCount)
	assert.Len(t, list.Jobs, 2)
	assert.Equal(t, 50, list.Limit)
}

func TestListJobsHandler_Validation(t *testing.T) {
	// Only parameter validation; it fails before any service is touched.
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "limit must be positive",
			query:  "limit=0",
			errMsg: "invalid limit",
		},
		{
			name:   "limit must be numeric",
			query:  "limit=ten",
			errMsg: "invalid limit",
		},
		{
			name:   "offset must be non-negative",
			query:  "offset=-1",
			errMsg: "invalid offset",
		},
		{
			name:   "created_after must be RFC3339",
			query:  "created_after=2025-03-12",
			errMsg: "invalid created_after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.listJobsHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}
