package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/provider"
)

// stageRequest posts a stage run with an optional idempotency key.
func (f *apiFixture) stageRequest(t *testing.T, jobID, step string, body []byte, key string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/stages/"+step, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(idempotencyHeader, key)
	}
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

func TestRunStageHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.fake.SearchResults["Backend Engineer"] = []provider.Profile{goodProfile("p1", "Ada Example")}

	t.Run("runs the stage and reports counts", func(t *testing.T) {
		summary := f.runStage(t, jobID, "source", nil)
		assert.Equal(t, "source", summary["step"])
		assert.Equal(t, jobID, summary["job_id"])
		assert.Equal(t, "completed", summary["status"])
	})

	t.Run("unknown step is 400", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/stages/teleport", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown job is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs/nope/stages/source", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed payload is 400", func(t *testing.T) {
		rec := f.stageRequest(t, jobID, "source", []byte("{nope"), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid payload")
	})
}

func TestRunStageHandler_IdempotencyKey(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.fake.SearchResults["Backend Engineer"] = []provider.Profile{
		goodProfile("p1", "Ada Example"),
		goodProfile("p2", "Grace Example"),
	}

	t.Run("replays the stored response byte for byte", func(t *testing.T) {
		first := f.stageRequest(t, jobID, "source", nil, "key-1")
		require.Equal(t, http.StatusOK, first.Code, "body: %s", first.Body.String())

		// The second run would source zero new profiles and produce a
		// different summary; the stored response must win.
		second := f.stageRequest(t, jobID, "source", nil, "key-1")
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("same key with different payload is 409", func(t *testing.T) {
		payload, err := json.Marshal(models.StageRequest{Limit: 3})
		require.NoError(t, err)

		rec := f.stageRequest(t, jobID, "source", payload, "key-1")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "different payload")
	})

	t.Run("same key on another route is a distinct call", func(t *testing.T) {
		rec := f.stageRequest(t, jobID, "enrich", nil, "key-1")
		assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	})
}

func TestRunStageHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing job id is 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs//stages/source", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.runStageHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok, "expected echo.HTTPError") {
				assert.Equal(t, http.StatusBadRequest, he.Code)
				assert.Contains(t, he.Message, "job id")
			}
		}
	})
}
