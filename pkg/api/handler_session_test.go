package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/workflow"
)

func TestStartSessionHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")

	t.Run("creates the session with a rendered intro", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions", StartSessionRequest{
			JobID:       jobID,
			CandidateID: cand.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		var resp struct {
			Session struct {
				ID             string `json:"id"`
				Status         string `json:"status"`
				ConversationID string `json:"conversation_id"`
			} `json:"session"`
			Intro string `json:"intro"`
		}
		decode(t, rec, &resp)
		assert.NotEmpty(t, resp.Session.ID)
		assert.Equal(t, "awaiting_reply", resp.Session.Status)
		assert.NotEmpty(t, resp.Session.ConversationID)
		assert.Contains(t, resp.Intro, "Ada")
		assert.Contains(t, resp.Intro, "Backend Engineer")
	})

	t.Run("second open session for the pair is 409", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions", StartSessionRequest{
			JobID:       jobID,
			CandidateID: cand.ID,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown job is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions", StartSessionRequest{
			JobID:       "nope",
			CandidateID: cand.ID,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing candidate_id is 400", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions", StartSessionRequest{
			JobID: jobID,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "candidate_id is required")
	})
}

func TestGetSessionHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")
	sessionID := f.startSession(t, jobID, cand.ID)

	t.Run("returns the session with its event log", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var detail struct {
			Session struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"session"`
			Events []struct {
				EventType string `json:"event_type"`
			} `json:"events"`
		}
		decode(t, rec, &detail)
		assert.Equal(t, sessionID, detail.Session.ID)
		require.NotEmpty(t, detail.Events)
		assert.Equal(t, "session_started", detail.Events[0].EventType)
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/sessions/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSessionInboundHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")
	sessionID := f.startSession(t, jobID, cand.ID)

	t.Run("resume link closes the session", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/inbound", SessionInboundRequest{
			Text: "Here is my resume https://example.com/ada.pdf",
		})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp SessionInboundResponse
		decode(t, rec, &resp)
		assert.Equal(t, "resume_received", resp.Status)
		assert.Equal(t, []string{"https://example.com/ada.pdf"}, resp.ResumeLinks)
		assert.NotEmpty(t, resp.Reply)
	})

	t.Run("terminal session reports ignored_terminal", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/inbound", SessionInboundRequest{
			Text: "anything else",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SessionInboundResponse
		decode(t, rec, &resp)
		assert.Equal(t, "ignored_terminal", resp.Event)
		assert.Equal(t, "resume_received", resp.Status)
	})

	t.Run("missing text is 400", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/inbound", SessionInboundRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "text is required")
	})
}

func TestSessionFollowupHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")
	sessionID := f.startSession(t, jobID, cand.ID)

	t.Run("composes and queues the next follow-up", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/followup", nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var resp workflow.SessionFollowup
		decode(t, rec, &resp)
		assert.True(t, resp.Sent)
		assert.NotEmpty(t, resp.Text)
		assert.Equal(t, "enqueued", resp.Delivery)
	})

	t.Run("terminal session skips with a reason", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/unreachable", SessionUnreachableRequest{Error: "bounced"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/followup", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp workflow.SessionFollowup
		decode(t, rec, &resp)
		assert.False(t, resp.Sent)
		assert.Equal(t, "terminal_state", resp.Reason)
	})
}

func TestSessionUnreachableHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")
	sessionID := f.startSession(t, jobID, cand.ID)

	rec := f.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/unreachable", SessionUnreachableRequest{
		Error: "connection dropped",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var session struct {
		Status    string  `json:"status"`
		LastError *string `json:"last_error"`
	}
	decode(t, rec, &session)
	assert.Equal(t, "unreachable", session.Status)
	require.NotNil(t, session.LastError)
	assert.Equal(t, "connection dropped", *session.LastError)
}

func TestSessionHandlers_Validation(t *testing.T) {
	s := &Server{}

	for _, tt := range []struct {
		name string
		call func(c *echo.Context) error
	}{
		{"get", func(c *echo.Context) error { return s.getSessionHandler(c) }},
		{"inbound", func(c *echo.Context) error { return s.sessionInboundHandler(c) }},
		{"followup", func(c *echo.Context) error { return s.sessionFollowupHandler(c) }},
		{"unreachable", func(c *echo.Context) error { return s.sessionUnreachableHandler(c) }},
	} {
		t.Run(tt.name+" without session id is 400", func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions//x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := tt.call(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, "session id")
				}
			}
		})
	}
}
