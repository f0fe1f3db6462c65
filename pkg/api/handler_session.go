package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/preresume"
)

// StartSessionRequest opens a pre-resume session for a job/candidate pair.
// SessionID, Language and Intro are optional; an empty language is detected
// from the first inbound message.
type StartSessionRequest struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	SessionID   string `json:"session_id,omitempty"`
	Language    string `json:"language,omitempty"`
	Intro       string `json:"intro,omitempty"`
}

// StartSessionResponse is the created session and its opening message.
// Delivery of the intro is the caller's concern; the outreach stage is the
// path that both starts sessions and queues the send.
type StartSessionResponse struct {
	Session *ent.PreResumeSession `json:"session"`
	Intro   string                `json:"intro"`
}

// SessionDetail is one session with its full event log.
type SessionDetail struct {
	Session *ent.PreResumeSession `json:"session"`
	Events  []*ent.PreResumeEvent `json:"events"`
}

// SessionInboundRequest carries one candidate message for the session
// machine.
type SessionInboundRequest struct {
	Text string `json:"text"`
}

// SessionInboundResponse reports the machine's reaction to one message.
type SessionInboundResponse struct {
	SessionID   string   `json:"session_id"`
	Status      string   `json:"status"`
	Event       string   `json:"event"`
	Intent      string   `json:"intent,omitempty"`
	Reply       string   `json:"reply,omitempty"`
	ResumeLinks []string `json:"resume_links,omitempty"`
}

// SessionUnreachableRequest records why delivery to the candidate failed.
type SessionUnreachableRequest struct {
	Error string `json:"error,omitempty"`
}

// startSessionHandler opens a pre-resume session directly, outside the
// outreach stage. A non-terminal session already open for the pair is a
// conflict.
func (s *Server) startSessionHandler(c *echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.JobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job_id is required")
	}
	if req.CandidateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "candidate_id is required")
	}

	ctx := c.Request().Context()
	job, err := s.deps.Jobs.GetJob(ctx, req.JobID)
	if err != nil {
		return mapServiceError(err)
	}
	cand, err := s.deps.Candidates.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return mapServiceError(err)
	}
	conv, err := s.deps.Conversations.EnsureConversation(ctx, job.ID, cand.ID)
	if err != nil {
		return mapServiceError(err)
	}

	language := req.Language
	if language == "" {
		language = agents.CandidateLanguage(cand, "")
	}
	vars := agents.OutreachVars(job, cand)
	result, err := s.deps.Sessions.StartSession(ctx, preresume.StartSessionInput{
		SessionID:          req.SessionID,
		ConversationID:     conv.ID,
		JobID:              job.ID,
		CandidateID:        cand.ID,
		CandidateName:      vars.Name,
		JobTitle:           vars.JobTitle,
		ScopeSummary:       vars.ScopeSummary,
		CoreProfileSummary: vars.CoreProfileSummary,
		Language:           language,
		Intro:              req.Intro,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, StartSessionResponse{
		Session: result.Session,
		Intro:   result.Intro,
	})
}

func (s *Server) getSessionHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	ctx := c.Request().Context()
	session, err := s.deps.SessionStore.GetSession(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}
	events, err := s.deps.SessionStore.ListEvents(ctx, id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, SessionDetail{Session: session, Events: events})
}

// sessionInboundHandler feeds one message straight into the session machine,
// bypassing conversation routing. Terminal sessions report an
// ignored_terminal event and stay untouched.
func (s *Server) sessionInboundHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	var req SessionInboundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	outcome, err := s.deps.Sessions.HandleInbound(c.Request().Context(), id, req.Text, time.Now())
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, SessionInboundResponse{
		SessionID:   outcome.Session.ID,
		Status:      string(outcome.Session.Status),
		Event:       outcome.Event,
		Intent:      outcome.Intent,
		Reply:       outcome.OutboundText,
		ResumeLinks: outcome.ResumeLinks,
	})
}

// sessionFollowupHandler forces the next follow-up for a session, ignoring
// its schedule. The composed message is delivered the same way a ticker pass
// would deliver it.
func (s *Server) sessionFollowupHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	result, err := s.deps.Workflow.FollowupSession(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) sessionUnreachableHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	var req SessionUnreachableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := s.deps.Sessions.MarkUnreachable(c.Request().Context(), id, req.Error, time.Now())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}
