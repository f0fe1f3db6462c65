package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/profile"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
)

// CandidateListResponse is returned by GET /api/v1/jobs/:id/candidates.
type CandidateListResponse struct {
	JobID      string                `json:"job_id"`
	Candidates []models.CandidateRow `json:"candidates"`
}

// listCandidatesHandler handles GET /api/v1/jobs/:id/candidates. Rows carry
// the match verdict, the per-agent scorecard, and the composed overall
// score, ordered by match score descending.
func (s *Server) listCandidatesHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}

	var statuses []string
	if v := c.QueryParam("status"); v != "" {
		statuses = strings.Split(v, ",")
	}

	ctx := c.Request().Context()
	if _, err := s.deps.Jobs.GetJob(ctx, jobID); err != nil {
		return mapServiceError(err)
	}

	matches, err := s.deps.Matches.ListByJob(ctx, jobID, statuses, nil)
	if err != nil {
		return mapServiceError(err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.CandidateID)
	}
	candidates, err := s.deps.Candidates.ListByIDs(ctx, ids)
	if err != nil {
		return mapServiceError(err)
	}
	byID := make(map[string]*ent.Candidate, len(candidates))
	for _, cand := range candidates {
		byID[cand.ID] = cand
	}

	rows := make([]models.CandidateRow, 0, len(matches))
	for _, m := range matches {
		row := models.CandidateRow{Candidate: byID[m.CandidateID], Match: m}

		scorecard, err := s.deps.Assessments.Scorecard(ctx, jobID, m.CandidateID)
		if err != nil {
			return mapServiceError(err)
		}
		row.Scorecard = scorecard

		sessionStatus := ""
		session, err := s.deps.SessionStore.LatestByJobCandidate(ctx, jobID, m.CandidateID)
		switch {
		case err == nil:
			sessionStatus = string(session.Status)
		case !errors.Is(err, services.ErrNotFound):
			return mapServiceError(err)
		}

		overall := s.deps.Policy.Compose(scoring.Input{
			Scorecard:       scorecard,
			CandidateStatus: sessionStatus,
			ResumeReceived:  sessionStatus == "resume_received" || string(m.Status) == "resume_received",
		})
		row.Overall = &overall
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, &CandidateListResponse{JobID: jobID, Candidates: rows})
}

// candidateProfileHandler handles GET /api/v1/candidates/:id/profile.
// Query parameters: job_id narrows the view to one job, audit=true includes
// the operation log, explain=true engages the explanation generator.
func (s *Server) candidateProfileHandler(c *echo.Context) error {
	candidateID := c.Param("id")
	if candidateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "candidate id is required")
	}

	req := profile.Request{
		CandidateID: candidateID,
		JobID:       c.QueryParam("job_id"),
	}
	var err error
	if req.IncludeAudit, err = boolParam(c, "audit"); err != nil {
		return err
	}
	if req.Explain, err = boolParam(c, "explain"); err != nil {
		return err
	}

	view, err := s.deps.Profiles.Build(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// boolParam parses an optional boolean query parameter; absent means false.
func boolParam(c *echo.Context, name string) (bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": must be a boolean")
	}
	return parsed, nil
}
