package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/profile"
)

func TestListCandidatesHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/candidates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CandidateListResponse
	decode(t, rec, &resp)
	assert.Equal(t, jobID, resp.JobID)
	require.Len(t, resp.Candidates, 1)

	row := resp.Candidates[0]
	require.NotNil(t, row.Candidate)
	assert.Equal(t, "Ada Example", row.Candidate.FullName)

	// The resume gate demotes verified matches until a CV arrives.
	require.NotNil(t, row.Match)
	assert.Equal(t, "needs_resume", string(row.Match.Status))

	require.NotEmpty(t, row.Scorecard)
	assert.Equal(t, "sourcing_vetting", row.Scorecard[0].AgentKey)
	require.NotNil(t, row.Scorecard[0].Score)
	assert.Greater(t, *row.Scorecard[0].Score, 0.0)

	// Only the sourcing agent has scored, so the composed verdict stays
	// in review and carries no final score.
	require.NotNil(t, row.Overall)
	assert.Equal(t, "review", row.Overall.Status)
	assert.Nil(t, row.Overall.Score)
}

func TestListCandidatesHandler_StatusFilter(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/candidates?status=needs_resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp CandidateListResponse
	decode(t, rec, &resp)
	assert.Len(t, resp.Candidates, 1)

	rec = f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/candidates?status=verified", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Empty(t, resp.Candidates)
}

func TestListCandidatesHandler_UnknownJob(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs/nope/candidates", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCandidateProfileHandler(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	f.runPipeline(t, jobID)

	rec := f.do(t, http.MethodGet, "/api/v1/jobs/"+jobID+"/candidates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list CandidateListResponse
	decode(t, rec, &list)
	require.Len(t, list.Candidates, 1)
	candidateID := list.Candidates[0].Candidate.ID

	rec = f.do(t, http.MethodGet, "/api/v1/candidates/"+candidateID+"/profile?job_id="+jobID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view profile.View
	decode(t, rec, &view)
	require.NotNil(t, view.Candidate)
	assert.Equal(t, "Ada Example", view.Candidate.FullName)
	require.Len(t, view.Jobs, 1)

	section := view.Jobs[0]
	require.NotNil(t, section.Job)
	assert.Equal(t, jobID, section.Job.ID)
	require.NotNil(t, section.Match)
	assert.Greater(t, section.Fit.SkillsScore, 0.0)
	assert.NotEmpty(t, section.Scorecard)
	assert.Equal(t, "review", section.Overall.Status)

	// Outreach opened a pre-resume session for the pair.
	require.NotNil(t, section.Session)
	assert.Equal(t, "awaiting_reply", section.Session.Status)
}

func TestCandidateProfileHandler_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/candidates/c1/profile?audit=maybe", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid audit: must be a boolean")

	rec = f.do(t, http.MethodGet, "/api/v1/candidates/c1/profile?explain=yes-please", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid explain: must be a boolean")

	rec = f.do(t, http.MethodGet, "/api/v1/candidates/c1/profile", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
