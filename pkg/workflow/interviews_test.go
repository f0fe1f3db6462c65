package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
)

// interviewStub scripts the interview provider per invitation id.
type interviewStub struct {
	invites     int
	statusCalls int
	statuses    map[string]string
	results     map[string]provider.InterviewResult
	statusErr   error
}

func newInterviewStub() *interviewStub {
	return &interviewStub{
		statuses: map[string]string{},
		results:  map[string]provider.InterviewResult{},
	}
}

func (s *interviewStub) CreateInvitation(_ context.Context, req provider.InterviewRequest) (provider.InterviewInvitation, error) {
	s.invites++
	return provider.InterviewInvitation{
		InvitationID: fmt.Sprintf("inv-%d", s.invites),
		InterviewURL: "https://interviews.example.com/" + req.CandidateID,
	}, nil
}

func (s *interviewStub) GetInterviewStatus(_ context.Context, id string) (string, error) {
	s.statusCalls++
	if s.statusErr != nil {
		return "", s.statusErr
	}
	return s.statuses[id], nil
}

func (s *interviewStub) GetInterviewResult(_ context.Context, id string) (provider.InterviewResult, error) {
	res, ok := s.results[id]
	if !ok {
		return provider.InterviewResult{}, errors.New("no result recorded")
	}
	return res, nil
}

func (f *workflowFixture) resumeReceivedMatch(t *testing.T, jobID string) *ent.Candidate {
	t.Helper()
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: "p1",
		FullName:   "Ada Example",
		Languages:  []string{"en"},
	})
	require.NoError(t, err)
	_, err = f.matches.EnsureMatch(context.Background(), jobID, cand.ID, 0.8, "resume_received", nil)
	require.NoError(t, err)
	return cand
}

func TestRequestInterviewSchedulesMatch(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand := f.resumeReceivedMatch(t, job.ID)
	stub := newInterviewStub()
	f.engine.deps.Interview = stub

	invite, err := f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", invite.InvitationID)

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "interview_scheduled", string(match.Status))
	assert.Equal(t, "inv-1", match.VerificationNotes["interview_invitation_id"])
	assert.Equal(t, provider.InterviewInvited, match.VerificationNotes["interview_status"])
	assert.NotEmpty(t, match.VerificationNotes["interview_url"])

	logs := f.auditRows(t, "interview.invite")
	require.Len(t, logs, 1)
	assert.Equal(t, "ok", logs[0].Status)
}

func TestRequestInterviewRejectsOpenInvitation(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand := f.resumeReceivedMatch(t, job.ID)
	f.engine.deps.Interview = newInterviewStub()

	_, err := f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)

	_, err = f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	assert.ErrorIs(t, err, services.ErrPreconditionFailed)
}

func TestRequestInterviewWithoutProvider(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand := f.resumeReceivedMatch(t, job.ID)

	_, err := f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	assert.ErrorIs(t, err, ErrInterviewsNotConfigured)
}

func TestRefreshInterviewsRecordsCompletedVerdict(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand := f.resumeReceivedMatch(t, job.ID)
	stub := newInterviewStub()
	f.engine.deps.Interview = stub

	_, err := f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	stub.statuses["inv-1"] = provider.InterviewCompleted
	stub.results["inv-1"] = provider.InterviewResult{
		Status: provider.InterviewCompleted,
		Scores: provider.InterviewScores{Technical: 80, SoftSkills: 90, CultureFit: 70},
	}

	report, err := f.engine.RefreshInterviews(context.Background(), job.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Completed)

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "interview_completed", string(match.Status))
	assert.Equal(t, provider.InterviewCompleted, match.VerificationNotes["interview_status"])

	rows, err := f.assessments.ListByJobCandidate(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, scoring.AgentInterview, string(rows[0].AgentKey))
	require.NotNil(t, rows[0].Score)
	assert.InDelta(t, 80.0, *rows[0].Score, 0.001)
}

func TestRefreshInterviewsSkipsSettledWithoutForce(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand := f.resumeReceivedMatch(t, job.ID)
	stub := newInterviewStub()
	f.engine.deps.Interview = stub

	_, err := f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	stub.statuses["inv-1"] = provider.InterviewCompleted
	stub.results["inv-1"] = provider.InterviewResult{
		Status: provider.InterviewCompleted,
		Scores: provider.InterviewScores{Technical: 75, SoftSkills: 75, CultureFit: 75},
	}
	_, err = f.engine.RefreshInterviews(context.Background(), job.ID, false)
	require.NoError(t, err)
	calls := stub.statusCalls

	report, err := f.engine.RefreshInterviews(context.Background(), job.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Checked)
	assert.Equal(t, calls, stub.statusCalls)

	report, err = f.engine.RefreshInterviews(context.Background(), job.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Completed)
}

func TestRefreshInterviewsToleratesProviderErrors(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand := f.resumeReceivedMatch(t, job.ID)
	stub := newInterviewStub()
	f.engine.deps.Interview = stub

	_, err := f.engine.RequestInterview(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	stub.statusErr = errors.New("provider down")

	report, err := f.engine.RefreshInterviews(context.Background(), job.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Completed)

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "interview_scheduled", string(match.Status))

	logs := f.auditRows(t, "interview.refresh")
	require.Len(t, logs, 1)
	assert.Equal(t, "partial", logs[0].Status)
}
