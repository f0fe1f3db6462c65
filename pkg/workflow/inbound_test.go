package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/services"
)

// outreached runs the pipeline through outreach and returns the candidate id
// and its conversation, leaving an open pre-resume session behind.
func (f *workflowFixture) outreached(t *testing.T, jobID string) (string, *ent.Conversation) {
	t.Helper()
	candidateID := f.pipeline(t, jobID)
	_, err := f.engine.RunStage(context.Background(), models.StepOutreach, jobID, models.StageRequest{
		CandidateIDs: []string{candidateID},
	})
	require.NoError(t, err)
	conv, err := f.conversations.EnsureConversation(context.Background(), jobID, candidateID)
	require.NoError(t, err)
	return candidateID, conv
}

func TestProcessInboundValidates(t *testing.T) {
	f := newWorkflowFixture(t, nil)

	_, err := f.engine.ProcessInbound(context.Background(), "", "hello")
	assert.True(t, services.IsValidationError(err))

	_, err = f.engine.ProcessInbound(context.Background(), "conv", "")
	assert.True(t, services.IsValidationError(err))

	_, err = f.engine.ProcessInbound(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProcessInboundRoutesToSession(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	candidateID, conv := f.outreached(t, job.ID)

	result, err := f.engine.ProcessInbound(context.Background(), conv.ID, "here is my cv https://example.com/ada-resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, ModePreResume, result.Mode)
	assert.Equal(t, preresume.IntentResumeShared, result.Intent)
	assert.Equal(t, preresume.StatusResumeReceived, result.SessionStatus)
	assert.NotEmpty(t, result.Reply)
	require.Len(t, result.ResumeLinks, 1)

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, candidateID)
	require.NoError(t, err)
	assert.Equal(t, "resume_received", string(match.Status))
	assert.Contains(t, match.VerificationNotes, "resume_links")

	// Outreach intro, inbound, and the acknowledgment reply.
	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "inbound", string(msgs[1].Direction))
	assert.Equal(t, result.Reply, msgs[2].Content)
	assert.Equal(t, true, msgs[2].Meta["auto"])

	fresh, err := f.conversations.GetConversation(context.Background(), conv.ID)
	require.NoError(t, err)
	assert.NotNil(t, fresh.LastMessageAt)

	logs := f.auditRows(t, "agent.inbound")
	require.Len(t, logs, 1)
	assert.Equal(t, candidateID, logs[0].CandidateID)
}

func TestProcessInboundRoutesToFAQWithoutSession(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: "p1",
		FullName:   "Ada Example",
		Languages:  []string{"en"},
	})
	require.NoError(t, err)
	conv, err := f.conversations.EnsureConversation(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)

	result, err := f.engine.ProcessInbound(context.Background(), conv.ID, "what is the salary range?")
	require.NoError(t, err)
	assert.Equal(t, ModeFAQ, result.Mode)
	assert.Equal(t, preresume.IntentSalary, result.Intent)
	assert.NotEmpty(t, result.Reply)

	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "faq", msgs[1].Meta["type"])
}

func TestProcessInboundFAQStillCapturesResume(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: "p1",
		FullName:   "Ada Example",
	})
	require.NoError(t, err)
	_, err = f.matches.EnsureMatch(context.Background(), job.ID, cand.ID, 0.8, "outreached", nil)
	require.NoError(t, err)
	conv, err := f.conversations.EnsureConversation(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)

	result, err := f.engine.ProcessInbound(context.Background(), conv.ID, "sure: https://files.example.com/ada-cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, ModeFAQ, result.Mode)
	require.Len(t, result.ResumeLinks, 1)

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume_received", string(match.Status))
}

func TestProcessInboundTerminalSessionFallsToFAQ(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	_, conv := f.outreached(t, job.ID)

	_, err := f.engine.ProcessInbound(context.Background(), conv.ID, "here is my cv https://example.com/ada-resume.pdf")
	require.NoError(t, err)

	// The session is terminal now; the next question routes to FAQ.
	result, err := f.engine.ProcessInbound(context.Background(), conv.ID, "what is the tech stack?")
	require.NoError(t, err)
	assert.Equal(t, ModeFAQ, result.Mode)
	assert.Equal(t, preresume.IntentStack, result.Intent)
}
