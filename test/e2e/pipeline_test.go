package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/profile"
	"github.com/hireflow/scout/pkg/provider"
)

// TestPipeline_SourceToResumeReceived walks one job end to end: sourcing,
// screening, outreach with pre-resume sessions, dispatch over a sender
// account, inbound replies, signal ingestion, and the candidate profile.
func TestPipeline_SourceToResumeReceived(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	app.Provider.Profiles = []provider.Profile{
		goodProfile("ada", "Ada Example"),
		goodProfile("lin", "Lin Sample"),
		weakProfile("bob", "Bob Designer"),
	}
	app.ConnectAccount(t, "acct-1")
	job := app.CreateJob(t)

	// Source → enrich → verify → add. The weak profile is stored rejected;
	// the good ones land as needs_resume because the pipeline wants a CV
	// before the final screen.
	added := app.SourceToAdd(t, job.ID, 10)
	require.Len(t, added, 3)
	byStatus := map[string]int{}
	for _, a := range added {
		byStatus[a.Status]++
	}
	assert.Equal(t, 2, byStatus["needs_resume"])
	assert.Equal(t, 1, byStatus["rejected"])

	// Outreach targets the two waiting matches: each gets a resume request
	// and an open pre-resume session, queued for the dispatcher.
	outreach := app.RunStage(t, models.StepOutreach, job.ID, models.StageRequest{})
	assert.Equal(t, 2, outreach.Counts["total"])
	assert.Equal(t, 2, outreach.Counts["enqueued"])
	assert.Equal(t, 2, outreach.Counts["resume_requests"])
	assert.Equal(t, 2, outreach.Counts["sessions_started"])
	assert.Equal(t, 0, outreach.Counts["failed"])

	// Dispatch drains the queue through the fake provider.
	report, err := app.Dispatcher.Dispatch(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, app.Provider.Sent(), 2)

	var adaID, linID string
	for _, a := range added {
		cand, err := app.Candidates.GetCandidate(ctx, a.CandidateID)
		require.NoError(t, err)
		switch cand.ProviderID {
		case "ada":
			adaID = a.CandidateID
		case "lin":
			linID = a.CandidateID
		}
	}
	require.NotEmpty(t, adaID)
	require.NotEmpty(t, linID)

	// The send bound the conversation to the account and its provider chat.
	conv := app.Conversation(t, job.ID, adaID)
	assert.Equal(t, "active", string(conv.Status))
	require.NotNil(t, conv.AccountID)
	require.NotNil(t, conv.ExternalChatID)
	assert.NotEmpty(t, *conv.ExternalChatID)

	// Ada shares a CV link: the session terminates and the match advances.
	result, err := app.Workflow.ProcessInbound(ctx, conv.ID, "Sure! Here is my resume: https://files.example.com/ada_cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pre_resume", result.Mode)
	assert.Equal(t, "resume_shared", result.Intent)
	assert.Equal(t, "resume_received", result.SessionStatus)
	assert.Equal(t, []string{"https://files.example.com/ada_cv.pdf"}, result.ResumeLinks)
	assert.NotEmpty(t, result.Reply)

	match := app.Match(t, job.ID, adaID)
	assert.Equal(t, "resume_received", string(match.Status))
	assert.Contains(t, match.VerificationNotes, "resume_links")

	// Intro, inbound reply, ack.
	transcript := app.Transcript(t, conv.ID)
	require.Len(t, transcript, 3)
	assert.Equal(t, "outbound", string(transcript[0].Direction))
	assert.Equal(t, "inbound", string(transcript[1].Direction))
	assert.Equal(t, "outbound", string(transcript[2].Direction))

	// Lin opts out: terminal session, match untouched.
	linConv := app.Conversation(t, job.ID, linID)
	result, err = app.Workflow.ProcessInbound(ctx, linConv.ID, "Not interested, thanks.")
	require.NoError(t, err)
	assert.Equal(t, "not_interested", result.Intent)
	assert.Equal(t, "not_interested", result.SessionStatus)
	assert.Equal(t, "needs_resume", string(app.Match(t, job.ID, linID).Status))

	// Signal ingestion sweeps everything recorded above; replaying creates
	// nothing new.
	ingested, err := app.Signals.IngestJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Greater(t, ingested.Created, 0)

	replay, err := app.Signals.IngestJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, replay.Created)
	assert.Equal(t, ingested.Total, replay.Total)

	view, err := app.Signals.BuildJobView(ctx, job.ID, nil)
	require.NoError(t, err)
	assert.Len(t, view.Candidates, 3)
	assert.NotEmpty(t, view.Timeline)
	assert.NotEmpty(t, view.CategoryCounts)

	// The candidate profile stitches the whole journey together.
	pv, err := app.Profiles.Build(ctx, profile.Request{CandidateID: adaID})
	require.NoError(t, err)
	require.Len(t, pv.Jobs, 1)
	section := pv.Jobs[0]
	require.NotNil(t, section.Match)
	assert.Equal(t, "resume_received", string(section.Match.Status))
	require.NotNil(t, section.Session)
	assert.Equal(t, "resume_received", section.Session.Status)
	assert.Equal(t, []string{"https://files.example.com/ada_cv.pdf"}, section.Session.ResumeLinks)
	require.Len(t, section.Conversations, 1)
	assert.Equal(t, 3, section.Conversations[0].Messages)
}

// TestPipeline_PollRoutesProviderMessages exercises the inbound poller: chat
// history fetched from the provider is routed through the session FSM, with
// attachment-only messages synthesized into classifiable text, and provider
// message ids dedupe replays.
func TestPipeline_PollRoutesProviderMessages(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	app.Provider.Profiles = []provider.Profile{goodProfile("ada", "Ada Example")}
	app.ConnectAccount(t, "acct-1")
	job := app.CreateJob(t)

	added := app.SourceToAdd(t, job.ID, 5)
	require.Len(t, added, 1)
	candidateID := added[0].CandidateID

	app.RunStage(t, models.StepOutreach, job.ID, models.StageRequest{})
	report, err := app.Dispatcher.Dispatch(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 1, report.Sent)

	conv := app.Conversation(t, job.ID, candidateID)
	require.NotNil(t, conv.ExternalChatID)
	chatID := *conv.ExternalChatID

	app.Provider.ChatMessages[chatID] = []provider.ChatMessage{
		{ProviderMessageID: "pm-1", Direction: "inbound", Text: "What is the salary range for this role?"},
		{ProviderMessageID: "pm-2", Direction: "inbound", Attachments: []provider.Attachment{
			{Name: "ada_resume.pdf", URL: "https://files.example.com/ada_resume.pdf"},
		}},
		{ProviderMessageID: "pm-3", Direction: "outbound", Text: "our own message, not routed"},
	}

	poll, err := app.Workflow.PollInbound(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, poll.NewInbound)
	assert.Equal(t, 0, poll.Failed)

	// Salary question answered in-session, then the attachment closed it.
	session := app.Session(t, conv.ID)
	assert.Equal(t, "resume_received", string(session.Status))
	assert.Equal(t, "resume_received", string(app.Match(t, job.ID, candidateID).Status))

	// Same chat history again: every provider message id is already stored.
	again, err := app.Workflow.PollInbound(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, again.NewInbound)

	// Two inbound rows plus their generated replies joined the intro.
	transcript := app.Transcript(t, conv.ID)
	inbound := 0
	for _, msg := range transcript {
		if msg.Direction == "inbound" {
			inbound++
		}
	}
	assert.Equal(t, 2, inbound)
}
