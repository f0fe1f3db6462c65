package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/provider"
)

// zeroDelayPreResume makes every follow-up due immediately, so ticker passes
// advance the session without a clock.
func zeroDelayPreResume(maxFollowups int) *config.PreResumeConfig {
	return &config.PreResumeConfig{
		FollowupDelayHours: []int{0},
		MaxFollowups:       maxFollowups,
		DefaultLanguage:    "en",
	}
}

// TestFollowups_DirectDeliveryUntilStalled drives a silent candidate through
// the follow-up schedule: each tick pushes the next nudge through the bound
// account, and the send that reaches the cap stalls the session.
func TestFollowups_DirectDeliveryUntilStalled(t *testing.T) {
	app := NewTestApp(t, WithPreResumeConfig(zeroDelayPreResume(2)))
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
	require.NotNil(t, conv.AccountID)

	// First nudge goes straight through the provider.
	tick, err := app.Workflow.FollowupTick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Due)
	assert.Equal(t, 1, tick.Sent)
	assert.Equal(t, 1, tick.Delivered)
	assert.Equal(t, 0, tick.Enqueued)

	// Second nudge reaches the cap and stalls the session in the same pass.
	tick, err = app.Workflow.FollowupTick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Sent)
	assert.Equal(t, 1, tick.Delivered)

	session := app.Session(t, conv.ID)
	assert.Equal(t, "stalled", string(session.Status))
	assert.Equal(t, 2, session.FollowupsSent)

	// Stalled sessions never come due again.
	tick, err = app.Workflow.FollowupTick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, tick.Due)

	// Intro plus two follow-ups on the wire, same order in the transcript.
	assert.Len(t, app.Provider.Sent(), 3)
	transcript := app.Transcript(t, conv.ID)
	require.Len(t, transcript, 3)
	for _, msg := range transcript {
		assert.Equal(t, "outbound", string(msg.Direction))
	}
}

// TestFollowups_QueuedWhenConversationUnbound covers the cold path: before
// any dispatch has picked a sender account, follow-ups are enqueued rather
// than pushed, and the single open action per conversation absorbs them.
func TestFollowups_QueuedWhenConversationUnbound(t *testing.T) {
	app := NewTestApp(t, WithPreResumeConfig(zeroDelayPreResume(3)))
	ctx := context.Background()

	app.Provider.Profiles = []provider.Profile{goodProfile("ada", "Ada Example")}
	app.ConnectAccount(t, "acct-1")
	job := app.CreateJob(t)

	added := app.SourceToAdd(t, job.ID, 5)
	require.Len(t, added, 1)
	candidateID := added[0].CandidateID

	// Outreach enqueued the intro but nothing was dispatched yet.
	app.RunStage(t, models.StepOutreach, job.ID, models.StageRequest{})
	conv := app.Conversation(t, job.ID, candidateID)
	require.Nil(t, conv.AccountID)

	tick, err := app.Workflow.FollowupTick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Sent)
	assert.Equal(t, 0, tick.Delivered)
	assert.Equal(t, 1, tick.Enqueued)

	// The intro action is still the only open one; the follow-up rode along.
	open, err := app.Queue.HasOpenAction(ctx, conv.ID, "message")
	require.NoError(t, err)
	assert.True(t, open)
	assert.Empty(t, app.Provider.Sent())

	// Dispatch resolves the queue and binds the account; the next follow-up
	// flows directly.
	report, err := app.Dispatcher.Dispatch(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)

	conv = app.Conversation(t, job.ID, candidateID)
	require.NotNil(t, conv.AccountID)

	tick, err = app.Workflow.FollowupTick(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tick.Sent)
	assert.Equal(t, 1, tick.Delivered)
	assert.Len(t, app.Provider.Sent(), 2)
}
