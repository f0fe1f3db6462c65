package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/scoring"
)

func TestSourceDedupesByIdentity(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	ada := goodProfile("p1", "Ada Example")
	f.fake.SearchResults["Backend Engineer"] = []provider.Profile{ada, goodProfile("p2", "Grace Example")}
	f.fake.SearchResults["senior Backend Engineer"] = []provider.Profile{ada}

	summary, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Counts["collected"])

	profiles, ok := summary.Details["profiles"].([]provider.Profile)
	require.True(t, ok)
	require.Len(t, profiles, 2)
}

func TestSourceFallsBackToNameHeadlineKey(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	// No identifiers at all: the name|headline pair is the identity.
	anon := provider.Profile{FullName: "Ada Example", Headline: "Backend Engineer"}
	f.fake.SearchResults["Backend Engineer"] = []provider.Profile{anon}
	f.fake.SearchResults["senior Backend Engineer"] = []provider.Profile{anon}

	summary, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["collected"])
}

func TestSourceWidensWindowWhenShort(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	ada := goodProfile("p1", "Ada Example")
	grace := goodProfile("p2", "Grace Example")
	late := goodProfile("p3", "Lin Example")
	// First pass window is 3; the duplicate eats a slot, so the third
	// distinct profile only appears in the widened pass.
	f.fake.SearchResults["Backend Engineer"] = []provider.Profile{ada, grace, ada, late}

	summary, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Counts["collected"])

	profiles := summary.Details["profiles"].([]provider.Profile)
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ProviderID)
	}
	assert.Contains(t, ids, "p3")
}

func TestSourceToleratesEmptyResults(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	summary, err := f.engine.RunStage(context.Background(), models.StepSource, job.ID, models.StageRequest{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Counts["collected"])
	assert.Equal(t, 0, summary.Counts["failed_queries"])
}

func TestBuildQueriesIncludesSkillsAndInstructions(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	queries := f.engine.buildQueries(job, map[string]any{"keywords": []any{"fintech"}})

	assert.Contains(t, queries, "Backend Engineer")
	assert.Contains(t, queries, "senior Backend Engineer")
	assert.Contains(t, queries, "fintech")
	assert.Contains(t, queries, "Backend Engineer go")
	assert.Contains(t, queries, "Backend Engineer postgres")
	assert.LessOrEqual(t, len(queries), config.DefaultWorkflowConfig().MaxQueries)
}

func TestEnrichKeepsOriginalOnFailure(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	ada := goodProfile("p1", "Ada Example")
	f.fake.EnrichErrors["p1"] = errors.New("rate limited")

	summary, err := f.engine.RunStage(context.Background(), models.StepEnrich, job.ID, models.StageRequest{
		Profiles: []provider.Profile{ada, goodProfile("p2", "Grace Example")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["failed"])
	assert.Equal(t, 1, summary.Counts["enriched"])

	profiles := summary.Details["profiles"].([]provider.Profile)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Ada Example", profiles[0].FullName)
}

func TestVerifySplitsVerdicts(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	nameless := provider.Profile{ProviderID: "p9"}
	summary, err := f.engine.RunStage(context.Background(), models.StepVerify, job.ID, models.StageRequest{
		Profiles: []provider.Profile{goodProfile("p1", "Ada Example"), nameless},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["verified"])
	assert.Equal(t, 1, summary.Counts["rejected"])

	items := summary.Details["items"].([]models.VerifiedItem)
	require.Len(t, items, 2)
	assert.Contains(t, items[0].Notes["verify_explanation"], "score")
}

func TestAddStoresNeedsResumeAndAssessment(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	verify, err := f.engine.RunStage(context.Background(), models.StepVerify, job.ID, models.StageRequest{
		Profiles: []provider.Profile{goodProfile("p1", "Ada Example")},
	})
	require.NoError(t, err)

	summary, err := f.engine.RunStage(context.Background(), models.StepAdd, job.ID, models.StageRequest{
		Items: verify.Details["items"].([]models.VerifiedItem),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["added"])

	added := summary.Details["added"].([]models.AddedCandidate)
	require.Len(t, added, 1)
	assert.Equal(t, "needs_resume", added[0].Status)

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, added[0].CandidateID)
	require.NoError(t, err)
	assert.Equal(t, "needs_resume", string(match.Status))
	assert.Contains(t, match.VerificationNotes, "verify_explanation")

	scorecard, err := f.assessments.Scorecard(context.Background(), job.ID, added[0].CandidateID)
	require.NoError(t, err)
	require.Len(t, scorecard, 1)
	assert.Equal(t, scoring.AgentSourcing, scorecard[0].AgentKey)
	require.NotNil(t, scorecard[0].Score)
	assert.InDelta(t, 100, *scorecard[0].Score, 0.01)
}

func TestAddWithoutResumeGateStoresVerified(t *testing.T) {
	cfg := config.DefaultWorkflowConfig()
	cfg.RequireResumeBeforeFinalVerify = false
	f := newWorkflowFixture(t, cfg)
	job := f.seedJob(t)

	verify, err := f.engine.RunStage(context.Background(), models.StepVerify, job.ID, models.StageRequest{
		Profiles: []provider.Profile{goodProfile("p1", "Ada Example")},
	})
	require.NoError(t, err)
	summary, err := f.engine.RunStage(context.Background(), models.StepAdd, job.ID, models.StageRequest{
		Items: verify.Details["items"].([]models.VerifiedItem),
	})
	require.NoError(t, err)

	added := summary.Details["added"].([]models.AddedCandidate)
	require.Len(t, added, 1)
	assert.Equal(t, "verified", added[0].Status)
}

func TestAddKeepsRejectedStatus(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)

	items := []models.VerifiedItem{{
		Profile: goodProfile("p1", "Ada Example"),
		Score:   0.1,
		Status:  "rejected",
		Notes:   map[string]any{"verify_explanation": "overall score 0.10"},
	}}
	summary, err := f.engine.RunStage(context.Background(), models.StepAdd, job.ID, models.StageRequest{Items: items})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["rejected"])

	added := summary.Details["added"].([]models.AddedCandidate)
	require.Len(t, added, 1)
	assert.Equal(t, "rejected", added[0].Status)
}

// pipeline runs verify+add for one good profile and returns the candidate id.
func (f *workflowFixture) pipeline(t *testing.T, jobID string) string {
	t.Helper()
	verify, err := f.engine.RunStage(context.Background(), models.StepVerify, jobID, models.StageRequest{
		Profiles: []provider.Profile{goodProfile("p1", "Ada Example")},
	})
	require.NoError(t, err)
	summary, err := f.engine.RunStage(context.Background(), models.StepAdd, jobID, models.StageRequest{
		Items: verify.Details["items"].([]models.VerifiedItem),
	})
	require.NoError(t, err)
	added := summary.Details["added"].([]models.AddedCandidate)
	require.Len(t, added, 1)
	return added[0].CandidateID
}

func TestOutreachComposesResumeRequestAndOpensSession(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	candidateID := f.pipeline(t, job.ID)

	summary, err := f.engine.RunStage(context.Background(), models.StepOutreach, job.ID, models.StageRequest{
		CandidateIDs: []string{candidateID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["resume_requests"])
	assert.Equal(t, 1, summary.Counts["sessions_started"])
	assert.Equal(t, 1, summary.Counts["enqueued"])
	assert.Equal(t, 0, summary.Counts["failed"])

	conv, err := f.conversations.EnsureConversation(context.Background(), job.ID, candidateID)
	require.NoError(t, err)

	// The session's recorded intro is the composed copy.
	session, err := f.sessions.GetByConversation(context.Background(), conv.ID)
	require.NoError(t, err)
	events, err := f.sessions.ListEvents(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, events[0].OutboundText, msgs[0].Content)
	assert.Equal(t, "pending", msgs[0].Meta["delivery"])

	actions, err := f.queue.ListByStatus(context.Background(), []string{string(outboundaction.StatusPending)}, job.ID, 10)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, msgs[0].Content, actions[0].Payload["text"])
}

func TestOutreachIntroFlipsVerifiedToOutreached(t *testing.T) {
	cfg := config.DefaultWorkflowConfig()
	cfg.RequireResumeBeforeFinalVerify = false
	f := newWorkflowFixture(t, cfg)
	job := f.seedJob(t)
	candidateID := f.pipeline(t, job.ID)

	summary, err := f.engine.RunStage(context.Background(), models.StepOutreach, job.ID, models.StageRequest{
		CandidateIDs: []string{candidateID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["intros"])
	assert.Equal(t, 0, summary.Counts["sessions_started"])

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, candidateID)
	require.NoError(t, err)
	assert.Equal(t, "outreached", string(match.Status))
}

func TestOutreachReplayDoesNotDuplicate(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	candidateID := f.pipeline(t, job.ID)

	_, err := f.engine.RunStage(context.Background(), models.StepOutreach, job.ID, models.StageRequest{
		CandidateIDs: []string{candidateID},
	})
	require.NoError(t, err)
	second, err := f.engine.RunStage(context.Background(), models.StepOutreach, job.ID, models.StageRequest{
		CandidateIDs: []string{candidateID},
	})
	require.NoError(t, err)

	// Open action and open session both survive; nothing new is enqueued.
	assert.Equal(t, 1, second.Counts["skipped"])
	assert.Equal(t, 0, second.Counts["enqueued"])
	assert.Equal(t, 0, second.Counts["sessions_started"])
	assert.Equal(t, 0, second.Counts["failed"])

	actions, err := f.queue.ListByStatus(context.Background(), []string{string(outboundaction.StatusPending)}, job.ID, 10)
	require.NoError(t, err)
	assert.Len(t, actions, 1)

	conv, err := f.conversations.EnsureConversation(context.Background(), job.ID, candidateID)
	require.NoError(t, err)
	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestOutreachDefaultsToWaitingMatches(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	candidateID := f.pipeline(t, job.ID)

	summary, err := f.engine.RunStage(context.Background(), models.StepOutreach, job.ID, models.StageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["total"])

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, candidateID)
	require.NoError(t, err)
	assert.Equal(t, "needs_resume", string(match.Status))
}

func TestOutreachCountsPerCandidateFailures(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	candidateID := f.pipeline(t, job.ID)

	summary, err := f.engine.RunStage(context.Background(), models.StepOutreach, job.ID, models.StageRequest{
		CandidateIDs: []string{"missing", candidateID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Counts["failed"])
	assert.Equal(t, 1, summary.Counts["resume_requests"])
	assert.Contains(t, summary.Details, "errors")
}
