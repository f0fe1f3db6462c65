package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

var profileNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

// scriptedResponder counts calls and replies with a fixed script.
type scriptedResponder struct {
	reply string
	err   error
	calls int
}

func (r *scriptedResponder) GenerateCandidateReply(context.Context, llm.Request) (string, error) {
	r.calls++
	return r.reply, r.err
}

type profileFixture struct {
	sb            *store.Switchboard
	jobs          *services.JobService
	candidates    *services.CandidateService
	matches       *services.MatchService
	assessments   *services.AssessmentService
	sessions      *services.SessionService
	conversations *services.ConversationService
	messages      *services.MessageService
	signals       *services.SignalService
	audit         *services.AuditService
	manager       *preresume.Manager
	builder       *Builder
}

func newProfileFixture(t *testing.T, responder llm.Responder) *profileFixture {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })

	f := &profileFixture{
		sb:            sb,
		jobs:          services.NewJobService(sb),
		candidates:    services.NewCandidateService(sb),
		matches:       services.NewMatchService(sb),
		assessments:   services.NewAssessmentService(sb),
		sessions:      services.NewSessionService(sb),
		conversations: services.NewConversationService(sb),
		messages:      services.NewMessageService(sb),
		signals:       services.NewSignalService(sb),
		audit:         services.NewAuditService(sb),
	}
	f.manager = preresume.NewManager(nil, f.sessions, nil, nil)
	f.builder = NewBuilder(nil, Deps{
		Jobs:          f.jobs,
		Candidates:    f.candidates,
		Matches:       f.matches,
		Assessments:   f.assessments,
		Sessions:      f.sessions,
		Conversations: f.conversations,
		Messages:      f.messages,
		Signals:       f.signals,
		Audit:         f.audit,
	}, scoring.NewPolicy(nil), responder, nil)
	f.builder.now = func() time.Time { return profileNow }
	return f
}

func (f *profileFixture) seedJob(t *testing.T) *ent.Job {
	t.Helper()
	job, err := f.jobs.CreateJob(context.Background(), models.CreateJobRequest{
		Title:     "Backend Engineer",
		JDText:    "Senior engineer. Go, Postgres and Kubernetes required. Remote team with strong ownership.",
		Seniority: "senior",
	})
	require.NoError(t, err)
	return job
}

func (f *profileFixture) seedCandidate(t *testing.T) *ent.Candidate {
	t.Helper()
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID:      "p1",
		FullName:        "Ada Lovelace",
		Headline:        "Backend developer",
		Skills:          []string{"go", "postgres", "kubernetes"},
		YearsExperience: 6,
	})
	require.NoError(t, err)
	return cand
}

func (f *profileFixture) seedMatch(t *testing.T, jobID, candidateID string, notes map[string]any) *ent.Match {
	t.Helper()
	if notes == nil {
		notes = map[string]any{
			"skills_score":       1.0,
			"seniority_score":    1.0,
			"location_score":     0.0,
			"language_score":     1.0,
			"required_skills":    []string{"go", "postgres", "kubernetes"},
			"matched_skills":     []string{"go", "postgres", "kubernetes"},
			"target_seniority":   "senior",
			"rules_version":      "2025-02",
			"verify_explanation": "overall score 0.85: skills 1.00 (3/3 matched), seniority 1.00 (senior), location 0.00, language 1.00",
		}
	}
	match, err := f.matches.EnsureMatch(context.Background(), jobID, candidateID, 0.85, "verified", notes)
	require.NoError(t, err)
	return match
}

func (f *profileFixture) seedAssessment(t *testing.T, jobID, candidateID, agent, stage string, score float64) {
	t.Helper()
	_, err := f.assessments.UpsertAssessment(context.Background(), services.UpsertAssessmentInput{
		JobID:       jobID,
		CandidateID: candidateID,
		AgentKey:    agent,
		StageKey:    stage,
		Score:       &score,
		Status:      "completed",
	})
	require.NoError(t, err)
}

func (f *profileFixture) seedSession(t *testing.T, jobID, candidateID string) *ent.PreResumeSession {
	t.Helper()
	conv, err := f.conversations.EnsureConversation(context.Background(), jobID, candidateID)
	require.NoError(t, err)
	res, err := f.manager.StartSession(context.Background(), preresume.StartSessionInput{
		ConversationID: conv.ID,
		JobID:          jobID,
		CandidateID:    candidateID,
		CandidateName:  "Ada",
		JobTitle:       "Backend Engineer",
	})
	require.NoError(t, err)
	return res.Session
}

func (f *profileFixture) seedSignal(t *testing.T, jobID, candidateID, sourceID string, impact float64) {
	t.Helper()
	_, _, err := f.signals.UpsertSignal(context.Background(), services.UpsertSignalInput{
		JobID:       jobID,
		CandidateID: candidateID,
		SourceType:  "operation_log",
		SourceID:    sourceID,
		SignalType:  "agent.outreach",
		Category:    "progress",
		Title:       "outreach sent",
		Impact:      impact,
		Confidence:  1,
		ObservedAt:  profileNow,
	})
	require.NoError(t, err)
}

func TestBuildRequiresCandidateID(t *testing.T) {
	f := newProfileFixture(t, nil)

	_, err := f.builder.Build(context.Background(), Request{})
	assert.True(t, services.IsValidationError(err))
}

func TestBuildUnknownCandidate(t *testing.T) {
	f := newProfileFixture(t, nil)

	_, err := f.builder.Build(context.Background(), Request{CandidateID: "missing"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBuildUnknownJob(t *testing.T) {
	f := newProfileFixture(t, nil)
	cand := f.seedCandidate(t)

	_, err := f.builder.Build(context.Background(), Request{CandidateID: cand.ID, JobID: "missing"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBuildAggregatesSection(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)
	f.seedAssessment(t, job.ID, cand.ID, scoring.AgentSourcing, "verify", 85)
	f.seedSession(t, job.ID, cand.ID)
	f.seedSignal(t, job.ID, cand.ID, "log-1", 2)

	conv, err := f.conversations.EnsureConversation(ctx, job.ID, cand.ID)
	require.NoError(t, err)
	_, _, err = f.messages.AddMessage(ctx, services.AddMessageInput{
		ConversationID: conv.ID, Direction: "outbound", Content: "hello",
	})
	require.NoError(t, err)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID})
	require.NoError(t, err)

	assert.Equal(t, cand.ID, view.Candidate.ID)
	assert.Equal(t, profileNow, view.GeneratedAt)
	require.Len(t, view.Jobs, 1)

	sec := view.Jobs[0]
	assert.Equal(t, job.ID, sec.Job.ID)
	require.NotNil(t, sec.Match)
	assert.InDelta(t, 0.85, sec.Match.Score, 0.0001)

	assert.InDelta(t, 1.0, sec.Fit.SkillsScore, 0.0001)
	assert.InDelta(t, 0.0, sec.Fit.LocationScore, 0.0001)
	assert.Equal(t, []string{"go", "postgres", "kubernetes"}, sec.Fit.MatchedSkills)
	assert.Equal(t, "senior", sec.Fit.TargetSeniority)
	assert.Contains(t, sec.Fit.Explanation, "score")

	require.Len(t, sec.Scorecard, 1)
	assert.Equal(t, scoring.AgentSourcing, sec.Scorecard[0].AgentKey)

	// One agent scored and no CV yet: capped, incomplete, no numeric score.
	assert.Equal(t, scoring.StatusReview, sec.Overall.Status)
	assert.Equal(t, scoring.CapWithoutCV, sec.Overall.CapApplied)
	assert.Nil(t, sec.Overall.Score)

	require.NotNil(t, sec.Session)
	assert.Equal(t, preresume.StatusAwaitingReply, sec.Session.Status)
	require.NotEmpty(t, sec.Session.Events)
	assert.Equal(t, "session_started", sec.Session.Events[0].Type)

	require.Len(t, sec.Conversations, 1)
	assert.Equal(t, conv.ID, sec.Conversations[0].ID)
	assert.Equal(t, 1, sec.Conversations[0].Messages)

	require.Len(t, sec.Timeline, 1)
	assert.Equal(t, "outreach sent", sec.Timeline[0].Title)

	assert.Empty(t, sec.Audit)
	assert.Empty(t, sec.Explanation)
	assert.Nil(t, sec.Culture)
}

func TestBuildListsAllJobsWithoutJobID(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	cand := f.seedCandidate(t)
	first := f.seedJob(t)
	second, err := f.jobs.CreateJob(ctx, models.CreateJobRequest{
		Title:  "Platform Engineer",
		JDText: "Kubernetes platform work.",
	})
	require.NoError(t, err)

	f.seedMatch(t, first.ID, cand.ID, nil)
	_, err = f.matches.EnsureMatch(ctx, second.ID, cand.ID, 0.5, "rejected", map[string]any{"reason": "missing_mandatory_fields"})
	require.NoError(t, err)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID})
	require.NoError(t, err)

	require.Len(t, view.Jobs, 2)
	// Highest score first.
	assert.Equal(t, first.ID, view.Jobs[0].Job.ID)
	assert.Equal(t, second.ID, view.Jobs[1].Job.ID)
	assert.Equal(t, "missing_mandatory_fields", view.Jobs[1].Fit.Reason)
}

func TestBuildSectionWithoutMatch(t *testing.T) {
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)

	view, err := f.builder.Build(context.Background(), Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	require.Len(t, view.Jobs, 1)
	sec := view.Jobs[0]
	assert.Nil(t, sec.Match)
	assert.Equal(t, SourceFallback, sec.ExplanationSource)
	assert.Contains(t, sec.Explanation, "No screening verdict")
}

func TestBuildIncludesAuditOnRequest(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)

	_, err := f.audit.Record(ctx, services.RecordOperationInput{
		JobID:       job.ID,
		CandidateID: cand.ID,
		Operation:   "agent.outreach",
		Status:      "ok",
	})
	require.NoError(t, err)

	plain, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID})
	require.NoError(t, err)
	assert.Empty(t, plain.Jobs[0].Audit)

	audited, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, IncludeAudit: true})
	require.NoError(t, err)
	require.Len(t, audited.Jobs[0].Audit, 1)
	assert.Equal(t, "agent.outreach", audited.Jobs[0].Audit[0].Operation)
}

func TestExplainFallbackIsDeterministic(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)
	f.seedAssessment(t, job.ID, cand.ID, scoring.AgentSourcing, "verify", 85)
	f.seedSession(t, job.ID, cand.ID)

	first, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)
	second, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	sec := first.Jobs[0]
	assert.Equal(t, SourceFallback, sec.ExplanationSource)
	assert.Contains(t, sec.Explanation, "Screening for Backend Engineer scored 0.85")
	assert.Contains(t, sec.Explanation, "3/3 required skills matched")
	assert.Contains(t, sec.Explanation, "awaiting_reply")
	assert.Contains(t, sec.Explanation, "scorecard incomplete")
	assert.Contains(t, sec.Explanation, scoring.CapWithoutCV)

	assert.Equal(t, sec.Explanation, second.Jobs[0].Explanation)
}

func TestExplainUsesResponderAndCaches(t *testing.T) {
	ctx := context.Background()
	responder := &scriptedResponder{reply: "Strong backend fit with matching stack."}
	f := newProfileFixture(t, responder)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)

	first, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, first.Jobs[0].ExplanationSource)
	assert.Equal(t, responder.reply, first.Jobs[0].Explanation)

	callsAfterFirst := responder.calls

	second, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)
	assert.Equal(t, SourceCache, second.Jobs[0].ExplanationSource)
	assert.Equal(t, responder.reply, second.Jobs[0].Explanation)

	// Fit and culture both hit the cache; no new responder calls.
	assert.Equal(t, callsAfterFirst, responder.calls)
}

func TestExplainFallsBackOnResponderError(t *testing.T) {
	ctx := context.Background()
	responder := &scriptedResponder{err: errors.New("llm down")}
	f := newProfileFixture(t, responder)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	sec := view.Jobs[0]
	assert.Equal(t, SourceFallback, sec.ExplanationSource)
	assert.Contains(t, sec.Explanation, "Screening for Backend Engineer")
	require.NotNil(t, sec.Culture)
	assert.Equal(t, SourceFallback, sec.Culture.Source)
}

func TestExplainRegeneratesWhenSignalsChange(t *testing.T) {
	ctx := context.Background()
	responder := &scriptedResponder{reply: "Looks solid."}
	f := newProfileFixture(t, responder)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)

	_, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)
	callsAfterFirst := responder.calls

	f.seedSignal(t, job.ID, cand.ID, "log-2", 1)

	second, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, second.Jobs[0].ExplanationSource)
	assert.Greater(t, responder.calls, callsAfterFirst)
}

func TestCultureValuesFromMatchNotes(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	notes := map[string]any{
		"skills_score":   1.0,
		"company_values": []string{"craftsmanship", "kindness"},
	}
	f.seedMatch(t, job.ID, cand.ID, notes)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	require.NotNil(t, view.Jobs[0].Culture)
	assert.Equal(t, []string{"craftsmanship", "kindness"}, view.Jobs[0].Culture.Values)
}

func TestCultureValuesInferredFromJD(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	// "Remote team with strong ownership" in the JD.
	culture := view.Jobs[0].Culture
	require.NotNil(t, culture)
	assert.Equal(t, []string{"remote-first", "collaboration", "ownership"}, culture.Values)
}

func TestCultureBandsScores(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)
	f.seedAssessment(t, job.ID, cand.ID, scoring.AgentCommunication, scoring.StageDialogue, 82)
	f.seedAssessment(t, job.ID, cand.ID, scoring.AgentInterview, "interview", 45)

	session := f.seedSession(t, job.ID, cand.ID)
	_, err := f.sb.Writer().PreResumeSession.UpdateOneID(session.ID).
		SetStatus(preresumesession.StatusResumeReceived).
		Save(ctx)
	require.NoError(t, err)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	culture := view.Jobs[0].Culture
	require.NotNil(t, culture)
	assert.Contains(t, culture.Highlights, "communication scored 82/100")
	assert.Contains(t, culture.Highlights, "shared a resume when asked")
	assert.Contains(t, culture.Concerns, "interview scored 45/100")
	assert.Equal(t, SourceFallback, culture.Source)
	assert.Contains(t, culture.Summary, "Company values")
	assert.Contains(t, culture.Summary, "Open questions")
}

func TestCultureConcernsWhenUnscored(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID, Explain: true})
	require.NoError(t, err)

	culture := view.Jobs[0].Culture
	require.NotNil(t, culture)
	assert.Contains(t, culture.Concerns, "communication not yet scored")
	assert.Contains(t, culture.Concerns, "interview not yet scored")
}

func TestResumeReceivedLiftsCap(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(t, nil)
	job := f.seedJob(t)
	cand := f.seedCandidate(t)
	f.seedMatch(t, job.ID, cand.ID, nil)
	f.seedAssessment(t, job.ID, cand.ID, scoring.AgentSourcing, "verify", 75)

	view, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID})
	require.NoError(t, err)
	assert.Equal(t, scoring.CapWithoutCV, view.Jobs[0].Overall.CapApplied)

	_, err = f.matches.UpdateStatus(ctx, job.ID, cand.ID, "resume_received")
	require.NoError(t, err)

	lifted, err := f.builder.Build(ctx, Request{CandidateID: cand.ID, JobID: job.ID})
	require.NoError(t, err)
	assert.Empty(t, lifted.Jobs[0].Overall.CapApplied)
}
