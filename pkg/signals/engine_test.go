package signals

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

type engineFixture struct {
	sb     *store.Switchboard
	deps   Services
	engine *Engine
	job    *ent.Job
}

func newEngineFixture(t *testing.T, cfg *config.SignalsConfig) *engineFixture {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })

	deps := Services{
		Matches:     services.NewMatchService(sb),
		Assessments: services.NewAssessmentService(sb),
		Sessions:    services.NewSessionService(sb),
		Audit:       services.NewAuditService(sb),
		Signals:     services.NewSignalService(sb),
	}
	engine, err := NewEngine(cfg, deps, nil)
	require.NoError(t, err)

	job, err := services.NewJobService(sb).CreateJob(context.Background(), models.CreateJobRequest{
		Title:    "Backend Engineer",
		JDText:   "Go, Postgres, distributed systems",
		Location: "Berlin",
	})
	require.NoError(t, err)

	return &engineFixture{sb: sb, deps: deps, engine: engine, job: job}
}

func (f *engineFixture) candidate(t *testing.T, providerID string) *ent.Candidate {
	t.Helper()
	cand, err := services.NewCandidateService(f.sb).UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: providerID,
		FullName:   "Dana Smith",
	})
	require.NoError(t, err)
	return cand
}

func (f *engineFixture) match(t *testing.T, candidateID string, score float64, status string) *ent.Match {
	t.Helper()
	m, err := f.deps.Matches.EnsureMatch(context.Background(), f.job.ID, candidateID, score, status, nil)
	require.NoError(t, err)
	return m
}

func TestEngineIngestJob(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	cand := f.candidate(t, "prov-ingest")
	f.match(t, cand.ID, 0.8, "verified")

	score := 85.0
	_, err := f.deps.Assessments.UpsertAssessment(ctx, services.UpsertAssessmentInput{
		JobID:       f.job.ID,
		CandidateID: cand.ID,
		AgentKey:    "sourcing_vetting",
		StageKey:    "intake",
		Score:       &score,
		Status:      "completed",
	})
	require.NoError(t, err)

	_, err = f.deps.Sessions.CreateSession(ctx, services.CreateSessionInput{
		JobID:       f.job.ID,
		CandidateID: cand.ID,
		Event:       &services.SessionEventInput{EventType: "session_started", Status: "awaiting_reply"},
	})
	require.NoError(t, err)

	_, err = f.deps.Audit.Record(ctx, services.RecordOperationInput{
		Operation:   "agent.outreach",
		Status:      "sent",
		EntityType:  "conversation",
		JobID:       f.job.ID,
		CandidateID: cand.ID,
	})
	require.NoError(t, err)
	// Request plumbing outside the tracked prefixes never becomes a signal.
	_, err = f.deps.Audit.Record(ctx, services.RecordOperationInput{
		Operation:   "api.create_job",
		Status:      "ok",
		JobID:       f.job.ID,
		CandidateID: cand.ID,
	})
	require.NoError(t, err)

	report, err := f.engine.IngestJob(ctx, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 4, report.Created)
	assert.Equal(t, map[string]int{
		SourceMatchSnapshot:  1,
		SourceAssessment:     1,
		SourcePreResumeEvent: 1,
		SourceOperationLog:   1,
	}, report.Sources)

	t.Run("re-ingestion is idempotent", func(t *testing.T) {
		again, err := f.engine.IngestJob(ctx, f.job.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, again.Total)
		assert.Equal(t, 0, again.Created)

		count, err := f.sb.Reader().CandidateSignal.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("stored signals carry the classification", func(t *testing.T) {
		rows, err := f.deps.Signals.ListByJob(ctx, f.job.ID)
		require.NoError(t, err)
		byType := make(map[string]*ent.CandidateSignal, len(rows))
		for _, row := range rows {
			byType[string(row.SourceType)] = row
		}

		assessment := byType[SourceAssessment]
		require.NotNil(t, assessment)
		assert.Equal(t, RoleEvaluative, assessment.SignalMeta["role"])
		assert.Equal(t, 1.0, assessment.SignalMeta["weight"])
		assert.Equal(t, "v1", assessment.SignalMeta["rules_version"])
		assert.InDelta(t, 1.4, assessment.Impact, 1e-9)

		operation := byType[SourceOperationLog]
		require.NotNil(t, operation)
		assert.Equal(t, RoleEvaluative, operation.SignalMeta["role"])
		assert.Equal(t, 0.5, operation.SignalMeta["weight"])
	})
}

func TestEngineIngestSkipsUnmatchedCandidates(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	matched := f.candidate(t, "prov-matched")
	stray := f.candidate(t, "prov-stray")
	f.match(t, matched.ID, 0.7, "sourced")

	for _, candidateID := range []string{matched.ID, stray.ID} {
		_, err := f.deps.Assessments.UpsertAssessment(ctx, services.UpsertAssessmentInput{
			JobID:       f.job.ID,
			CandidateID: candidateID,
			AgentKey:    "sourcing_vetting",
			StageKey:    "intake",
			Status:      "qualified",
		})
		require.NoError(t, err)
	}

	report, err := f.engine.IngestJob(ctx, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sources[SourceAssessment])

	rows, err := f.deps.Signals.ListByJob(ctx, f.job.ID)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, matched.ID, row.CandidateID)
	}
}

func TestBuildJobViewImpact(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	cand := f.candidate(t, "prov-view")
	f.match(t, cand.ID, 0.8, "verified")

	observed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	_, _, err := f.deps.Signals.UpsertSignal(ctx, services.UpsertSignalInput{
		JobID:       f.job.ID,
		CandidateID: cand.ID,
		SourceType:  SourceOperationLog,
		SourceID:    "log-1",
		SignalType:  "operation_result",
		Category:    CategoryOperations,
		Title:       "scheduler.dispatch ok",
		Impact:      2.0,
		Confidence:  0.55,
		Meta:        map[string]any{"role": RoleAdministrative, "weight": 0.0},
		ObservedAt:  observed,
	})
	require.NoError(t, err)
	_, _, err = f.deps.Signals.UpsertSignal(ctx, services.UpsertSignalInput{
		JobID:       f.job.ID,
		CandidateID: cand.ID,
		SourceType:  SourceAssessment,
		SourceID:    "as-1",
		SignalType:  "assessment_verdict",
		Category:    CategoryAssessment,
		Title:       "sourcing_vetting verdict",
		Impact:      1.5,
		Confidence:  0.8,
		Meta:        map[string]any{"role": RoleEvaluative, "weight": 1.0},
		ObservedAt:  observed.Add(time.Hour),
	})
	require.NoError(t, err)

	view, err := f.engine.BuildJobView(ctx, f.job.ID, nil)
	require.NoError(t, err)
	require.Len(t, view.Candidates, 1)

	row := view.Candidates[0]
	assert.InDelta(t, 80, row.BaseScore, 1e-9)
	// Only the evaluative signal moves the score: 1.5 x 4 points.
	assert.InDelta(t, 6, row.ImpactPoints, 1e-9)
	assert.InDelta(t, 86, row.LiveScore, 1e-9)
	assert.Equal(t, 2, row.SignalsTotal)
	assert.Equal(t, 1, row.SignalsEvaluative)
	assert.Equal(t, 1, row.Rank)
	assert.Equal(t, 1, row.PreviousRank)
	assert.Equal(t, 0, row.RankDelta)

	require.Len(t, view.Timeline, 2)
	assert.Equal(t, "as-1", view.Timeline[0].SourceID, "newest signal first")
	assert.Equal(t, map[string]int{CategoryOperations: 1, CategoryAssessment: 1}, view.CategoryCounts)
}

func TestBuildJobViewRankDelta(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	leader := f.candidate(t, "prov-leader")
	runner := f.candidate(t, "prov-runner")
	f.match(t, leader.ID, 0.80, "verified")
	f.match(t, runner.ID, 0.78, "verified")

	upsert := func(candidateID, sourceID string, impact float64) {
		t.Helper()
		_, _, err := f.deps.Signals.UpsertSignal(ctx, services.UpsertSignalInput{
			JobID:       f.job.ID,
			CandidateID: candidateID,
			SourceType:  SourcePreResumeEvent,
			SourceID:    sourceID,
			SignalType:  "conversation_event",
			Category:    CategoryConversation,
			Title:       "Conversation",
			Impact:      impact,
			Confidence:  0.75,
			Meta:        map[string]any{"role": RoleEvaluative, "weight": 1.0},
			ObservedAt:  time.Now(),
		})
		require.NoError(t, err)
	}
	upsert(leader.ID, "ev-1", -1.0)
	upsert(runner.ID, "ev-2", 2.0)

	view, err := f.engine.BuildJobView(ctx, f.job.ID, nil)
	require.NoError(t, err)
	require.Len(t, view.Candidates, 2)

	first, second := view.Candidates[0], view.Candidates[1]
	assert.Equal(t, runner.ID, first.CandidateID)
	assert.InDelta(t, 86, first.LiveScore, 1e-9)
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, 2, first.PreviousRank)
	assert.Equal(t, 1, first.RankDelta)

	assert.Equal(t, leader.ID, second.CandidateID)
	assert.InDelta(t, 76, second.LiveScore, 1e-9)
	assert.Equal(t, -1, second.RankDelta)

	for _, row := range view.Candidates {
		assert.LessOrEqual(t, row.LiveScore, 100.0)
		assert.GreaterOrEqual(t, row.LiveScore, 0.0)
		assert.LessOrEqual(t, abs(row.LiveScore-row.BaseScore), 30.0)
	}
}

func TestBuildJobViewFilters(t *testing.T) {
	cfg := config.DefaultSignalsConfig()
	cfg.TimelineLimit = 1
	f := newEngineFixture(t, cfg)
	ctx := context.Background()
	keep := f.candidate(t, "prov-keep")
	drop := f.candidate(t, "prov-drop")
	f.match(t, keep.ID, 0.9, "verified")
	f.match(t, drop.ID, 0.4, "rejected")

	for i, candidateID := range []string{keep.ID, keep.ID, drop.ID} {
		_, _, err := f.deps.Signals.UpsertSignal(ctx, services.UpsertSignalInput{
			JobID:       f.job.ID,
			CandidateID: candidateID,
			SourceType:  SourceOperationLog,
			SourceID:    "log-" + string(rune('a'+i)),
			SignalType:  "operation_result",
			Category:    CategoryOperations,
			Title:       "agent.source ok",
			Impact:      0.6,
			Confidence:  0.55,
			Meta:        map[string]any{"role": RoleAdministrative, "weight": 0.0},
			ObservedAt:  time.Now().Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	view, err := f.engine.BuildJobView(ctx, f.job.ID, []string{"verified"})
	require.NoError(t, err)
	require.Len(t, view.Candidates, 1)
	assert.Equal(t, keep.ID, view.Candidates[0].CandidateID)
	assert.Equal(t, 2, view.Candidates[0].SignalsTotal, "rejected candidate's signals are excluded")
	assert.Len(t, view.Timeline, 1, "timeline honors the configured cap")
	assert.Equal(t, map[string]int{CategoryOperations: 2}, view.CategoryCounts)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
