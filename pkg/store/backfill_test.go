package store

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/test/util"
)

// openTargetBackend wraps a per-test Postgres schema as a store backend.
// Skips unless Postgres tests are enabled.
func openTargetBackend(t *testing.T) *Backend {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	return &Backend{Name: config.BackendPostgres, Dialect: dialect.Postgres, Client: client, DB: db}
}

func TestBackfillAndParity(t *testing.T) {
	target := openTargetBackend(t)
	source := openTestBackend(t)
	ctx := context.Background()

	for _, id := range []string{"job-1", "job-2", "job-3"} {
		_, err := source.Client.Job.Create().
			SetID(id).
			SetTitle("Backend Engineer").
			SetJdText("Go, Postgres").
			SetPreferredLanguages([]string{"en", "de"}).
			Save(ctx)
		require.NoError(t, err)
	}
	seedCandidate(t, source.Client, "cand-1", "prov-1")
	seedCandidate(t, source.Client, "cand-2", "prov-2")

	_, err := source.Client.Match.Create().
		SetID("match-1").
		SetJobID("job-1").
		SetCandidateID("cand-1").
		SetScore(0.82).
		SetStatus("verified").
		SetVerificationNotes(map[string]interface{}{"matched_skills": []interface{}{"go"}}).
		Save(ctx)
	require.NoError(t, err)

	_, err = source.Client.Conversation.Create().
		SetID("conv-1").
		SetJobID("job-1").
		SetCandidateID("cand-1").
		Save(ctx)
	require.NoError(t, err)

	for _, text := range []string{"intro message", "reply"} {
		_, err = source.Client.Message.Create().
			SetConversationID("conv-1").
			SetDirection("outbound").
			SetContent(text).
			SetMeta(map[string]interface{}{"type": "intro"}).
			Save(ctx)
		require.NoError(t, err)
	}

	_, err = source.Client.CandidateSignal.Create().
		SetJobID("job-1").
		SetCandidateID("cand-1").
		SetSourceType("operation_log").
		SetSourceID("log-1").
		SetSignalType("outreach_sent").
		SetCategory("communication").
		SetTitle("Outreach sent").
		SetImpact(0.6).
		SetConfidence(0.55).
		SetSignalMeta(map[string]interface{}{"role": "administrative"}).
		SetObservedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	report, err := Backfill(ctx, source, target, BackfillOptions{BatchSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 10, report.TotalCopied)
	assert.Zero(t, report.TotalSkipped)

	byTable := make(map[string]TableStat)
	for _, ts := range report.Tables {
		byTable[ts.Table] = ts
	}
	assert.Equal(t, 3, byTable["jobs"].Copied)
	assert.Equal(t, 2, byTable["candidates"].Copied)
	assert.Equal(t, 2, byTable["messages"].Copied)
	assert.Equal(t, 1, byTable["candidate_signals"].Copied)

	parity, err := ParityReport(ctx, source, target, ParityOptions{Deep: true})
	require.NoError(t, err)
	assert.Equal(t, "ok", parity.Status)
	for _, tp := range parity.Tables {
		assert.True(t, tp.Equal, "table %s", tp.Table)
	}

	// JSON coercion must survive a typed read on the target.
	job, err := target.Client.Job.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de"}, job.PreferredLanguages)
	match, err := target.Client.Match.Get(ctx, "match-1")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"go"}, match.VerificationNotes["matched_skills"])

	// Replaying is a no-op thanks to ON CONFLICT DO NOTHING.
	report, err = Backfill(ctx, source, target, BackfillOptions{})
	require.NoError(t, err)
	assert.Zero(t, report.TotalCopied)
	assert.Equal(t, 10, report.TotalSkipped)

	// Sequence reset: the target must accept new serial rows after carrying
	// over explicit ids.
	_, err = target.Client.Message.Create().
		SetConversationID("conv-1").
		SetDirection("inbound").
		SetContent("fresh row on the server side").
		Save(ctx)
	require.NoError(t, err)
}

func TestParityDetectsDrift(t *testing.T) {
	target := openTargetBackend(t)
	source := openTestBackend(t)
	ctx := context.Background()

	seedJob(t, source.Client, "job-1")
	_, err := Backfill(ctx, source, target, BackfillOptions{})
	require.NoError(t, err)

	seedJob(t, source.Client, "job-2")

	parity, err := ParityReport(ctx, source, target, ParityOptions{Deep: true, SampleLimit: 5, Tables: []string{"jobs"}})
	require.NoError(t, err)
	require.Equal(t, "mismatch", parity.Status)
	require.Len(t, parity.Tables, 1)
	tp := parity.Tables[0]
	assert.Equal(t, 2, tp.SourceCount)
	assert.Equal(t, 1, tp.TargetCount)
	assert.Equal(t, []string{"job-2"}, tp.MissingInTarget)
	assert.Empty(t, tp.ExtraInTarget)
}

func TestBackfillRejectsUnknownTable(t *testing.T) {
	_, err := selectTables([]string{"jobs", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestBackfillTruncateFirst(t *testing.T) {
	target := openTargetBackend(t)
	source := openTestBackend(t)
	ctx := context.Background()

	seedJob(t, source.Client, "job-1")
	_, err := Backfill(ctx, source, target, BackfillOptions{})
	require.NoError(t, err)

	// Mutate the target copy, then re-run with truncate: the source wins.
	_, err = target.Client.Job.UpdateOneID("job-1").SetTitle("Drifted").Save(ctx)
	require.NoError(t, err)

	report, err := Backfill(ctx, source, target, BackfillOptions{TruncateFirst: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCopied)

	job, err := target.Client.Job.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
}
