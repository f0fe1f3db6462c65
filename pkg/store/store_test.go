package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
)

// openTestBackend opens an embedded backend on a throwaway file. Mirror and
// switchboard behavior is dialect-independent, so two embedded backends
// stand in for the sqlite+postgres pair.
func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func seedJob(t *testing.T, client *ent.Client, id string) *ent.Job {
	t.Helper()
	row, err := client.Job.Create().
		SetID(id).
		SetTitle("Backend Engineer").
		SetJdText("Go, Postgres, distributed systems").
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func seedCandidate(t *testing.T, client *ent.Client, id, providerID string) *ent.Candidate {
	t.Helper()
	row, err := client.Candidate.Create().
		SetID(id).
		SetProviderID(providerID).
		SetFullName("Dana Smith").
		SetSkills([]string{"go", "postgres"}).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestSwitchReadSource(t *testing.T) {
	primary := openTestBackend(t)
	secondary := openTestBackend(t)
	secondary.Name = config.BackendPostgres // names route reads, not dialects

	sb := NewDual(primary, secondary, false)
	assert.Equal(t, config.BackendSQLite, sb.ReadSource())
	assert.Same(t, primary.Client, sb.Reader())
	assert.Same(t, primary.Client, sb.Writer())

	require.NoError(t, sb.SwitchReadSource(config.BackendPostgres))
	assert.Equal(t, config.BackendPostgres, sb.ReadSource())
	assert.Same(t, secondary.Client, sb.Reader())
	// Writes keep going to the primary regardless of the read source.
	assert.Same(t, primary.Client, sb.Writer())

	err := sb.SwitchReadSource("mysql")
	assert.Error(t, err)
	assert.Equal(t, config.BackendPostgres, sb.ReadSource())
}

func TestSwitchReadSourceSingleBackend(t *testing.T) {
	sb := NewSingle(openTestBackend(t))
	require.NoError(t, sb.SwitchReadSource(config.BackendSQLite))
	assert.Error(t, sb.SwitchReadSource(config.BackendPostgres))
	assert.Nil(t, sb.Mirror())
	assert.False(t, sb.SetStrict(true))
}

func TestMirrorNilReceiverIsNoop(t *testing.T) {
	var m *Mirror
	assert.NoError(t, m.Job(context.Background(), "j-1"))
	assert.NoError(t, m.Message(context.Background(), 1))
	assert.False(t, m.Strict())
	assert.Zero(t, m.Status())
	m.SetStrict(true) // must not panic
}

func TestMirrorJobUpsert(t *testing.T) {
	ctx := context.Background()
	primary := openTestBackend(t)
	secondary := openTestBackend(t)
	sb := NewDual(primary, secondary, true)

	seedJob(t, primary.Client, "job-1")
	require.NoError(t, sb.Mirror().Job(ctx, "job-1"))

	got, err := secondary.Client.Job.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)

	// A second mirror after an update must converge, not conflict.
	_, err = primary.Client.Job.UpdateOneID("job-1").SetTitle("Staff Engineer").Save(ctx)
	require.NoError(t, err)
	require.NoError(t, sb.Mirror().Job(ctx, "job-1"))

	got, err = secondary.Client.Job.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", got.Title)

	st := sb.Mirror().Status()
	assert.Equal(t, int64(2), st.MirrorSuccess)
	assert.Zero(t, st.MirrorErrors)
}

func TestMirrorConversationClearsDroppedChatID(t *testing.T) {
	ctx := context.Background()
	primary := openTestBackend(t)
	secondary := openTestBackend(t)
	sb := NewDual(primary, secondary, true)

	seedJob(t, primary.Client, "job-1")
	seedCandidate(t, primary.Client, "cand-1", "prov-1")
	seedJob(t, secondary.Client, "job-1")
	seedCandidate(t, secondary.Client, "cand-1", "prov-1")

	_, err := primary.Client.Conversation.Create().
		SetID("conv-1").
		SetJobID("job-1").
		SetCandidateID("cand-1").
		SetExternalChatID("chat-9").
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, sb.Mirror().Conversation(ctx, "conv-1"))

	got, err := secondary.Client.Conversation.Get(ctx, "conv-1")
	require.NoError(t, err)
	require.NotNil(t, got.ExternalChatID)
	assert.Equal(t, "chat-9", *got.ExternalChatID)

	// Losing the chat id on the primary must propagate as a clear.
	err = primary.Client.Conversation.UpdateOneID("conv-1").ClearExternalChatID().Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, sb.Mirror().Conversation(ctx, "conv-1"))

	got, err = secondary.Client.Conversation.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Nil(t, got.ExternalChatID)
}

func TestMirrorCarriesSerialIDs(t *testing.T) {
	ctx := context.Background()
	primary := openTestBackend(t)
	secondary := openTestBackend(t)
	sb := NewDual(primary, secondary, true)

	seedJob(t, primary.Client, "job-1")
	seedCandidate(t, primary.Client, "cand-1", "prov-1")
	seedJob(t, secondary.Client, "job-1")
	seedCandidate(t, secondary.Client, "cand-1", "prov-1")

	for _, b := range []*Backend{primary, secondary} {
		_, err := b.Client.Conversation.Create().
			SetID("conv-1").
			SetJobID("job-1").
			SetCandidateID("cand-1").
			Save(ctx)
		require.NoError(t, err)
	}

	// Two rows on the primary, none on the secondary: the ids diverge, so
	// only an explicit id carry can keep them aligned.
	first, err := primary.Client.Message.Create().
		SetConversationID("conv-1").
		SetDirection("outbound").
		SetContent("intro").
		Save(ctx)
	require.NoError(t, err)

	msg, err := primary.Client.Message.Create().
		SetConversationID("conv-1").
		SetDirection("inbound").
		SetContent("hello there").
		SetMeta(map[string]interface{}{"provider_message_id": "pm-1"}).
		Save(ctx)
	require.NoError(t, err)
	require.Greater(t, msg.ID, first.ID)

	require.NoError(t, sb.Mirror().Message(ctx, msg.ID))

	got, err := secondary.Client.Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got.Content)
	assert.Equal(t, "pm-1", got.Meta["provider_message_id"])

	// Replaying the same row is idempotent.
	require.NoError(t, sb.Mirror().Message(ctx, msg.ID))
	n, err := secondary.Client.Message.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMirrorBestEffortSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	primary := openTestBackend(t)
	secondary := openTestBackend(t)
	sb := NewDual(primary, secondary, false)

	seedJob(t, primary.Client, "job-1")
	require.NoError(t, secondary.Close())

	// Best effort: the caller sees success, the counter sees the failure.
	assert.NoError(t, sb.Mirror().Job(ctx, "job-1"))
	st := sb.Status()
	assert.Equal(t, int64(1), st.MirrorErrors)
	assert.Zero(t, st.MirrorSuccess)
	assert.Contains(t, st.LastError, "job")

	// Strict: the same failure propagates.
	require.True(t, sb.SetStrict(true))
	err := sb.Mirror().Job(ctx, "job-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mirror write")
	assert.Equal(t, int64(2), sb.Status().MirrorErrors)
}

func TestMirrorReadBackMissingRow(t *testing.T) {
	ctx := context.Background()
	sb := NewDual(openTestBackend(t), openTestBackend(t), true)

	err := sb.Mirror().Job(ctx, "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read back")
}

func TestStatusReportsBothBackends(t *testing.T) {
	primary := openTestBackend(t)
	secondary := openTestBackend(t)
	secondary.Name = config.BackendPostgres

	sb := NewDual(primary, secondary, true)
	st := sb.Status()
	assert.Equal(t, config.BackendSQLite, st.Primary)
	assert.Equal(t, config.BackendPostgres, st.Secondary)
	assert.Equal(t, config.BackendSQLite, st.ReadSource)
	assert.True(t, st.DualWrite)
	assert.True(t, st.Strict)

	single := NewSingle(openTestBackend(t))
	st = single.Status()
	assert.False(t, st.DualWrite)
	assert.Empty(t, st.Secondary)
}

func TestBuildUpsertDialects(t *testing.T) {
	pg := buildUpsert("postgres", "messages",
		[]string{"id", "conversation_id", "meta"}, []string{"meta"})
	assert.Contains(t, pg, `$3::jsonb`)
	assert.Contains(t, pg, `ON CONFLICT ("id") DO UPDATE SET "meta" = excluded."meta"`)

	lite := buildUpsert("sqlite3", "pre_resume_events",
		[]string{"id", "session_id"}, nil)
	assert.Contains(t, lite, "VALUES (?, ?)")
	assert.Contains(t, lite, `ON CONFLICT ("id") DO NOTHING`)
}
