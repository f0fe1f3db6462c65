package e2e

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/store"
)

// TestDualWrite_PipelineStaysInParity runs the pipeline with the mirror
// armed and proves the secondary backend holds an equal copy, byte for byte
// where it counts: reads keep working after cutting over to the secondary.
func TestDualWrite_PipelineStaysInParity(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	primary, err := store.OpenSQLite(ctx, filepath.Join(dir, "primary.db"))
	require.NoError(t, err)
	secondary, err := store.OpenSQLite(ctx, filepath.Join(dir, "secondary.db"))
	require.NoError(t, err)
	secondary.Name = config.BackendPostgres // names route reads, not dialects

	sb := store.NewDual(primary, secondary, true)
	t.Cleanup(func() { _ = sb.Close() })

	app := NewTestApp(t, WithStore(sb))
	app.Provider.Profiles = []provider.Profile{
		goodProfile("ada", "Ada Example"),
		goodProfile("lin", "Lin Sample"),
	}
	app.ConnectAccount(t, "acct-1")
	job := app.CreateJob(t)

	added := app.SourceToAdd(t, job.ID, 5)
	require.Len(t, added, 2)

	app.RunStage(t, models.StepOutreach, job.ID, models.StageRequest{})
	report, err := app.Dispatcher.Dispatch(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 2, report.Sent)

	conv := app.Conversation(t, job.ID, added[0].CandidateID)
	_, err = app.Workflow.ProcessInbound(ctx, conv.ID, "here you go: https://files.example.com/cv.pdf")
	require.NoError(t, err)

	_, err = app.Signals.IngestJob(ctx, job.ID)
	require.NoError(t, err)

	// Strict mirroring survived the whole run.
	status := sb.Status()
	assert.True(t, status.DualWrite)
	assert.Zero(t, status.MirrorErrors)
	assert.Greater(t, status.MirrorSuccess, int64(0))

	parity, err := store.ParityReport(ctx, primary, secondary, store.ParityOptions{Deep: true})
	require.NoError(t, err)
	require.Equal(t, "ok", parity.Status, "parity tables: %+v", parity.Tables)

	// Cut reads over to the secondary; the app keeps answering from it.
	require.NoError(t, sb.SwitchReadSource(config.BackendPostgres))
	assert.Equal(t, config.BackendPostgres, sb.ReadSource())

	match := app.Match(t, job.ID, added[0].CandidateID)
	assert.Equal(t, "resume_received", string(match.Status))

	transcript := app.Transcript(t, conv.ID)
	assert.Len(t, transcript, 3)

	session, err := app.SessionStore.GetByConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume_received", string(session.Status))

	// And back again.
	require.NoError(t, sb.SwitchReadSource(config.BackendSQLite))
	assert.Equal(t, config.BackendSQLite, sb.ReadSource())
}
