package cleanup

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

func newTestStore(t *testing.T) *store.Switchboard {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })
	return sb
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		Enabled:          true,
		IdempotencyTTL:   config.Duration(24 * time.Hour),
		OperationLogDays: 90,
		SweepInterval:    config.Duration(time.Hour),
	}
}

func TestService_PrunesExpiredIdempotencyRecords(t *testing.T) {
	sb := newTestStore(t)
	idem := services.NewIdempotencyService(sb)
	ctx := context.Background()

	old, err := idem.Store(ctx, "POST /api/v1/jobs", "key-old", services.HashPayload([]byte(`{}`)), 201, `{"id":"job-1"}`)
	require.NoError(t, err)
	// created_at is immutable in the schema; age the row behind the ORM.
	_, err = sb.Primary().DB.ExecContext(ctx,
		`UPDATE idempotency_records SET created_at = ? WHERE id = ?`,
		time.Now().Add(-48*time.Hour), old.ID)
	require.NoError(t, err)

	fresh, err := idem.Store(ctx, "POST /api/v1/jobs", "key-fresh", services.HashPayload([]byte(`{}`)), 201, `{"id":"job-2"}`)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sb)
	svc.Sweep(ctx)

	_, err = idem.Lookup(ctx, "POST /api/v1/jobs", "key-old")
	assert.ErrorIs(t, err, services.ErrNotFound)

	kept, err := idem.Lookup(ctx, "POST /api/v1/jobs", "key-fresh")
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, kept.ID)
}

func TestService_PrunesOldOperationLogs(t *testing.T) {
	sb := newTestStore(t)
	audit := services.NewAuditService(sb)
	ctx := context.Background()

	old, err := audit.Record(ctx, services.RecordOperationInput{
		Operation: "scheduler.message_sent",
		JobID:     "job-1",
	})
	require.NoError(t, err)
	// created_at is immutable in the schema; age the row behind the ORM.
	_, err = sb.Primary().DB.ExecContext(ctx,
		`UPDATE operation_logs SET created_at = ? WHERE id = ?`,
		time.Now().AddDate(0, 0, -120), old.ID)
	require.NoError(t, err)

	_, err = audit.Record(ctx, services.RecordOperationInput{
		Operation: "poll.inbound_received",
		JobID:     "job-1",
	})
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sb)
	svc.Sweep(ctx)

	rows, err := audit.ListByJob(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "poll.inbound_received", rows[0].Operation)
}

func TestService_SweepsBothBackends(t *testing.T) {
	dir := t.TempDir()
	primary, err := store.OpenSQLite(context.Background(), filepath.Join(dir, "primary.db"))
	require.NoError(t, err)
	secondary, err := store.OpenSQLite(context.Background(), filepath.Join(dir, "secondary.db"))
	require.NoError(t, err)
	sb := store.NewDual(primary, secondary, true)
	t.Cleanup(func() { _ = sb.Close() })

	ctx := context.Background()
	idem := services.NewIdempotencyService(sb)

	row, err := idem.Store(ctx, "POST /api/v1/candidates", "key-1", services.HashPayload([]byte(`{}`)), 201, `{}`)
	require.NoError(t, err)

	// Age the record on both backends; the mirror copied it verbatim.
	// created_at is immutable in the schema, so go behind the ORM.
	stale := time.Now().Add(-48 * time.Hour)
	for _, b := range []*store.Backend{primary, secondary} {
		_, err = b.DB.ExecContext(ctx,
			`UPDATE idempotency_records SET created_at = ? WHERE id = ?`,
			stale, row.ID)
		require.NoError(t, err)
	}

	svc := NewService(retentionConfig(), sb)
	svc.Sweep(ctx)

	for _, c := range []*ent.Client{primary.Client, secondary.Client} {
		n, err := c.IdempotencyRecord.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}

func TestService_StartStop(t *testing.T) {
	sb := newTestStore(t)
	svc := NewService(retentionConfig(), sb)

	svc.Start(context.Background())
	svc.Stop()

	// Stop on a never-started service is a no-op.
	NewService(retentionConfig(), sb).Stop()
}
