package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/senderaccount"
)

func TestAccountService_UpsertAccount(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAccountService(sb)
	ctx := context.Background()

	t.Run("creates pending by default", func(t *testing.T) {
		acc, err := svc.UpsertAccount(ctx, UpsertAccountInput{
			ProviderAccountID: "acct-1",
			Label:             "Recruiting A",
		})
		require.NoError(t, err)
		assert.Equal(t, senderaccount.StatusPending, acc.Status)
		assert.Nil(t, acc.ConnectedAt)
	})

	t.Run("refresh keeps the id and stamps connect", func(t *testing.T) {
		acc, err := svc.UpsertAccount(ctx, UpsertAccountInput{
			ProviderAccountID: "acct-1",
			ProviderUserID:    "user-9",
			Status:            "connected",
		})
		require.NoError(t, err)
		assert.Equal(t, senderaccount.StatusConnected, acc.Status)
		assert.NotNil(t, acc.ConnectedAt)
		assert.Equal(t, "Recruiting A", acc.Label)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.UpsertAccount(ctx, UpsertAccountInput{
			ProviderAccountID: "acct-2",
			Status:            "paused",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestAccountService_SetStatusAndList(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAccountService(sb)
	ctx := context.Background()

	first, err := svc.UpsertAccount(ctx, UpsertAccountInput{ProviderAccountID: "acct-a"})
	require.NoError(t, err)
	_, err = svc.UpsertAccount(ctx, UpsertAccountInput{ProviderAccountID: "acct-b", Status: "connected"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, first.ID, "connected")
	require.NoError(t, err)
	assert.NotNil(t, updated.ConnectedAt)
	assert.NotNil(t, updated.LastSyncedAt)

	connected, err := svc.ListAccounts(ctx, "connected")
	require.NoError(t, err)
	assert.Len(t, connected, 2)

	pending, err := svc.ListAccounts(ctx, "pending")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.SetStatus(ctx, "missing", "connected")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountService_AssignToJob(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAccountService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	acc, err := svc.UpsertAccount(ctx, UpsertAccountInput{ProviderAccountID: "acct-assign"})
	require.NoError(t, err)

	created, err := svc.AssignToJob(ctx, seededJob.ID, acc.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Repeat is a no-op.
	created, err = svc.AssignToJob(ctx, seededJob.ID, acc.ID)
	require.NoError(t, err)
	assert.False(t, created)

	ids, err := svc.AssignedAccountIDs(ctx, seededJob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{acc.ID}, ids)

	_, err = svc.AssignToJob(ctx, seededJob.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
