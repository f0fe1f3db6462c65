package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/models"
)

func TestCandidateService_UpsertCandidate(t *testing.T) {
	sb := newTestStore(t)
	svc := NewCandidateService(sb)
	ctx := context.Background()

	t.Run("creates then refreshes by provider id", func(t *testing.T) {
		first, err := svc.UpsertCandidate(ctx, models.UpsertCandidateRequest{
			ProviderID: "prov-1",
			FullName:   "Dana Smith",
			Headline:   "Go Engineer",
			Skills:     []string{"go"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)

		second, err := svc.UpsertCandidate(ctx, models.UpsertCandidateRequest{
			ProviderID:      "prov-1",
			FullName:        "Dana Smith",
			Headline:        "Staff Go Engineer",
			Skills:          []string{"go", "postgres"},
			YearsExperience: 8,
		})
		require.NoError(t, err)

		// Same row, refreshed fields.
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Staff Go Engineer", second.Headline)
		assert.Equal(t, []string{"go", "postgres"}, second.Skills)
		assert.Equal(t, 8.0, second.YearsExperience)
	})

	t.Run("unset fields survive a refresh", func(t *testing.T) {
		refreshed, err := svc.UpsertCandidate(ctx, models.UpsertCandidateRequest{
			ProviderID: "prov-1",
			FullName:   "Dana Smith",
		})
		require.NoError(t, err)
		assert.Equal(t, "Staff Go Engineer", refreshed.Headline)
		assert.Equal(t, 8.0, refreshed.YearsExperience)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.UpsertCandidate(ctx, models.UpsertCandidateRequest{FullName: "X"})
		assert.True(t, IsValidationError(err))

		_, err = svc.UpsertCandidate(ctx, models.UpsertCandidateRequest{ProviderID: "p"})
		assert.True(t, IsValidationError(err))
	})
}

func TestCandidateService_Lookups(t *testing.T) {
	sb := newTestStore(t)
	svc := NewCandidateService(sb)
	ctx := context.Background()

	a := seedTestCandidate(t, sb, "prov-a")
	b := seedTestCandidate(t, sb, "prov-b")

	t.Run("get by id and provider id", func(t *testing.T) {
		got, err := svc.GetCandidate(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "prov-a", got.ProviderID)

		got, err = svc.GetByProviderID(ctx, "prov-b")
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)

		_, err = svc.GetCandidate(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.GetByProviderID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by ids preserves order and skips missing", func(t *testing.T) {
		rows, err := svc.ListByIDs(ctx, []string{b.ID, "missing", a.ID})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, b.ID, rows[0].ID)
		assert.Equal(t, a.ID, rows[1].ID)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		rows, err := svc.ListByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, rows)
	})
}
