package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyService_StoreAndLookup(t *testing.T) {
	sb := newTestStore(t)
	svc := NewIdempotencyService(sb)
	ctx := context.Background()

	hash := HashPayload([]byte(`{"title":"Backend Engineer"}`))

	t.Run("stores and replays by route and key", func(t *testing.T) {
		stored, err := svc.Store(ctx, "POST /api/v1/jobs", "key-1", hash, 201, `{"id":"job-1"}`)
		require.NoError(t, err)
		assert.Equal(t, 201, stored.StatusCode)

		found, err := svc.Lookup(ctx, "POST /api/v1/jobs", "key-1")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, found.ID)
		assert.Equal(t, hash, found.PayloadHash)
		assert.Equal(t, `{"id":"job-1"}`, found.Response)
	})

	t.Run("same key on another route is independent", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "POST /api/v1/candidates", "key-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate store returns the winner", func(t *testing.T) {
		winner, err := svc.Store(ctx, "POST /api/v1/jobs", "key-1", hash, 500, "late write")
		require.NoError(t, err)
		assert.Equal(t, 201, winner.StatusCode)
		assert.Equal(t, `{"id":"job-1"}`, winner.Response)
	})

	t.Run("validates route and key", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "", "key")
		assert.True(t, IsValidationError(err))
		_, err = svc.Store(ctx, "route", "", hash, 200, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestHashPayload(t *testing.T) {
	a := HashPayload([]byte(`{"a":1}`))
	b := HashPayload([]byte(`{"a":1}`))
	c := HashPayload([]byte(`{"a":2}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
