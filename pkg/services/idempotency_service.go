package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/idempotencyrecord"
	"github.com/hireflow/scout/pkg/store"
)

// IdempotencyService stores completed responses keyed by (route, key) so a
// replayed mutation returns the original response byte-for-byte. A replay
// with a different payload hash is a conflict surfaced by the caller.
type IdempotencyService struct {
	store *store.Switchboard
}

// NewIdempotencyService creates a new IdempotencyService.
func NewIdempotencyService(sb *store.Switchboard) *IdempotencyService {
	if sb == nil {
		panic("NewIdempotencyService: store must not be nil")
	}
	return &IdempotencyService{store: sb}
}

// HashPayload returns the canonical hash of a request body.
func HashPayload(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Lookup returns the stored record for (route, key), or ErrNotFound.
func (s *IdempotencyService) Lookup(ctx context.Context, route, key string) (*ent.IdempotencyRecord, error) {
	if route == "" || key == "" {
		return nil, NewValidationError("idempotency_key", "route and key are required")
	}
	row, err := s.store.Writer().IdempotencyRecord.Query().
		Where(idempotencyrecord.Route(route), idempotencyrecord.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up idempotency record: %w", err)
	}
	return row, nil
}

// Store records the response of a completed mutation. A concurrent insert
// of the same key returns the winner's record.
func (s *IdempotencyService) Store(ctx context.Context, route, key, payloadHash string, statusCode int, response string) (*ent.IdempotencyRecord, error) {
	if route == "" || key == "" {
		return nil, NewValidationError("idempotency_key", "route and key are required")
	}

	row, err := s.store.Writer().IdempotencyRecord.Create().
		SetRoute(route).
		SetKey(key).
		SetPayloadHash(payloadHash).
		SetStatusCode(statusCode).
		SetResponse(response).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.Lookup(ctx, route, key)
		}
		return nil, fmt.Errorf("failed to store idempotency record: %w", err)
	}

	if err := s.store.Mirror().Idempotency(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}
