package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/store"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a single sqlite-backed switchboard in a temp dir.
// Mirror() is a nil no-op, so service tests exercise the write path
// without a second backend.
func newTestStore(t *testing.T) *store.Switchboard {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })
	return sb
}

func seedTestJob(t *testing.T, sb *store.Switchboard) *ent.Job {
	t.Helper()
	job, err := NewJobService(sb).CreateJob(context.Background(), models.CreateJobRequest{
		Title:     "Backend Engineer",
		JDText:    "Go, Postgres, distributed systems",
		Location:  "Berlin",
		Seniority: "senior",
	})
	require.NoError(t, err)
	return job
}

func seedTestCandidate(t *testing.T, sb *store.Switchboard, providerID string) *ent.Candidate {
	t.Helper()
	cand, err := NewCandidateService(sb).UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: providerID,
		FullName:   "Dana Smith",
		Headline:   "Senior Go Engineer",
		Location:   "Berlin",
		Languages:  []string{"en", "de"},
		Skills:     []string{"go", "postgres"},
	})
	require.NoError(t, err)
	return cand
}

func seedTestConversation(t *testing.T, sb *store.Switchboard, jobID, candidateID string) *ent.Conversation {
	t.Helper()
	conv, err := NewConversationService(sb).EnsureConversation(context.Background(), jobID, candidateID)
	require.NoError(t, err)
	return conv
}
