package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "scout.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 0.65, cfg.Matching.VerifyThreshold)
	assert.Equal(t, []int{48, 72, 72}, cfg.PreResume.FollowupDelayHours)
	assert.Equal(t, 3, cfg.PreResume.MaxFollowups)
	assert.Equal(t, 25, cfg.Dispatch.DailyNewThreads)
	assert.Equal(t, BackendSQLite, cfg.Store.ReadSource)
	assert.Equal(t, LLMProviderStatic, cfg.LLM.Provider)
}

func TestInitialize_MergesUserValuesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.yaml")
	content := `
matching:
  verify_threshold: 0.7
pre_resume:
  followup_delay_hours: [24, 48]
  max_followups: 2
dispatch:
  daily_new_threads: 10
  provider_timeout: "45s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Matching.VerifyThreshold)
	assert.Equal(t, []int{24, 48}, cfg.PreResume.FollowupDelayHours)
	assert.Equal(t, 2, cfg.PreResume.MaxFollowups)
	assert.Equal(t, 10, cfg.Dispatch.DailyNewThreads)
	assert.Equal(t, 45*time.Second, cfg.Dispatch.ProviderTimeout.Std())

	// Untouched sections keep their defaults.
	assert.Equal(t, 80, cfg.Dispatch.WeeklyConnects)
	assert.Equal(t, float64(30), cfg.Signals.MaxImpactPoints)
}

func TestInitialize_ExpandsEnvironment(t *testing.T) {
	t.Setenv("SCOUT_TEST_DSN", "postgres://scout:secret@db:5432/scout")

	dir := t.TempDir()
	path := filepath.Join(dir, "scout.yaml")
	content := `
store:
  postgres_dsn: "{{.SCOUT_TEST_DSN}}"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://scout:secret@db:5432/scout", cfg.Store.PostgresDSN)
}

func TestInitialize_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scout.yaml")
	content := `
pre_resume:
  followup_delay_hours: [0]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "followup_delay_hours")
}
