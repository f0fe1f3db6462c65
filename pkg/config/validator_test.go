package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidate_Matching(t *testing.T) {
	t.Run("rejects weights that do not sum to 1.0", func(t *testing.T) {
		cfg := Defaults()
		cfg.Matching.SkillsWeight = 0.9
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weights must sum to 1.0")
	})

	t.Run("rejects out-of-range threshold", func(t *testing.T) {
		cfg := Defaults()
		cfg.Matching.VerifyThreshold = 1.5
		require.Error(t, Validate(cfg))
	})

	t.Run("rejects inverted seniority band", func(t *testing.T) {
		cfg := Defaults()
		cfg.Matching.SeniorityBands["broken"] = SeniorityBand{MinYears: 5, MaxYears: 2}
		require.Error(t, Validate(cfg))
	})
}

func TestValidate_Store(t *testing.T) {
	t.Run("postgres read source requires dsn", func(t *testing.T) {
		cfg := Defaults()
		cfg.Store.ReadSource = BackendPostgres
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "postgres_dsn")
	})

	t.Run("dual write requires dsn", func(t *testing.T) {
		cfg := Defaults()
		cfg.Store.DualWrite = true
		require.Error(t, Validate(cfg))
	})

	t.Run("unknown read source rejected", func(t *testing.T) {
		cfg := Defaults()
		cfg.Store.ReadSource = "mysql"
		require.Error(t, Validate(cfg))
	})
}

func TestValidate_Dispatch(t *testing.T) {
	cfg := Defaults()
	cfg.Dispatch.WarmupStartFraction = 1.2
	require.Error(t, Validate(cfg))
}

func TestValidate_LLM(t *testing.T) {
	t.Run("grpc requires address", func(t *testing.T) {
		cfg := Defaults()
		cfg.LLM.Provider = LLMProviderGRPC
		require.Error(t, Validate(cfg))
	})

	t.Run("anthropic accepts default key env", func(t *testing.T) {
		cfg := Defaults()
		cfg.LLM.Provider = LLMProviderAnthropic
		require.NoError(t, Validate(cfg))
	})
}
