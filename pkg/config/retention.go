package config

import "time"

// RetentionConfig controls the background retention sweep.
type RetentionConfig struct {
	// Enabled turns the sweep loop on. Off by default: single-shot runs
	// and tests rarely want rows disappearing underneath them.
	Enabled bool `yaml:"enabled"`

	// IdempotencyTTL is the maximum age of an idempotency record. Replays
	// arrive within minutes of the original request; anything older only
	// grows the table.
	IdempotencyTTL Duration `yaml:"idempotency_ttl"`

	// OperationLogDays is how many days of operation log to keep. Entries
	// already ingested as signals survive the prune as signal rows.
	OperationLogDays int `yaml:"operation_log_days"`

	// SweepInterval is how often the sweep loop runs.
	SweepInterval Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:          false,
		IdempotencyTTL:   Duration(24 * time.Hour),
		OperationLogDays: 90,
		SweepInterval:    Duration(12 * time.Hour),
	}
}
