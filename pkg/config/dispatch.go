package config

import "time"

// Dispatch modes.
const (
	// DispatchModeQueued leaves enqueued actions for the ticker or explicit
	// dispatch calls.
	DispatchModeQueued = "queued"

	// DispatchModeInline drains the queue synchronously after the outreach
	// stage enqueues its actions.
	DispatchModeInline = "inline"
)

// DispatchConfig controls the outbound dispatcher and its budgets.
type DispatchConfig struct {
	// Mode is queued or inline.
	Mode string `yaml:"mode"`

	// DailyNewThreads is the per-account daily cap on new message threads.
	DailyNewThreads int `yaml:"daily_new_threads"`

	// WeeklyConnects is the per-account weekly cap on connection requests.
	WeeklyConnects int `yaml:"weekly_connects"`

	// WarmupDays reduces the connect cap while an account is freshly
	// connected. Zero disables the ramp.
	WarmupDays int `yaml:"warmup_days"`

	// WarmupStartFraction is the connect-cap multiplier on the account's
	// first day; it ramps linearly to 1.0 over WarmupDays.
	WarmupStartFraction float64 `yaml:"warmup_start_fraction"`

	// BatchLimit is the default number of actions drained per dispatch call.
	BatchLimit int `yaml:"batch_limit"`

	// TickInterval is the period of the background dispatch ticker. Zero
	// disables the ticker (dispatch happens only on explicit calls).
	TickInterval Duration `yaml:"tick_interval"`

	// ProviderTimeout bounds each provider send call.
	ProviderTimeout Duration `yaml:"provider_timeout"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		Mode:                DispatchModeQueued,
		DailyNewThreads:     25,
		WeeklyConnects:      80,
		WarmupDays:          14,
		WarmupStartFraction: 0.25,
		BatchLimit:          50,
		TickInterval:        0,
		ProviderTimeout:     Duration(30 * time.Second),
	}
}
