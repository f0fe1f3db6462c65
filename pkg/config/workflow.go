package config

import "time"

// WorkflowConfig controls the stage pipeline and background tickers.
type WorkflowConfig struct {
	// SourceLimit is the default number of profiles collected per source run.
	SourceLimit int `yaml:"source_limit"`

	// MaxQueries caps the query phrases built from a job for sourcing.
	MaxQueries int `yaml:"max_queries"`

	// RequireResumeBeforeFinalVerify switches outreach to a resume request
	// when the match still needs a CV.
	RequireResumeBeforeFinalVerify bool `yaml:"require_resume_before_final_verify"`

	// FollowupTickInterval is the period of the follow-up ticker. Zero
	// disables the ticker.
	FollowupTickInterval Duration `yaml:"followup_tick_interval"`

	// PollTickInterval is the period of the inbound poller. Zero disables
	// the poller.
	PollTickInterval Duration `yaml:"poll_tick_interval"`

	// PollMessageLimit is how many provider messages are fetched per chat
	// on each poll pass.
	PollMessageLimit int `yaml:"poll_message_limit"`

	// ProviderTimeout bounds each provider call made by a stage.
	ProviderTimeout Duration `yaml:"provider_timeout"`
}

// DefaultWorkflowConfig returns the built-in workflow defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		SourceLimit:                    50,
		MaxQueries:                     20,
		RequireResumeBeforeFinalVerify: true,
		FollowupTickInterval:           0,
		PollTickInterval:               0,
		PollMessageLimit:               20,
		ProviderTimeout:                Duration(30 * time.Second),
	}
}
