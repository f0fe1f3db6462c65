package config

import "time"

// ProfileConfig controls the candidate profile builder.
type ProfileConfig struct {
	// ExplainCacheTTL bounds how long an LLM-generated explanation is reused.
	ExplainCacheTTL Duration `yaml:"explain_cache_ttl"`

	// TimelineLimit caps the per-candidate timeline length.
	TimelineLimit int `yaml:"timeline_limit"`

	// LLMTimeout bounds explanation and culture-fit generation calls.
	LLMTimeout Duration `yaml:"llm_timeout"`
}

// DefaultProfileConfig returns the built-in profile defaults.
func DefaultProfileConfig() *ProfileConfig {
	return &ProfileConfig{
		ExplainCacheTTL: Duration(900 * time.Second),
		TimelineLimit:   200,
		LLMTimeout:      Duration(20 * time.Second),
	}
}
