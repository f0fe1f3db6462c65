package config

// PreResumeConfig controls the pre-resume conversational state machine.
type PreResumeConfig struct {
	// FollowupDelayHours is the wait before each follow-up, indexed by the
	// number of follow-ups already sent (last entry repeats).
	FollowupDelayHours []int `yaml:"followup_delay_hours"`

	// MaxFollowups caps follow-ups per session; reaching the cap stalls the
	// session.
	MaxFollowups int `yaml:"max_followups"`

	// DefaultLanguage is the template fallback language.
	DefaultLanguage string `yaml:"default_language"`

	// TemplatePath points at an optional template bundle YAML. Empty means
	// built-in templates only.
	TemplatePath string `yaml:"template_path"`

	// WatchTemplates enables hot reload of the template bundle on file change.
	WatchTemplates bool `yaml:"watch_templates"`
}

// DefaultPreResumeConfig returns the built-in pre-resume defaults.
func DefaultPreResumeConfig() *PreResumeConfig {
	return &PreResumeConfig{
		FollowupDelayHours: []int{48, 72, 72},
		MaxFollowups:       3,
		DefaultLanguage:    "en",
	}
}
