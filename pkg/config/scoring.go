package config

// ScoringConfig controls how per-agent scores compose into an overall score.
type ScoringConfig struct {
	// AgentWeights weight each agent's latest score. Weights are renormalized
	// over the inputs actually present.
	AgentWeights map[string]float64 `yaml:"agent_weights"`

	// BlockedStatuses zero the overall score when the candidate or the
	// communication agent reports one of them.
	BlockedStatuses []string `yaml:"blocked_statuses"`

	// CapWithoutCV caps the overall score until a CV has been received.
	CapWithoutCV float64 `yaml:"cap_without_cv"`

	// CapWithoutInterviewScore caps the overall score until an interview
	// evaluation exists.
	CapWithoutInterviewScore float64 `yaml:"cap_without_interview_score"`

	// ShortlistMin and PipelineMin classify the overall status.
	ShortlistMin float64 `yaml:"shortlist_min"`
	PipelineMin  float64 `yaml:"pipeline_min"`
}

// DefaultScoringConfig returns the built-in scoring defaults.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		AgentWeights: map[string]float64{
			"sourcing_vetting":     0.45,
			"communication":        0.20,
			"interview_evaluation": 0.35,
		},
		BlockedStatuses:          []string{"not_interested", "unreachable"},
		CapWithoutCV:             70,
		CapWithoutInterviewScore: 80,
		ShortlistMin:             80,
		PipelineMin:              65,
	}
}
