package config

// SignalsConfig controls signal ingestion and the live ranking view.
type SignalsConfig struct {
	// RulesPath points at an optional classification ruleset YAML. Empty
	// means built-in rules only.
	RulesPath string `yaml:"rules_path"`

	// RulesVersion is stamped into signal metadata.
	RulesVersion string `yaml:"rules_version"`

	// ImpactMultiplier scales the summed effective impact into live-score
	// points.
	ImpactMultiplier float64 `yaml:"impact_multiplier"`

	// MaxImpactPoints clamps the live-score adjustment to ±MaxImpactPoints.
	MaxImpactPoints float64 `yaml:"max_impact_points"`

	// TimelineLimit caps the number of signals returned in a job view.
	TimelineLimit int `yaml:"timeline_limit"`
}

// DefaultSignalsConfig returns the built-in signals defaults.
func DefaultSignalsConfig() *SignalsConfig {
	return &SignalsConfig{
		RulesVersion:     "v1",
		ImpactMultiplier: 4,
		MaxImpactPoints:  30,
		TimelineLimit:    1000,
	}
}
