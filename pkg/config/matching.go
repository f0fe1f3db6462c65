package config

// MatchingConfig controls the deterministic fit computation.
type MatchingConfig struct {
	// Weights combine the four component scores. They must sum to 1.0.
	SkillsWeight    float64 `yaml:"skills_weight"`
	SeniorityWeight float64 `yaml:"seniority_weight"`
	LocationWeight  float64 `yaml:"location_weight"`
	LanguageWeight  float64 `yaml:"language_weight"`

	// VerifyThreshold is the minimum score for a verified verdict.
	VerifyThreshold float64 `yaml:"verify_threshold"`

	// SkillDictionary is the curated skill vocabulary matched against JD
	// text. A user-supplied list replaces the built-in one.
	SkillDictionary []string `yaml:"skill_dictionary"`

	// SeniorityBands maps a band name to the experience range in years.
	SeniorityBands map[string]SeniorityBand `yaml:"seniority_bands"`

	// RulesVersion is stamped into verification notes for auditability.
	RulesVersion string `yaml:"rules_version"`
}

// SeniorityBand is an inclusive range of years of experience.
type SeniorityBand struct {
	MinYears float64 `yaml:"min_years"`
	MaxYears float64 `yaml:"max_years"`
}

// DefaultMatchingConfig returns the built-in matching defaults.
func DefaultMatchingConfig() *MatchingConfig {
	return &MatchingConfig{
		SkillsWeight:    0.40,
		SeniorityWeight: 0.25,
		LocationWeight:  0.20,
		LanguageWeight:  0.15,
		VerifyThreshold: 0.65,
		SkillDictionary: []string{
			"go", "golang", "python", "java", "kotlin", "scala", "rust", "c++",
			"typescript", "javascript", "react", "node", "graphql", "grpc",
			"kubernetes", "docker", "terraform", "aws", "gcp", "azure",
			"postgresql", "postgres", "mysql", "sqlite", "redis", "kafka",
			"rabbitmq", "elasticsearch", "mongodb", "microservices", "rest",
			"ci/cd", "linux", "sql", "nosql", "django", "spring", "flask",
		},
		SeniorityBands: map[string]SeniorityBand{
			"junior": {MinYears: 0, MaxYears: 2},
			"middle": {MinYears: 2, MaxYears: 5},
			"senior": {MinYears: 5, MaxYears: 9},
			"lead":   {MinYears: 8, MaxYears: 40},
		},
		RulesVersion: "v1",
	}
}
