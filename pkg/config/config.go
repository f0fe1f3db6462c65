// Package config loads, merges, and validates the scout configuration.
//
// Configuration comes from three layers, lowest precedence first:
//  1. Built-in defaults (Default* constructors in this package)
//  2. scout.yaml in the config directory
//  3. Environment variables expanded inside the YAML ({{.VAR}} syntax)
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved scout configuration.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Store     *StoreConfig     `yaml:"store"`
	Matching  *MatchingConfig  `yaml:"matching"`
	PreResume *PreResumeConfig `yaml:"pre_resume"`
	Scoring   *ScoringConfig   `yaml:"scoring"`
	Dispatch  *DispatchConfig  `yaml:"dispatch"`
	Workflow  *WorkflowConfig  `yaml:"workflow"`
	Signals   *SignalsConfig   `yaml:"signals"`
	Profile   *ProfileConfig   `yaml:"profile"`
	LLM       *LLMConfig       `yaml:"llm"`
	Auth      *AuthConfig      `yaml:"auth"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Duration wraps time.Duration so YAML values can be written as "30s" or "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\": %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
