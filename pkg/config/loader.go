package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, and validates the configuration from path.
// A missing file is not an error: the built-in defaults apply as-is.
func Initialize(_ context.Context, path string) (*Config, error) {
	log := slog.With("config_path", path)

	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"read_source", cfg.Store.ReadSource,
		"dual_write", cfg.Store.DualWrite,
		"llm_provider", cfg.LLM.Provider)

	return cfg, nil
}

// Defaults returns a Config with every section at its built-in default.
func Defaults() *Config {
	return &Config{
		Server:    DefaultServerConfig(),
		Store:     DefaultStoreConfig(),
		Matching:  DefaultMatchingConfig(),
		PreResume: DefaultPreResumeConfig(),
		Scoring:   DefaultScoringConfig(),
		Dispatch:  DefaultDispatchConfig(),
		Workflow:  DefaultWorkflowConfig(),
		Signals:   DefaultSignalsConfig(),
		Profile:   DefaultProfileConfig(),
		LLM:       DefaultLLMConfig(),
		Auth:      DefaultAuthConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No configuration file found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = ExpandEnv(data)

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Merge user sections over defaults; unset values keep their default.
	if err := mergeSections(cfg, &user); err != nil {
		return nil, fmt.Errorf("failed to merge %s: %w", path, err)
	}

	return cfg, nil
}

func mergeSections(dst, src *Config) error {
	merge := func(d, s any) error {
		if s == nil {
			return nil
		}
		return mergo.Merge(d, s, mergo.WithOverride)
	}

	type section struct {
		dst, src any
		skip     bool
	}
	sections := []section{
		{dst.Server, src.Server, src.Server == nil},
		{dst.Store, src.Store, src.Store == nil},
		{dst.Matching, src.Matching, src.Matching == nil},
		{dst.PreResume, src.PreResume, src.PreResume == nil},
		{dst.Scoring, src.Scoring, src.Scoring == nil},
		{dst.Dispatch, src.Dispatch, src.Dispatch == nil},
		{dst.Workflow, src.Workflow, src.Workflow == nil},
		{dst.Signals, src.Signals, src.Signals == nil},
		{dst.Profile, src.Profile, src.Profile == nil},
		{dst.LLM, src.LLM, src.LLM == nil},
		{dst.Auth, src.Auth, src.Auth == nil},
		{dst.Retention, src.Retention, src.Retention == nil},
	}
	for _, s := range sections {
		if s.skip {
			continue
		}
		if err := merge(s.dst, s.src); err != nil {
			return err
		}
	}
	return nil
}
