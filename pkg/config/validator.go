package config

import (
	"fmt"
	"math"
)

// Validate checks the resolved configuration and fails fast with a clear
// message on the first problem found.
func Validate(cfg *Config) error {
	if err := validateMatching(cfg.Matching); err != nil {
		return fmt.Errorf("matching: %w", err)
	}
	if err := validatePreResume(cfg.PreResume); err != nil {
		return fmt.Errorf("pre_resume: %w", err)
	}
	if err := validateScoring(cfg.Scoring); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if err := validateDispatch(cfg.Dispatch); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if err := validateWorkflow(cfg.Workflow); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}
	if err := validateSignals(cfg.Signals); err != nil {
		return fmt.Errorf("signals: %w", err)
	}
	if err := validateStore(cfg.Store); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := validateLLM(cfg.LLM); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := validateRetention(cfg.Retention); err != nil {
		return fmt.Errorf("retention: %w", err)
	}
	return nil
}

func validateMatching(m *MatchingConfig) error {
	sum := m.SkillsWeight + m.SeniorityWeight + m.LocationWeight + m.LanguageWeight
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("component weights must sum to 1.0, got %.4f", sum)
	}
	if m.VerifyThreshold < 0 || m.VerifyThreshold > 1 {
		return fmt.Errorf("verify_threshold must be in [0,1], got %.4f", m.VerifyThreshold)
	}
	for name, band := range m.SeniorityBands {
		if band.MinYears < 0 || band.MaxYears < band.MinYears {
			return fmt.Errorf("seniority band %q has invalid range [%.1f, %.1f]", name, band.MinYears, band.MaxYears)
		}
	}
	return nil
}

func validatePreResume(p *PreResumeConfig) error {
	if len(p.FollowupDelayHours) == 0 {
		return fmt.Errorf("followup_delay_hours must not be empty")
	}
	for i, h := range p.FollowupDelayHours {
		if h <= 0 {
			return fmt.Errorf("followup_delay_hours[%d] must be positive, got %d", i, h)
		}
	}
	if p.MaxFollowups <= 0 {
		return fmt.Errorf("max_followups must be positive, got %d", p.MaxFollowups)
	}
	if p.DefaultLanguage == "" {
		return fmt.Errorf("default_language must not be empty")
	}
	return nil
}

func validateScoring(s *ScoringConfig) error {
	if len(s.AgentWeights) == 0 {
		return fmt.Errorf("agent_weights must not be empty")
	}
	for agent, w := range s.AgentWeights {
		if w < 0 {
			return fmt.Errorf("agent weight for %q must be non-negative, got %.4f", agent, w)
		}
	}
	if s.CapWithoutCV <= 0 || s.CapWithoutInterviewScore <= 0 {
		return fmt.Errorf("score caps must be positive")
	}
	if s.PipelineMin > s.ShortlistMin {
		return fmt.Errorf("pipeline_min (%.1f) must not exceed shortlist_min (%.1f)", s.PipelineMin, s.ShortlistMin)
	}
	return nil
}

func validateDispatch(d *DispatchConfig) error {
	switch d.Mode {
	case DispatchModeQueued, DispatchModeInline:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", DispatchModeQueued, DispatchModeInline, d.Mode)
	}
	if d.DailyNewThreads <= 0 {
		return fmt.Errorf("daily_new_threads must be positive, got %d", d.DailyNewThreads)
	}
	if d.WeeklyConnects <= 0 {
		return fmt.Errorf("weekly_connects must be positive, got %d", d.WeeklyConnects)
	}
	if d.WarmupDays < 0 {
		return fmt.Errorf("warmup_days must not be negative, got %d", d.WarmupDays)
	}
	if d.WarmupStartFraction < 0 || d.WarmupStartFraction > 1 {
		return fmt.Errorf("warmup_start_fraction must be in [0,1], got %.4f", d.WarmupStartFraction)
	}
	if d.BatchLimit <= 0 {
		return fmt.Errorf("batch_limit must be positive, got %d", d.BatchLimit)
	}
	return nil
}

func validateWorkflow(w *WorkflowConfig) error {
	if w.SourceLimit <= 0 {
		return fmt.Errorf("source_limit must be positive, got %d", w.SourceLimit)
	}
	if w.MaxQueries <= 0 {
		return fmt.Errorf("max_queries must be positive, got %d", w.MaxQueries)
	}
	if w.PollMessageLimit <= 0 {
		return fmt.Errorf("poll_message_limit must be positive, got %d", w.PollMessageLimit)
	}
	return nil
}

func validateSignals(s *SignalsConfig) error {
	if s.ImpactMultiplier <= 0 {
		return fmt.Errorf("impact_multiplier must be positive, got %.4f", s.ImpactMultiplier)
	}
	if s.MaxImpactPoints <= 0 {
		return fmt.Errorf("max_impact_points must be positive, got %.4f", s.MaxImpactPoints)
	}
	if s.TimelineLimit <= 0 {
		return fmt.Errorf("timeline_limit must be positive, got %d", s.TimelineLimit)
	}
	return nil
}

func validateStore(s *StoreConfig) error {
	if s.SQLitePath == "" {
		return fmt.Errorf("sqlite_path must not be empty")
	}
	switch s.ReadSource {
	case BackendSQLite:
	case BackendPostgres:
		if s.PostgresDSN == "" {
			return fmt.Errorf("read_source=postgres requires postgres_dsn")
		}
	default:
		return fmt.Errorf("read_source must be %q or %q, got %q", BackendSQLite, BackendPostgres, s.ReadSource)
	}
	if s.DualWrite && s.PostgresDSN == "" {
		return fmt.Errorf("dual_write requires postgres_dsn")
	}
	return nil
}

func validateRetention(r *RetentionConfig) error {
	if !r.Enabled {
		return nil
	}
	if r.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency_ttl must be positive, got %s", r.IdempotencyTTL.Std())
	}
	if r.OperationLogDays <= 0 {
		return fmt.Errorf("operation_log_days must be positive, got %d", r.OperationLogDays)
	}
	if r.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive, got %s", r.SweepInterval.Std())
	}
	return nil
}

func validateLLM(l *LLMConfig) error {
	switch l.Provider {
	case LLMProviderStatic:
	case LLMProviderGRPC:
		if l.Address == "" {
			return fmt.Errorf("provider=grpc requires address")
		}
	case LLMProviderAnthropic:
		if l.APIKeyEnv == "" {
			return fmt.Errorf("provider=anthropic requires api_key_env")
		}
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}
	return nil
}
