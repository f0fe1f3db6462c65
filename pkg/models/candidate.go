package models

import "github.com/hireflow/scout/ent"

// UpsertCandidateRequest contains the provider-sourced candidate fields.
// Candidates are keyed by provider id; a repeat upsert refreshes the
// mutable fields.
type UpsertCandidateRequest struct {
	ProviderID      string   `json:"provider_id"`
	FullName        string   `json:"full_name"`
	Headline        string   `json:"headline,omitempty"`
	Location        string   `json:"location,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	YearsExperience float64  `json:"years_experience,omitempty"`
}

// ScorecardEntry is one agent's latest verdict at one stage.
type ScorecardEntry struct {
	AgentKey string   `json:"agent_key"`
	StageKey string   `json:"stage_key"`
	Score    *float64 `json:"score,omitempty"`
	Status   string   `json:"status"`
	Reason   string   `json:"reason,omitempty"`
}

// CandidateRow is one candidate of a job listing, with the match verdict and
// the per-agent scorecard.
type CandidateRow struct {
	Candidate *ent.Candidate   `json:"candidate"`
	Match     *ent.Match       `json:"match"`
	Scorecard []ScorecardEntry `json:"scorecard"`
	Overall   *OverallScore    `json:"overall,omitempty"`
}

// OverallScore is the composed verdict of the scoring policy.
type OverallScore struct {
	Score       *float64 `json:"score,omitempty"`
	Status      string   `json:"status"`
	BlockReason string   `json:"block_reason,omitempty"`
	CapApplied  string   `json:"cap_applied,omitempty"`
}
