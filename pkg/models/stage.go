package models

import "github.com/hireflow/scout/pkg/provider"

// Workflow step names, in pipeline order.
const (
	StepSource   = "source"
	StepEnrich   = "enrich"
	StepVerify   = "verify"
	StepAdd      = "add"
	StepOutreach = "outreach"
)

// Steps lists the runnable pipeline steps in order.
var Steps = []string{StepSource, StepEnrich, StepVerify, StepAdd, StepOutreach}

// StageRequest is the payload of a run_stage call. Each stage reads the
// fields it needs: source takes the limit, enrich and verify take profiles,
// add takes verified items, outreach takes candidate ids. Instructions are
// free-form per-stage knobs recorded in the step progress output.
type StageRequest struct {
	Limit        int                `json:"limit,omitempty"`
	Profiles     []provider.Profile `json:"profiles,omitempty"`
	Items        []VerifiedItem     `json:"items,omitempty"`
	CandidateIDs []string           `json:"candidate_ids,omitempty"`
	Instructions map[string]any     `json:"instructions,omitempty"`
}

// StageSummary is the recorded output of one stage run.
type StageSummary struct {
	Step    string         `json:"step"`
	JobID   string         `json:"job_id"`
	Status  string         `json:"status"`
	Counts  map[string]int `json:"counts,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// VerifiedItem is one profile with its screening verdict, produced by the
// verify stage and consumed by add.
type VerifiedItem struct {
	Profile provider.Profile `json:"profile"`
	Score   float64          `json:"score"`
	Status  string           `json:"status"`
	Notes   map[string]any   `json:"notes"`
}

// AddedCandidate maps a verified profile to its stored candidate id.
type AddedCandidate struct {
	CandidateID string  `json:"candidate_id"`
	MatchID     string  `json:"match_id"`
	Score       float64 `json:"score"`
	Status      string  `json:"status"`
}
