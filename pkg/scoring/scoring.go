// Package scoring composes per-agent assessment scores into one overall
// verdict per candidate. Pure policy: callers gather the scorecard, the
// policy only does arithmetic and gating.
package scoring

import (
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/models"
)

// Agent keys the policy weighs. Communication counts only from the dialogue
// stage onward.
const (
	AgentSourcing      = "sourcing_vetting"
	AgentCommunication = "communication"
	AgentInterview     = "interview_evaluation"

	StageDialogue = "dialogue"
)

// Overall statuses.
const (
	StatusShortlist = "shortlist"
	StatusPipeline  = "pipeline"
	StatusReview    = "review"
	StatusBlocked   = "blocked"
)

// Cap names recorded on the verdict when a gate trimmed the score.
const (
	CapWithoutCV             = "cap_without_cv"
	CapWithoutInterviewScore = "cap_without_interview_score"
)

// Input is one candidate's state at composition time. CandidateStatus is the
// pre-resume session status when a session exists, empty otherwise.
type Input struct {
	Scorecard       []models.ScorecardEntry
	CandidateStatus string
	ResumeReceived  bool
}

// Policy composes scorecards under the configured weights and gates.
type Policy struct {
	cfg *config.ScoringConfig
}

// NewPolicy creates a policy. A nil config uses the built-in defaults.
func NewPolicy(cfg *config.ScoringConfig) *Policy {
	if cfg == nil {
		cfg = config.DefaultScoringConfig()
	}
	return &Policy{cfg: cfg}
}

// Compose produces the overall verdict for one candidate.
//
// The weighted average renormalizes over the agents that actually scored.
// A blocked candidate or communication status short-circuits to blocked with
// score zero. Caps apply only while the scorecard is incomplete, and the
// numeric score is reported only once all three agents have scored.
func (p *Policy) Compose(in Input) models.OverallScore {
	latest := latestPerAgent(in.Scorecard)

	if reason := p.blockReason(in.CandidateStatus, latest); reason != "" {
		zero := 0.0
		return models.OverallScore{
			Score:       &zero,
			Status:      StatusBlocked,
			BlockReason: reason,
		}
	}

	var weighted, weightSum float64
	scored := make(map[string]bool, len(latest))
	for agent, entry := range latest {
		if entry.Score == nil {
			continue
		}
		if agent == AgentCommunication && entry.StageKey != StageDialogue {
			continue
		}
		weight := p.cfg.AgentWeights[agent]
		if weight <= 0 {
			continue
		}
		weighted += weight * *entry.Score
		weightSum += weight
		scored[agent] = true
	}
	if weightSum == 0 {
		return models.OverallScore{Status: StatusReview}
	}
	score := weighted / weightSum

	complete := scored[AgentSourcing] && scored[AgentCommunication] && scored[AgentInterview]

	out := models.OverallScore{}
	if !complete {
		if !in.ResumeReceived && score > p.cfg.CapWithoutCV {
			score = p.cfg.CapWithoutCV
			out.CapApplied = CapWithoutCV
		}
		if !scored[AgentInterview] && score > p.cfg.CapWithoutInterviewScore {
			score = p.cfg.CapWithoutInterviewScore
			out.CapApplied = CapWithoutInterviewScore
		}
	}

	switch {
	case !complete:
		out.Status = StatusReview
	case score >= p.cfg.ShortlistMin:
		out.Status = StatusShortlist
	case score >= p.cfg.PipelineMin:
		out.Status = StatusPipeline
	default:
		out.Status = StatusReview
	}
	if complete {
		out.Score = &score
	}
	return out
}

// blockReason returns the blocking status, candidate status first, then the
// communication agent's latest status regardless of stage.
func (p *Policy) blockReason(candidateStatus string, latest map[string]models.ScorecardEntry) string {
	if p.isBlocked(candidateStatus) {
		return candidateStatus
	}
	if comm, ok := latest[AgentCommunication]; ok && p.isBlocked(comm.Status) {
		return comm.Status
	}
	return ""
}

func (p *Policy) isBlocked(status string) bool {
	for _, blocked := range p.cfg.BlockedStatuses {
		if status == blocked {
			return true
		}
	}
	return false
}

func latestPerAgent(entries []models.ScorecardEntry) map[string]models.ScorecardEntry {
	latest := make(map[string]models.ScorecardEntry, len(entries))
	for _, entry := range entries {
		latest[entry.AgentKey] = entry
	}
	return latest
}
