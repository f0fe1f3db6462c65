package profile

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/metrics"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/scoring"
)

// Explanation sources.
const (
	SourceLLM      = "llm"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

const explainSystem = "You are a technical recruiting analyst. Explain in three to five plain sentences why the candidate fits or misses the role, using only the digest below. Name the strongest components, the gaps, and the conversation state. No headers, no lists."

// explain produces the fit explanation for one section. The deterministic
// summary is always computable; a configured responder upgrades it, and the
// result is cached by content hash so unchanged inputs skip the call.
func (b *Builder) explain(ctx context.Context, candidateID string, sec *JobSection, signals []*ent.CandidateSignal) (string, string) {
	key := explainKey(candidateID, sec.Job.ID, sec.Overall, sec.Fit, signals)
	if cached, ok := b.cache.Get(key); ok {
		metrics.ProfileExplanations.WithLabelValues("fit", SourceCache).Inc()
		return cached, SourceCache
	}

	text, err := b.generate(ctx, key, explainSystem, explainDigest(sec, signals))
	if err != nil || text == "" {
		if err != nil {
			b.logger.Warn("fit explanation generation failed, using fallback",
				"candidate_id", candidateID, "job_id", sec.Job.ID, "error", err)
		}
		metrics.ProfileExplanations.WithLabelValues("fit", SourceFallback).Inc()
		return fallbackExplanation(sec), SourceFallback
	}

	b.cache.Set(key, text)
	metrics.ProfileExplanations.WithLabelValues("fit", SourceLLM).Inc()
	return text, SourceLLM
}

// generate runs one responder call under the configured timeout.
func (b *Builder) generate(ctx context.Context, sessionID, system, digest string) (string, error) {
	gctx, cancel := context.WithTimeout(ctx, b.cfg.LLMTimeout.Std())
	defer cancel()
	return b.responder.GenerateCandidateReply(gctx, llm.Request{
		SessionID: sessionID,
		System:    system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: digest}},
	})
}

// explainKey hashes everything that shapes an explanation: the pair, the
// composed verdict, the fit components, and the first twenty signals. Any
// drift regenerates; otherwise the cached text is reused until the TTL.
func explainKey(candidateID, jobID string, overall models.OverallScore, fit FitBreakdown, signals []*ent.CandidateSignal) string {
	h := sha1.New()
	fmt.Fprintf(h, "fit|%s|%s|", candidateID, jobID)
	if overall.Score != nil {
		fmt.Fprintf(h, "%.4f", *overall.Score)
	}
	fmt.Fprintf(h, "|%s|%s|%s|", overall.Status, overall.CapApplied, overall.BlockReason)
	fmt.Fprintf(h, "%.4f|%.4f|%.4f|%.4f|%s|%s|",
		fit.SkillsScore, fit.SeniorityScore, fit.LocationScore, fit.LanguageScore,
		strings.Join(fit.MatchedSkills, ","), fit.Reason)
	for i, s := range signals {
		if i == 20 {
			break
		}
		fmt.Fprintf(h, "%s:%s:%.2f|", s.SourceType, s.SourceID, s.Impact)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// fallbackExplanation renders the deterministic summary. Built only from
// repository rows, so the same section always yields the same text.
func fallbackExplanation(sec *JobSection) string {
	var sb strings.Builder

	switch {
	case sec.Match == nil:
		fmt.Fprintf(&sb, "No screening verdict for %s yet.", sec.Job.Title)
	case sec.Fit.Reason != "":
		fmt.Fprintf(&sb, "Rejected for %s: %s", sec.Job.Title, sec.Fit.Reason)
		if len(sec.Fit.Missing) > 0 {
			fmt.Fprintf(&sb, " (missing %s)", strings.Join(sec.Fit.Missing, ", "))
		}
		sb.WriteString(".")
	default:
		fmt.Fprintf(&sb, "Screening for %s scored %.2f", sec.Job.Title, sec.Match.Score)
		if len(sec.Fit.RequiredSkills) > 0 {
			fmt.Fprintf(&sb, " with %d/%d required skills matched", len(sec.Fit.MatchedSkills), len(sec.Fit.RequiredSkills))
			if len(sec.Fit.MatchedSkills) > 0 {
				fmt.Fprintf(&sb, " (%s)", strings.Join(sec.Fit.MatchedSkills, ", "))
			}
		}
		if sec.Fit.TargetSeniority != "" {
			fmt.Fprintf(&sb, ", seniority fit %.2f against %s", sec.Fit.SeniorityScore, sec.Fit.TargetSeniority)
		}
		sb.WriteString(".")
	}

	if sec.Session != nil {
		fmt.Fprintf(&sb, " Conversation is %s after %d turns and %d follow-ups.",
			sec.Session.Status, sec.Session.Turns, sec.Session.FollowupsSent)
	}

	switch {
	case sec.Overall.Status == scoring.StatusBlocked:
		fmt.Fprintf(&sb, " Overall blocked: %s.", sec.Overall.BlockReason)
	case sec.Overall.Score != nil:
		fmt.Fprintf(&sb, " Overall %s at %.0f/100.", sec.Overall.Status, *sec.Overall.Score)
	default:
		fmt.Fprintf(&sb, " Overall %s, scorecard incomplete.", sec.Overall.Status)
	}
	if sec.Overall.CapApplied != "" {
		fmt.Fprintf(&sb, " Score capped by %s.", sec.Overall.CapApplied)
	}

	return sb.String()
}

// explainDigest flattens the section into the prompt the responder sees.
func explainDigest(sec *JobSection, signals []*ent.CandidateSignal) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Job: %s.\n", sec.Job.Title)
	if sec.Match != nil {
		fmt.Fprintf(&sb, "Screening: score %.2f, status %s.\n", sec.Match.Score, sec.Match.Status)
		fmt.Fprintf(&sb, "Components: skills %.2f, seniority %.2f, location %.2f, language %.2f.\n",
			sec.Fit.SkillsScore, sec.Fit.SeniorityScore, sec.Fit.LocationScore, sec.Fit.LanguageScore)
		if len(sec.Fit.MatchedSkills) > 0 {
			fmt.Fprintf(&sb, "Matched skills: %s.\n", strings.Join(sec.Fit.MatchedSkills, ", "))
		}
		if sec.Fit.Reason != "" {
			fmt.Fprintf(&sb, "Rejection reason: %s.\n", sec.Fit.Reason)
		}
	}
	for _, entry := range sec.Scorecard {
		if entry.Score != nil {
			fmt.Fprintf(&sb, "Scorecard %s at %s: %.0f/100 (%s).\n", entry.AgentKey, entry.StageKey, *entry.Score, entry.Status)
		}
	}
	if sec.Session != nil {
		fmt.Fprintf(&sb, "Conversation: %s, %d turns, %d follow-ups", sec.Session.Status, sec.Session.Turns, sec.Session.FollowupsSent)
		if sec.Session.LastIntent != "" {
			fmt.Fprintf(&sb, ", last intent %s", sec.Session.LastIntent)
		}
		sb.WriteString(".\n")
	}
	if sec.Overall.Score != nil {
		fmt.Fprintf(&sb, "Overall: %s at %.0f/100.\n", sec.Overall.Status, *sec.Overall.Score)
	} else {
		fmt.Fprintf(&sb, "Overall: %s.\n", sec.Overall.Status)
	}
	for i, s := range signals {
		if i == 5 {
			break
		}
		fmt.Fprintf(&sb, "Signal: %s, impact %+.1f.\n", s.Title, s.Impact)
	}
	return sb.String()
}
