package profile

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/metrics"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/scoring"
)

// CultureFit is the alignment view between the company's values and the
// candidate's observed behavior.
type CultureFit struct {
	Values     []string `json:"values,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Concerns   []string `json:"concerns,omitempty"`
	Summary    string   `json:"summary"`
	Source     string   `json:"source"`
}

// Score bands for turning agent verdicts into alignment statements.
const (
	cultureHighlightMin = 70.0
	cultureConcernMax   = 50.0
)

const cultureSystem = "You are a technical recruiting analyst. Assess culture alignment from the company values and the candidate's communication and interview scores in the digest below. Reply with two or three plain sentences. No headers, no lists."

// cultureTokens maps JD words to the value they imply. Used only when the
// match notes carry no explicit company_values.
var cultureTokens = map[string]string{
	"ownership":     "ownership",
	"own":           "ownership",
	"autonomy":      "autonomy",
	"autonomous":    "autonomy",
	"independent":   "autonomy",
	"mentor":        "mentorship",
	"mentoring":     "mentorship",
	"mentorship":    "mentorship",
	"collaborate":   "collaboration",
	"collaboration": "collaboration",
	"collaborative": "collaboration",
	"team":          "collaboration",
	"remote":        "remote-first",
	"distributed":   "remote-first",
	"startup":       "startup pace",
	"fast-paced":    "startup pace",
	"quality":       "engineering quality",
	"craftsmanship": "engineering quality",
	"testing":       "engineering quality",
	"customer":      "customer focus",
	"customers":     "customer focus",
	"product":       "product mindset",
}

// cultureFit builds the alignment view for one section: explicit or inferred
// company values, highlights and concerns from the communication and
// interview verdicts, and a summary under the explanation cache discipline.
func (b *Builder) cultureFit(ctx context.Context, candidateID string, sec *JobSection) *CultureFit {
	fit := &CultureFit{Values: companyValues(sec.Match, sec.Job)}

	comm := latestScore(sec.Scorecard, scoring.AgentCommunication)
	interview := latestScore(sec.Scorecard, scoring.AgentInterview)

	appendBand := func(label string, score *float64) {
		if score == nil {
			fit.Concerns = append(fit.Concerns, label+" not yet scored")
			return
		}
		switch {
		case *score >= cultureHighlightMin:
			fit.Highlights = append(fit.Highlights, fmt.Sprintf("%s scored %.0f/100", label, *score))
		case *score < cultureConcernMax:
			fit.Concerns = append(fit.Concerns, fmt.Sprintf("%s scored %.0f/100", label, *score))
		}
	}
	appendBand("communication", comm)
	appendBand("interview", interview)

	if sec.Session != nil && sec.Session.Status == "resume_received" {
		fit.Highlights = append(fit.Highlights, "shared a resume when asked")
	}

	key := cultureKey(candidateID, sec.Job.ID, fit.Values, comm, interview)
	if cached, ok := b.cache.Get(key); ok {
		metrics.ProfileExplanations.WithLabelValues("culture", SourceCache).Inc()
		fit.Summary, fit.Source = cached, SourceCache
		return fit
	}

	text, err := b.generate(ctx, key, cultureSystem, cultureDigest(sec, fit))
	if err != nil || text == "" {
		if err != nil {
			b.logger.Warn("culture summary generation failed, using fallback",
				"candidate_id", candidateID, "job_id", sec.Job.ID, "error", err)
		}
		metrics.ProfileExplanations.WithLabelValues("culture", SourceFallback).Inc()
		fit.Summary, fit.Source = fallbackCultureSummary(fit), SourceFallback
		return fit
	}

	b.cache.Set(key, text)
	metrics.ProfileExplanations.WithLabelValues("culture", SourceLLM).Inc()
	fit.Summary, fit.Source = text, SourceLLM
	return fit
}

// companyValues reads explicit values from the match notes, falling back to
// JD token inference.
func companyValues(match *ent.Match, job *ent.Job) []string {
	if match != nil {
		if values := noteStrings(match.VerificationNotes, "company_values"); len(values) > 0 {
			return values
		}
	}

	seen := make(map[string]bool, len(cultureTokens))
	var values []string
	words := strings.FieldsFunc(strings.ToLower(job.JdText), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	for _, word := range words {
		value, ok := cultureTokens[word]
		if !ok || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}

// latestScore picks one agent's score off the scorecard.
func latestScore(scorecard []models.ScorecardEntry, agentKey string) *float64 {
	for _, entry := range scorecard {
		if entry.AgentKey == agentKey {
			return entry.Score
		}
	}
	return nil
}

// cultureKey hashes the culture inputs; same digest, same cached summary.
func cultureKey(candidateID, jobID string, values []string, comm, interview *float64) string {
	h := sha1.New()
	fmt.Fprintf(h, "culture|%s|%s|%s|", candidateID, jobID, strings.Join(values, ","))
	if comm != nil {
		fmt.Fprintf(h, "%.2f", *comm)
	}
	h.Write([]byte("|"))
	if interview != nil {
		fmt.Fprintf(h, "%.2f", *interview)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// fallbackCultureSummary renders the deterministic summary from the
// already-computed bands.
func fallbackCultureSummary(fit *CultureFit) string {
	var sb strings.Builder
	if len(fit.Values) > 0 {
		fmt.Fprintf(&sb, "Company values: %s.", strings.Join(fit.Values, ", "))
	} else {
		sb.WriteString("No company values recorded.")
	}
	if len(fit.Highlights) > 0 {
		fmt.Fprintf(&sb, " Alignment: %s.", strings.Join(fit.Highlights, "; "))
	}
	if len(fit.Concerns) > 0 {
		fmt.Fprintf(&sb, " Open questions: %s.", strings.Join(fit.Concerns, "; "))
	}
	return sb.String()
}

// cultureDigest flattens the culture inputs into the responder prompt.
func cultureDigest(sec *JobSection, fit *CultureFit) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Job: %s.\n", sec.Job.Title)
	if len(fit.Values) > 0 {
		fmt.Fprintf(&sb, "Company values: %s.\n", strings.Join(fit.Values, ", "))
	}
	for _, h := range fit.Highlights {
		fmt.Fprintf(&sb, "Alignment: %s.\n", h)
	}
	for _, c := range fit.Concerns {
		fmt.Fprintf(&sb, "Open question: %s.\n", c)
	}
	return sb.String()
}
