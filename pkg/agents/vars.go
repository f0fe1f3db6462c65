// Package agents holds the conversational composers between the workflow
// and the LLM responder: first-touch outreach copy and FAQ replies. Every
// composer renders a deterministic template first and only then asks the
// responder to improve it, so an unconfigured or failing LLM never blocks
// the pipeline.
package agents

import (
	"strings"
	"unicode/utf8"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/preresume"
)

// Sources a composed text can come from.
const (
	SourceTemplate = "template"
	SourceLLM      = "llm"
)

// OutreachVars builds the template values for a (job, candidate) pair.
// The same values seed a pre-resume session so the whole thread speaks
// about the role consistently.
func OutreachVars(job *ent.Job, cand *ent.Candidate) preresume.Vars {
	return preresume.Vars{
		Name:               FirstName(cand.FullName),
		JobTitle:           job.Title,
		ScopeSummary:       scopeSummary(job),
		CoreProfileSummary: profileSummary(cand),
	}
}

// CandidateLanguage picks the outreach language from the candidate's
// profile languages, falling back to the template default.
func CandidateLanguage(cand *ent.Candidate, fallback string) string {
	for _, raw := range cand.Languages {
		if lang := normalizeLanguage(raw); lang != "" {
			return lang
		}
	}
	return fallback
}

// FirstName returns the leading name token, or a neutral greeting filler.
func FirstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}

var languageNames = map[string]string{
	"english": "en",
	"russian": "ru",
	"spanish": "es",
	"german":  "de",
	"french":  "fr",
}

// normalizeLanguage maps provider language values ("English", "en-US",
// "ru") onto two-letter codes; unrecognized values yield "".
func normalizeLanguage(raw string) string {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if lang == "" {
		return ""
	}
	if mapped, ok := languageNames[lang]; ok {
		return mapped
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if len(lang) == 2 {
		return lang
	}
	return ""
}

const maxScopeRunes = 180

// scopeSummary is the JD's first sentence, capped for chat.
func scopeSummary(job *ent.Job) string {
	text := strings.TrimSpace(job.JdText)
	if text == "" {
		return ""
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if i := strings.Index(text, ". "); i >= 0 {
		text = text[:i+1]
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > maxScopeRunes {
		runes := []rune(text)
		text = string(runes[:maxScopeRunes]) + "..."
	}
	return text
}

func profileSummary(cand *ent.Candidate) string {
	if h := strings.TrimSpace(cand.Headline); h != "" {
		return h
	}
	skills := cand.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	return strings.Join(skills, ", ")
}
