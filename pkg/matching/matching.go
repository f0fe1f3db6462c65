// Package matching computes the deterministic fit between a job and a
// candidate profile. No I/O: the same inputs always produce the same
// verdict, and every component score is recorded in the notes.
package matching

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/provider"
)

// Verdicts. The values match the match-status enum so stages can store them
// directly.
const (
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Result is one screening verdict with its component breakdown.
type Result struct {
	Score  float64        `json:"score"`
	Status string         `json:"status"`
	Notes  map[string]any `json:"notes"`
}

// Engine scores profiles against jobs using the configured weights, skill
// dictionary, and seniority bands.
type Engine struct {
	cfg *config.MatchingConfig
}

// NewEngine creates an engine. A nil config uses the built-in defaults.
func NewEngine(cfg *config.MatchingConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultMatchingConfig()
	}
	return &Engine{cfg: cfg}
}

// Verify scores one profile against one job.
func (e *Engine) Verify(job *ent.Job, p provider.Profile) Result {
	if missing := missingMandatory(p); len(missing) > 0 {
		return Result{
			Score:  0,
			Status: StatusRejected,
			Notes: map[string]any{
				"reason":        "missing_mandatory_fields",
				"missing":       missing,
				"rules_version": e.cfg.RulesVersion,
			},
		}
	}

	required := e.requiredSkills(job.JdText)
	skillsScore, matched := skillsMatch(required, p.Skills)

	target := e.targetSeniority(job)
	seniorityScore := e.seniorityMatch(target, p.YearsExperience)

	locationScore := locationMatch(job.Location, p.Location)
	languageScore := languageMatch(job.PreferredLanguages, p.Languages)

	score := e.cfg.SkillsWeight*skillsScore +
		e.cfg.SeniorityWeight*seniorityScore +
		e.cfg.LocationWeight*locationScore +
		e.cfg.LanguageWeight*languageScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	status := StatusRejected
	if score >= e.cfg.VerifyThreshold {
		status = StatusVerified
	}

	explanation := fmt.Sprintf(
		"overall score %.2f: skills %.2f (%d/%d matched), seniority %.2f (%s), location %.2f, language %.2f",
		score, skillsScore, len(matched), len(required), seniorityScore, target, locationScore, languageScore,
	)

	return Result{
		Score:  score,
		Status: status,
		Notes: map[string]any{
			"skills_score":       skillsScore,
			"seniority_score":    seniorityScore,
			"location_score":     locationScore,
			"language_score":     languageScore,
			"required_skills":    required,
			"matched_skills":     matched,
			"target_seniority":   target,
			"rules_version":      e.cfg.RulesVersion,
			"verify_explanation": explanation,
		},
	}
}

// RequiredSkills returns the dictionary terms found in a JD text. The
// sourcing stage reuses them as query keywords.
func (e *Engine) RequiredSkills(jdText string) []string {
	return e.requiredSkills(jdText)
}

// missingMandatory lists the profile fields the pipeline cannot work
// without: a display name and at least one stable identifier.
func missingMandatory(p provider.Profile) []string {
	var missing []string
	if strings.TrimSpace(p.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if provider.Identity(p) == "" {
		missing = append(missing, "identity")
	}
	return missing
}

// requiredSkills intersects the skill dictionary with the JD text. Terms
// made of word characters match whole tokens; terms with punctuation
// (c++, ci/cd) match by containment.
func (e *Engine) requiredSkills(jdText string) []string {
	lowered := strings.ToLower(jdText)
	tokens := tokenSet(lowered)

	var required []string
	seen := make(map[string]bool)
	for _, term := range e.cfg.SkillDictionary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		var hit bool
		if isWordTerm(term) {
			hit = tokens[term]
		} else {
			hit = strings.Contains(lowered, term)
		}
		if hit {
			required = append(required, term)
			seen[term] = true
		}
	}
	sort.Strings(required)
	return required
}

// skillsMatch returns the matched fraction and the matched skills. An empty
// required set means a broad role and scores 0.6.
func skillsMatch(required, candidateSkills []string) (float64, []string) {
	matched := []string{}
	if len(required) == 0 {
		return 0.6, matched
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, skill := range required {
		if have[skill] {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)
	return float64(len(matched)) / float64(len(required)), matched
}

// Band inference keywords, checked most-senior-first so "senior team lead"
// lands on lead.
var seniorityKeywords = []struct {
	band  string
	terms []string
}{
	{"lead", []string{"lead", "principal", "staff"}},
	{"senior", []string{"senior"}},
	{"middle", []string{"middle", "mid-level", "mid level"}},
	{"junior", []string{"junior", "entry-level", "entry level"}},
}

// targetSeniority resolves the band to score against: the job's explicit
// seniority when it names a band, else keywords in the JD, else middle.
func (e *Engine) targetSeniority(job *ent.Job) string {
	explicit := strings.ToLower(strings.TrimSpace(job.Seniority))
	if explicit != "" {
		if _, ok := e.cfg.SeniorityBands[explicit]; ok {
			return explicit
		}
		if band := matchSeniority(explicit); band != "" {
			return band
		}
	}
	if band := matchSeniority(strings.ToLower(job.JdText)); band != "" {
		return band
	}
	return "middle"
}

func matchSeniority(lowered string) string {
	tokens := tokenSet(lowered)
	for _, kw := range seniorityKeywords {
		for _, term := range kw.terms {
			if isWordTerm(term) {
				if tokens[term] {
					return kw.band
				}
			} else if strings.Contains(lowered, term) {
				return kw.band
			}
		}
	}
	return ""
}

// seniorityMatch scores years of experience against the target band: in
// band 1.0, within one year of it 0.7, else 0.3.
func (e *Engine) seniorityMatch(target string, years float64) float64 {
	band, ok := e.cfg.SeniorityBands[target]
	if !ok {
		return 1.0
	}
	switch {
	case years >= band.MinYears && years <= band.MaxYears:
		return 1.0
	case years >= band.MinYears-1 && years <= band.MaxYears+1:
		return 0.7
	default:
		return 0.3
	}
}

// locationMatch compares locations: containment either way 1.0, token
// overlap 0.8, otherwise 0.4. A job without a location accepts anywhere.
func locationMatch(jobLocation, candidateLocation string) float64 {
	jl := strings.ToLower(strings.TrimSpace(jobLocation))
	if jl == "" {
		return 1.0
	}
	cl := strings.ToLower(strings.TrimSpace(candidateLocation))
	if cl != "" && (strings.Contains(jl, cl) || strings.Contains(cl, jl)) {
		return 1.0
	}
	jt, ct := tokenSet(jl), tokenSet(cl)
	for token := range jt {
		if len(token) >= 2 && ct[token] {
			return 0.8
		}
	}
	return 0.4
}

// languageMatch scores 1.0 on any overlap or when the job has no language
// preference, 0.3 otherwise.
func languageMatch(preferred, spoken []string) float64 {
	if len(preferred) == 0 {
		return 1.0
	}
	have := make(map[string]bool, len(spoken))
	for _, lang := range spoken {
		have[strings.ToLower(strings.TrimSpace(lang))] = true
	}
	for _, lang := range preferred {
		if have[strings.ToLower(strings.TrimSpace(lang))] {
			return 1.0
		}
	}
	return 0.3
}

// tokenSet splits lowered text into word tokens. '+' and '#' stay inside
// tokens so c++ and c# survive.
func tokenSet(lowered string) map[string]bool {
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func isWordTerm(term string) bool {
	for _, r := range term {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' {
			return false
		}
	}
	return true
}
