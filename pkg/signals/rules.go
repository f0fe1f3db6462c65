package signals

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hireflow/scout/pkg/services"
)

// Signal roles. Only evaluative signals move the live score; administrative
// and governance signals are recorded and counted.
const (
	RoleEvaluative     = "evaluative"
	RoleAdministrative = "administrative"
	RoleGovernance     = "governance"
)

// Effect is what a matched rule applies to a signal. Unset fields fall back
// to the ruleset defaults.
type Effect struct {
	Role            string    `yaml:"role"`
	Detector        string    `yaml:"detector"`
	SignalKey       string    `yaml:"signal_key"`
	ScoreWeight     *float64  `yaml:"score_weight"`
	ImpactRange     []float64 `yaml:"impact_range"`
	ConfidenceRange []float64 `yaml:"confidence_range"`
}

// Rule matches signals by field values. Paths name top-level signal fields
// or meta entries ("meta.agent"); values may be scalars or lists, compared
// case-insensitively with an optional trailing wildcard.
type Rule struct {
	When map[string]any `yaml:"when"`
	Then Effect         `yaml:"then"`
}

// Ruleset classifies raw signals. First matching rule wins.
type Ruleset struct {
	Version  string `yaml:"version"`
	Defaults Effect `yaml:"defaults"`
	Rules    []Rule `yaml:"rules"`
}

// DefaultRuleset returns the built-in classification: assessment,
// conversation, and pipeline signals are evaluative at full weight; agent
// operations count at half weight; everything else is administrative.
func DefaultRuleset() *Ruleset {
	full := 1.0
	half := 0.5
	return &Ruleset{
		Version: "v1",
		Defaults: Effect{
			Role:            RoleAdministrative,
			Detector:        "default",
			ImpactRange:     []float64{-2.5, 2.5},
			ConfidenceRange: []float64{0, 1},
		},
		Rules: []Rule{
			{
				When: map[string]any{"source_type": SourceAssessment},
				Then: Effect{Role: RoleEvaluative, Detector: "assessment", ScoreWeight: &full},
			},
			{
				When: map[string]any{"source_type": SourcePreResumeEvent},
				Then: Effect{Role: RoleEvaluative, Detector: "conversation", ScoreWeight: &full},
			},
			{
				When: map[string]any{"source_type": SourceMatchSnapshot},
				Then: Effect{Role: RoleEvaluative, Detector: "pipeline", ScoreWeight: &full},
			},
			{
				When: map[string]any{"source_type": SourceOperationLog, "meta.operation": []any{"agent.*", "interview.*"}},
				Then: Effect{Role: RoleEvaluative, Detector: "operations", ScoreWeight: &half},
			},
			{
				When: map[string]any{"source_type": SourceOperationLog},
				Then: Effect{Role: RoleAdministrative, Detector: "operations"},
			},
		},
	}
}

// LoadRuleset reads an operator ruleset; an empty path means the built-in
// one.
func LoadRuleset(path string) (*Ruleset, error) {
	if path == "" {
		return DefaultRuleset(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signal rules: %w", err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse signal rules: %w", err)
	}

	builtin := DefaultRuleset()
	if rs.Version == "" {
		rs.Version = builtin.Version
	}
	rs.Defaults = mergeEffect(rs.Defaults, builtin.Defaults)
	return &rs, nil
}

// Classify applies the first matching rule in place: clamps impact and
// confidence, stamps role/detector/weight/rules version into the meta, and
// lets the rule rename the signal type.
func (rs *Ruleset) Classify(in *services.UpsertSignalInput) {
	effect := rs.Defaults
	for _, rule := range rs.Rules {
		if rule.matches(in) {
			effect = mergeEffect(rule.Then, rs.Defaults)
			break
		}
	}

	weight := 0.0
	if effect.Role == RoleEvaluative {
		weight = 1.0
	}
	if effect.ScoreWeight != nil {
		weight = clamp(*effect.ScoreWeight, 0, 1)
	}

	in.Impact = clampRange(in.Impact, effect.ImpactRange)
	in.Confidence = clampRange(in.Confidence, effect.ConfidenceRange)
	if effect.SignalKey != "" {
		in.SignalType = effect.SignalKey
	}

	if in.Meta == nil {
		in.Meta = make(map[string]any, 4)
	}
	in.Meta["role"] = effect.Role
	in.Meta["detector"] = effect.Detector
	in.Meta["weight"] = weight
	in.Meta["rules_version"] = rs.Version
}

func (r Rule) matches(in *services.UpsertSignalInput) bool {
	for path, want := range r.When {
		got, ok := fieldValue(in, path)
		if !ok || !valueMatches(got, want) {
			return false
		}
	}
	return true
}

func fieldValue(in *services.UpsertSignalInput, path string) (string, bool) {
	if rest, ok := strings.CutPrefix(path, "meta."); ok {
		v, present := in.Meta[rest]
		if !present {
			return "", false
		}
		return fmt.Sprintf("%v", v), true
	}
	switch path {
	case "source_type":
		return in.SourceType, true
	case "signal_type":
		return in.SignalType, true
	case "category":
		return in.Category, true
	case "title":
		return in.Title, true
	case "source_id":
		return in.SourceID, true
	}
	return "", false
}

func valueMatches(got string, want any) bool {
	if list, ok := want.([]any); ok {
		for _, item := range list {
			if matchPattern(got, fmt.Sprintf("%v", item)) {
				return true
			}
		}
		return false
	}
	return matchPattern(got, fmt.Sprintf("%v", want))
}

func matchPattern(got, pattern string) bool {
	got = strings.ToLower(got)
	pattern = strings.ToLower(pattern)
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(got, prefix)
	}
	return got == pattern
}

// mergeEffect fills the unset fields of an effect from the defaults.
func mergeEffect(effect, defaults Effect) Effect {
	if effect.Role == "" {
		effect.Role = defaults.Role
	}
	if effect.Detector == "" {
		effect.Detector = defaults.Detector
	}
	if effect.ScoreWeight == nil {
		effect.ScoreWeight = defaults.ScoreWeight
	}
	if len(effect.ImpactRange) != 2 {
		effect.ImpactRange = defaults.ImpactRange
	}
	if len(effect.ConfidenceRange) != 2 {
		effect.ConfidenceRange = defaults.ConfidenceRange
	}
	return effect
}

func clampRange(v float64, bounds []float64) float64 {
	if len(bounds) != 2 {
		return v
	}
	return clamp(v, bounds[0], bounds[1])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
