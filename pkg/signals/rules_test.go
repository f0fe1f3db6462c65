package signals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/services"
)

func TestDefaultRulesetClassify(t *testing.T) {
	rs := DefaultRuleset()

	t.Run("assessments are evaluative at full weight", func(t *testing.T) {
		in := services.UpsertSignalInput{SourceType: SourceAssessment, SignalType: "assessment_verdict", Impact: 1.4, Confidence: 0.8}
		rs.Classify(&in)

		assert.Equal(t, RoleEvaluative, in.Meta["role"])
		assert.Equal(t, "assessment", in.Meta["detector"])
		assert.Equal(t, 1.0, in.Meta["weight"])
		assert.Equal(t, "v1", in.Meta["rules_version"])
		assert.Equal(t, "assessment_verdict", in.SignalType)
		assert.InDelta(t, 1.4, in.Impact, 1e-9)
	})

	t.Run("conversation and pipeline signals are evaluative", func(t *testing.T) {
		for sourceType, detector := range map[string]string{
			SourcePreResumeEvent: "conversation",
			SourceMatchSnapshot:  "pipeline",
		} {
			in := services.UpsertSignalInput{SourceType: sourceType, Confidence: 0.7}
			rs.Classify(&in)
			assert.Equal(t, RoleEvaluative, in.Meta["role"], sourceType)
			assert.Equal(t, detector, in.Meta["detector"], sourceType)
			assert.Equal(t, 1.0, in.Meta["weight"], sourceType)
		}
	})

	t.Run("agent operations count at half weight", func(t *testing.T) {
		in := services.UpsertSignalInput{
			SourceType: SourceOperationLog,
			Meta:       map[string]any{"operation": "agent.outreach", "status": "sent"},
		}
		rs.Classify(&in)
		assert.Equal(t, RoleEvaluative, in.Meta["role"])
		assert.Equal(t, 0.5, in.Meta["weight"])
	})

	t.Run("other operations stay administrative", func(t *testing.T) {
		in := services.UpsertSignalInput{
			SourceType: SourceOperationLog,
			Meta:       map[string]any{"operation": "scheduler.dispatch"},
		}
		rs.Classify(&in)
		assert.Equal(t, RoleAdministrative, in.Meta["role"])
		assert.Equal(t, "operations", in.Meta["detector"])
		assert.Equal(t, 0.0, in.Meta["weight"])
	})

	t.Run("impact and confidence are clamped", func(t *testing.T) {
		in := services.UpsertSignalInput{SourceType: SourceAssessment, Impact: 3.4, Confidence: 1.6}
		rs.Classify(&in)
		assert.InDelta(t, 2.5, in.Impact, 1e-9)
		assert.InDelta(t, 1.0, in.Confidence, 1e-9)

		in = services.UpsertSignalInput{SourceType: SourcePreResumeEvent, Impact: -5, Confidence: -0.1}
		rs.Classify(&in)
		assert.InDelta(t, -2.5, in.Impact, 1e-9)
		assert.InDelta(t, 0.0, in.Confidence, 1e-9)
	})

	t.Run("meta is created when missing", func(t *testing.T) {
		in := services.UpsertSignalInput{SourceType: SourceAssessment}
		rs.Classify(&in)
		require.NotNil(t, in.Meta)
		assert.Equal(t, RoleEvaluative, in.Meta["role"])
	})
}

func TestClassifyCustomRules(t *testing.T) {
	half := 0.75
	over := 1.5
	rs := &Ruleset{
		Version: "team-7",
		Defaults: Effect{
			Role:            RoleAdministrative,
			Detector:        "fallback",
			ImpactRange:     []float64{-2.5, 2.5},
			ConfidenceRange: []float64{0, 1},
		},
		Rules: []Rule{
			{
				When: map[string]any{"source_type": SourceOperationLog, "meta.operation": "interview.*"},
				Then: Effect{Role: RoleGovernance, Detector: "compliance", SignalKey: "compliance_check"},
			},
			{
				When: map[string]any{"source_type": []any{SourceAssessment, SourceMatchSnapshot}},
				Then: Effect{Role: RoleEvaluative, Detector: "scorers", ScoreWeight: &half, ImpactRange: []float64{-1, 1}},
			},
			{
				When: map[string]any{"category": "conversation"},
				Then: Effect{Role: RoleEvaluative, Detector: "chat", ScoreWeight: &over},
			},
		},
	}

	t.Run("wildcard matches case-insensitively and renames the signal", func(t *testing.T) {
		in := services.UpsertSignalInput{
			SourceType: SourceOperationLog,
			SignalType: "operation_result",
			Meta:       map[string]any{"operation": "Interview.Invite"},
		}
		rs.Classify(&in)
		assert.Equal(t, RoleGovernance, in.Meta["role"])
		assert.Equal(t, "compliance", in.Meta["detector"])
		assert.Equal(t, "compliance_check", in.SignalType)
		assert.Equal(t, 0.0, in.Meta["weight"])
		assert.Equal(t, "team-7", in.Meta["rules_version"])
	})

	t.Run("list values match any entry", func(t *testing.T) {
		for _, sourceType := range []string{SourceAssessment, SourceMatchSnapshot} {
			in := services.UpsertSignalInput{SourceType: sourceType, Impact: -1.4}
			rs.Classify(&in)
			assert.Equal(t, "scorers", in.Meta["detector"], sourceType)
			assert.Equal(t, 0.75, in.Meta["weight"], sourceType)
			assert.InDelta(t, -1.0, in.Impact, 1e-9, "rule range overrides the default")
		}
	})

	t.Run("score weight is clamped to one", func(t *testing.T) {
		in := services.UpsertSignalInput{SourceType: SourcePreResumeEvent, Category: "conversation"}
		rs.Classify(&in)
		assert.Equal(t, "chat", in.Meta["detector"])
		assert.Equal(t, 1.0, in.Meta["weight"])
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		in := services.UpsertSignalInput{
			SourceType: SourceOperationLog,
			Category:   "conversation",
			Meta:       map[string]any{"operation": "interview.invite"},
		}
		rs.Classify(&in)
		assert.Equal(t, "compliance", in.Meta["detector"])
	})

	t.Run("absent meta key fails the rule", func(t *testing.T) {
		in := services.UpsertSignalInput{SourceType: SourceOperationLog, Meta: map[string]any{"status": "ok"}}
		rs.Classify(&in)
		assert.Equal(t, "fallback", in.Meta["detector"])
		assert.Equal(t, RoleAdministrative, in.Meta["role"])
	})
}

func TestLoadRuleset(t *testing.T) {
	t.Run("empty path loads the built-in rules", func(t *testing.T) {
		rs, err := LoadRuleset("")
		require.NoError(t, err)
		assert.Equal(t, "v1", rs.Version)
		assert.Len(t, rs.Rules, 5)
	})

	t.Run("file overrides rules and keeps built-in clamps", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
version: team-7
defaults:
  detector: fallback
rules:
  - when:
      source_type: assessment
    then:
      role: evaluative
      detector: scorers
      score_weight: 0.6
`), 0o644))

		rs, err := LoadRuleset(path)
		require.NoError(t, err)
		assert.Equal(t, "team-7", rs.Version)
		require.Len(t, rs.Rules, 1)
		assert.Equal(t, "fallback", rs.Defaults.Detector)
		assert.Equal(t, RoleAdministrative, rs.Defaults.Role)
		assert.Equal(t, []float64{-2.5, 2.5}, rs.Defaults.ImpactRange)

		in := services.UpsertSignalInput{SourceType: SourceAssessment, Impact: 9}
		rs.Classify(&in)
		assert.InDelta(t, 2.5, in.Impact, 1e-9)
		assert.Equal(t, 0.6, in.Meta["weight"])
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadRuleset(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read signal rules")
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules: [broken"), 0o644))
		_, err := LoadRuleset(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse signal rules")
	})
}
