package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/models"
)

func scored(agent, stage string, score float64) models.ScorecardEntry {
	return models.ScorecardEntry{
		AgentKey: agent,
		StageKey: stage,
		Score:    &score,
		Status:   "completed",
	}
}

func TestComposeCompleteScorecard(t *testing.T) {
	policy := NewPolicy(nil)

	t.Run("shortlist", func(t *testing.T) {
		out := policy.Compose(Input{
			Scorecard: []models.ScorecardEntry{
				scored(AgentSourcing, "verify", 90),
				scored(AgentCommunication, StageDialogue, 80),
				scored(AgentInterview, "interview", 70),
			},
			ResumeReceived: true,
		})

		require.NotNil(t, out.Score)
		assert.InDelta(t, 81.0, *out.Score, 1e-9)
		assert.Equal(t, StatusShortlist, out.Status)
		assert.Empty(t, out.CapApplied)
	})

	t.Run("pipeline", func(t *testing.T) {
		out := policy.Compose(Input{
			Scorecard: []models.ScorecardEntry{
				scored(AgentSourcing, "verify", 70),
				scored(AgentCommunication, StageDialogue, 65),
				scored(AgentInterview, "interview", 60),
			},
			ResumeReceived: true,
		})

		require.NotNil(t, out.Score)
		assert.InDelta(t, 65.5, *out.Score, 1e-9)
		assert.Equal(t, StatusPipeline, out.Status)
	})

	t.Run("review when below pipeline minimum", func(t *testing.T) {
		out := policy.Compose(Input{
			Scorecard: []models.ScorecardEntry{
				scored(AgentSourcing, "verify", 50),
				scored(AgentCommunication, StageDialogue, 50),
				scored(AgentInterview, "interview", 50),
			},
			ResumeReceived: true,
		})

		require.NotNil(t, out.Score)
		assert.InDelta(t, 50.0, *out.Score, 1e-9)
		assert.Equal(t, StatusReview, out.Status)
	})

	t.Run("no caps once all agents scored", func(t *testing.T) {
		out := policy.Compose(Input{
			Scorecard: []models.ScorecardEntry{
				scored(AgentSourcing, "verify", 95),
				scored(AgentCommunication, StageDialogue, 90),
				scored(AgentInterview, "interview", 85),
			},
			ResumeReceived: false,
		})

		require.NotNil(t, out.Score)
		assert.InDelta(t, 90.5, *out.Score, 1e-9)
		assert.Equal(t, StatusShortlist, out.Status)
		assert.Empty(t, out.CapApplied)
	})
}

func TestComposeMissingInterview(t *testing.T) {
	policy := NewPolicy(nil)

	// Renormalized over sourcing+communication: (0.45*90 + 0.20*85) / 0.65
	// is 88.46, which would not clear the cap without renormalization.
	out := policy.Compose(Input{
		Scorecard: []models.ScorecardEntry{
			scored(AgentSourcing, "verify", 90),
			scored(AgentCommunication, StageDialogue, 85),
		},
		CandidateStatus: "engaged_no_resume",
		ResumeReceived:  true,
	})

	assert.Nil(t, out.Score)
	assert.Equal(t, StatusReview, out.Status)
	assert.Equal(t, CapWithoutInterviewScore, out.CapApplied)
	assert.Empty(t, out.BlockReason)
}

func TestComposeCapWithoutCV(t *testing.T) {
	policy := NewPolicy(nil)

	out := policy.Compose(Input{
		Scorecard:      []models.ScorecardEntry{scored(AgentSourcing, "verify", 90)},
		ResumeReceived: false,
	})

	// CV cap fires first and trims below the interview cap.
	assert.Nil(t, out.Score)
	assert.Equal(t, StatusReview, out.Status)
	assert.Equal(t, CapWithoutCV, out.CapApplied)
}

func TestComposeBlocked(t *testing.T) {
	policy := NewPolicy(nil)

	t.Run("candidate status", func(t *testing.T) {
		out := policy.Compose(Input{
			Scorecard:       []models.ScorecardEntry{scored(AgentSourcing, "verify", 90)},
			CandidateStatus: "not_interested",
			ResumeReceived:  true,
		})

		require.NotNil(t, out.Score)
		assert.Zero(t, *out.Score)
		assert.Equal(t, StatusBlocked, out.Status)
		assert.Equal(t, "not_interested", out.BlockReason)
	})

	t.Run("communication status regardless of stage", func(t *testing.T) {
		comm := scored(AgentCommunication, "intro", 40)
		comm.Status = "unreachable"

		out := policy.Compose(Input{
			Scorecard:      []models.ScorecardEntry{scored(AgentSourcing, "verify", 90), comm},
			ResumeReceived: true,
		})

		assert.Equal(t, StatusBlocked, out.Status)
		assert.Equal(t, "unreachable", out.BlockReason)
	})
}

func TestComposeCommunicationStageGate(t *testing.T) {
	policy := NewPolicy(nil)

	// A communication score before the dialogue stage does not count.
	out := policy.Compose(Input{
		Scorecard:      []models.ScorecardEntry{scored(AgentCommunication, "intro", 85)},
		ResumeReceived: true,
	})

	assert.Nil(t, out.Score)
	assert.Equal(t, StatusReview, out.Status)
	assert.Empty(t, out.CapApplied)
}

func TestComposeEmptyScorecard(t *testing.T) {
	policy := NewPolicy(nil)

	out := policy.Compose(Input{})

	assert.Nil(t, out.Score)
	assert.Equal(t, StatusReview, out.Status)
	assert.Empty(t, out.BlockReason)
	assert.Empty(t, out.CapApplied)
}

func TestComposeUnscoredEntriesIgnored(t *testing.T) {
	policy := NewPolicy(nil)

	out := policy.Compose(Input{
		Scorecard: []models.ScorecardEntry{
			{AgentKey: AgentSourcing, StageKey: "verify", Status: "skipped"},
		},
	})

	assert.Nil(t, out.Score)
	assert.Equal(t, StatusReview, out.Status)
}
