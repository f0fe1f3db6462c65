package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/provider"
)

func testJob() *ent.Job {
	return &ent.Job{
		ID:                 "job-1",
		Title:              "Senior Backend Engineer",
		JdText:             "We need strong Go, Postgres and Kubernetes experience.",
		Location:           "Berlin, Germany",
		PreferredLanguages: []string{"en"},
		Seniority:          "senior",
	}
}

func testProfile() provider.Profile {
	return provider.Profile{
		LinkedinID:      "dana-1",
		FullName:        "Dana Smith",
		Headline:        "Senior Go Engineer",
		Location:        "Berlin",
		Languages:       []string{"en", "de"},
		Skills:          []string{"Go", "Postgres"},
		YearsExperience: 6,
	}
}

func TestVerifyComponentScores(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Verify(testJob(), testProfile())

	// skills 2/3, seniority in band, location contained, language overlap.
	require.Equal(t, StatusVerified, result.Status)
	assert.InDelta(t, 0.4*(2.0/3.0)+0.25+0.20+0.15, result.Score, 1e-9)

	assert.InDelta(t, 2.0/3.0, result.Notes["skills_score"], 1e-9)
	assert.InDelta(t, 1.0, result.Notes["seniority_score"], 1e-9)
	assert.InDelta(t, 1.0, result.Notes["location_score"], 1e-9)
	assert.InDelta(t, 1.0, result.Notes["language_score"], 1e-9)
	assert.Equal(t, []string{"go", "kubernetes", "postgres"}, result.Notes["required_skills"])
	assert.Equal(t, []string{"go", "postgres"}, result.Notes["matched_skills"])
	assert.Equal(t, "senior", result.Notes["target_seniority"])
	assert.Equal(t, "v1", result.Notes["rules_version"])
	assert.Contains(t, result.Notes["verify_explanation"], "score")
}

func TestVerifyMissingMandatoryFields(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("empty profile is rejected outright", func(t *testing.T) {
		result := engine.Verify(testJob(), provider.Profile{})

		require.Equal(t, StatusRejected, result.Status)
		assert.Zero(t, result.Score)
		assert.Equal(t, "missing_mandatory_fields", result.Notes["reason"])
		assert.ElementsMatch(t, []string{"full_name", "identity"}, result.Notes["missing"])
	})

	t.Run("name alone provides an identity", func(t *testing.T) {
		p := provider.Profile{FullName: "Dana Smith", Skills: []string{"go"}}

		result := engine.Verify(testJob(), p)

		assert.NotContains(t, result.Notes, "missing")
	})
}

func TestVerifySkillsMatching(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("no dictionary terms in JD scores neutral", func(t *testing.T) {
		job := testJob()
		job.JdText = "Looking for a generalist who enjoys building products."

		result := engine.Verify(job, testProfile())

		assert.InDelta(t, 0.6, result.Notes["skills_score"], 1e-9)
		assert.Empty(t, result.Notes["required_skills"])
	})

	t.Run("punctuated terms match by containment", func(t *testing.T) {
		job := testJob()
		job.JdText = "C++ services with CI/CD pipelines."
		p := testProfile()
		p.Skills = []string{"c++"}

		result := engine.Verify(job, p)

		assert.Equal(t, []string{"c++", "ci/cd"}, result.Notes["required_skills"])
		assert.Equal(t, []string{"c++"}, result.Notes["matched_skills"])
		assert.InDelta(t, 0.5, result.Notes["skills_score"], 1e-9)
	})

	t.Run("word terms do not match inside longer words", func(t *testing.T) {
		job := testJob()
		job.JdText = "PostgreSQL tuning and good judgement."

		result := engine.Verify(job, testProfile())

		// "postgres" and "go" must not fire on "postgresql" or "good".
		assert.Equal(t, []string{"postgresql"}, result.Notes["required_skills"])
	})
}

func TestVerifySeniority(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("within one year of the band", func(t *testing.T) {
		p := testProfile()
		p.YearsExperience = 4

		result := engine.Verify(testJob(), p)

		assert.InDelta(t, 0.7, result.Notes["seniority_score"], 1e-9)
	})

	t.Run("far from the band", func(t *testing.T) {
		p := testProfile()
		p.YearsExperience = 1

		result := engine.Verify(testJob(), p)

		assert.InDelta(t, 0.3, result.Notes["seniority_score"], 1e-9)
	})

	t.Run("explicit synonym maps to a band", func(t *testing.T) {
		job := testJob()
		job.Seniority = "Principal Engineer"

		result := engine.Verify(job, testProfile())

		assert.Equal(t, "lead", result.Notes["target_seniority"])
	})

	t.Run("inferred from JD keywords when unset", func(t *testing.T) {
		job := testJob()
		job.Seniority = ""
		job.JdText = "Junior developer to join our Go team."

		result := engine.Verify(job, testProfile())

		assert.Equal(t, "junior", result.Notes["target_seniority"])
	})

	t.Run("defaults to middle", func(t *testing.T) {
		job := testJob()
		job.Seniority = ""
		job.JdText = "Go developer for our platform team."

		result := engine.Verify(job, testProfile())

		assert.Equal(t, "middle", result.Notes["target_seniority"])
	})
}

func TestVerifyLocation(t *testing.T) {
	engine := NewEngine(nil)

	cases := []struct {
		name        string
		jobLocation string
		candidate   string
		want        float64
	}{
		{"job without location accepts anywhere", "", "Tokyo", 1.0},
		{"containment either way", "Berlin, Germany", "Berlin", 1.0},
		{"token overlap", "Berlin, DE", "Hamburg, DE", 0.8},
		{"no overlap", "London", "Tokyo", 0.4},
		{"empty candidate location", "Berlin", "", 0.4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := testJob()
			job.Location = tc.jobLocation
			p := testProfile()
			p.Location = tc.candidate

			result := engine.Verify(job, p)

			assert.InDelta(t, tc.want, result.Notes["location_score"], 1e-9)
		})
	}
}

func TestVerifyLanguages(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("no preference scores full", func(t *testing.T) {
		job := testJob()
		job.PreferredLanguages = nil

		result := engine.Verify(job, testProfile())

		assert.InDelta(t, 1.0, result.Notes["language_score"], 1e-9)
	})

	t.Run("no overlap scores low", func(t *testing.T) {
		p := testProfile()
		p.Languages = []string{"fr"}

		result := engine.Verify(testJob(), p)

		assert.InDelta(t, 0.3, result.Notes["language_score"], 1e-9)
	})
}

func TestVerifyThreshold(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("above threshold is verified", func(t *testing.T) {
		// skills 0.5, seniority 1.0, location 0.4, language 1.0 -> 0.68.
		job := testJob()
		job.JdText = "Go and Kubernetes, senior level."
		job.Location = "London"
		p := testProfile()
		p.Skills = []string{"go"}
		p.Location = "Tokyo"

		result := engine.Verify(job, p)

		require.Equal(t, StatusVerified, result.Status)
		assert.InDelta(t, 0.68, result.Score, 1e-9)
	})

	t.Run("below threshold is rejected", func(t *testing.T) {
		// skills 0.5, seniority 0.7, location 0.4, language 1.0 -> 0.605.
		job := testJob()
		job.JdText = "Go and Kubernetes, senior level."
		job.Location = "London"
		p := testProfile()
		p.Skills = []string{"go"}
		p.Location = "Tokyo"
		p.YearsExperience = 4

		result := engine.Verify(job, p)

		require.Equal(t, StatusRejected, result.Status)
		assert.InDelta(t, 0.605, result.Score, 1e-9)
	})
}

func TestVerifyCustomConfig(t *testing.T) {
	cfg := &config.MatchingConfig{
		SkillsWeight:    1.0,
		VerifyThreshold: 0.9,
		SkillDictionary: []string{"go"},
		SeniorityBands:  map[string]config.SeniorityBand{"middle": {MinYears: 2, MaxYears: 5}},
		RulesVersion:    "custom-2",
	}
	engine := NewEngine(cfg)

	job := &ent.Job{ID: "job-2", Title: "Engineer", JdText: "Go only."}
	result := engine.Verify(job, testProfile())

	require.Equal(t, StatusVerified, result.Status)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Equal(t, "custom-2", result.Notes["rules_version"])
}
