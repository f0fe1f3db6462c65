package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/preresume"
)

// scriptedResponder returns a fixed reply and records the request.
type scriptedResponder struct {
	reply string
	err   error
	last  llm.Request
	calls int
}

func (r *scriptedResponder) GenerateCandidateReply(_ context.Context, req llm.Request) (string, error) {
	r.last = req
	r.calls++
	return r.reply, r.err
}

func testJob() *ent.Job {
	return &ent.Job{
		ID:     "job-1",
		Title:  "Senior Go Engineer",
		JdText: "Build the matching platform. Own services end to end.",
	}
}

func testCandidate() *ent.Candidate {
	return &ent.Candidate{
		ID:        "cand-1",
		FullName:  "Dana Alvarez",
		Headline:  "Backend engineer, Go and Postgres",
		Languages: []string{"en"},
		Skills:    []string{"go", "postgres", "kafka", "grpc"},
	}
}

func TestComposeIntroFallsBackToTemplate(t *testing.T) {
	composer := NewOutreachComposer(preresume.NewBundle("en"), llm.NewStatic(), "en", nil)

	msg, err := composer.Compose(context.Background(), OutreachInput{
		Job:            testJob(),
		Candidate:      testCandidate(),
		ConversationID: "conv-1",
		Kind:           KindIntro,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, msg.Source)
	assert.Equal(t, preresume.PurposeIntro, msg.Purpose)
	assert.Equal(t, "en", msg.Language)
	assert.Contains(t, msg.Text, "Dana")
	assert.Contains(t, msg.Text, "Senior Go Engineer")
	assert.Contains(t, msg.Text, "Build the matching platform.")
}

func TestComposeIntroUsesResponderReply(t *testing.T) {
	responder := &scriptedResponder{reply: "Hey Dana, your Go work caught my eye. CV?"}
	composer := NewOutreachComposer(preresume.NewBundle("en"), responder, "en", nil)

	msg, err := composer.Compose(context.Background(), OutreachInput{
		Job:            testJob(),
		Candidate:      testCandidate(),
		ConversationID: "conv-1",
	})
	require.NoError(t, err)

	assert.Equal(t, SourceLLM, msg.Source)
	assert.Equal(t, "Hey Dana, your Go work caught my eye. CV?", msg.Text)

	assert.Equal(t, "conv-1", responder.last.SessionID)
	assert.Contains(t, responder.last.System, "Senior Go Engineer")
	assert.Contains(t, responder.last.System, `language "en"`)
	require.Len(t, responder.last.Messages, 1)
	assert.Equal(t, llm.RoleUser, responder.last.Messages[0].Role)
	assert.Contains(t, responder.last.Messages[0].Content, "Dana")
}

func TestComposeResponderErrorKeepsTemplate(t *testing.T) {
	responder := &scriptedResponder{err: errors.New("overloaded")}
	composer := NewOutreachComposer(preresume.NewBundle("en"), responder, "en", nil)

	msg, err := composer.Compose(context.Background(), OutreachInput{
		Job:       testJob(),
		Candidate: testCandidate(),
	})
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, msg.Source)
	assert.Contains(t, msg.Text, "Dana")
}

func TestComposeResumeRequest(t *testing.T) {
	composer := NewOutreachComposer(preresume.NewBundle("en"), nil, "en", nil)

	msg, err := composer.Compose(context.Background(), OutreachInput{
		Job:       testJob(),
		Candidate: testCandidate(),
		Kind:      KindResumeRequest,
	})
	require.NoError(t, err)
	assert.Equal(t, preresume.PurposeResumeRequest, msg.Purpose)
	assert.Contains(t, msg.Text, "I'd need your resume")
}

func TestComposeSpeaksCandidateLanguage(t *testing.T) {
	cand := testCandidate()
	cand.Languages = []string{"Russian"}
	composer := NewOutreachComposer(preresume.NewBundle("en"), nil, "en", nil)

	msg, err := composer.Compose(context.Background(), OutreachInput{
		Job:       testJob(),
		Candidate: cand,
	})
	require.NoError(t, err)
	assert.Equal(t, "ru", msg.Language)
	assert.Contains(t, msg.Text, "Здравствуйте, Dana!")
}

func TestComposeRequiresJobAndCandidate(t *testing.T) {
	composer := NewOutreachComposer(preresume.NewBundle("en"), nil, "en", nil)
	_, err := composer.Compose(context.Background(), OutreachInput{Job: testJob()})
	require.Error(t, err)
}

func TestCandidateLanguage(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		want      string
	}{
		{"code passes through", []string{"en"}, "en"},
		{"name maps to code", []string{"English"}, "en"},
		{"region suffix drops", []string{"en-US"}, "en"},
		{"unknown entries skip", []string{"Klingon", "ru"}, "ru"},
		{"empty falls back", nil, "de"},
		{"all unknown falls back", []string{"Elvish"}, "de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := &ent.Candidate{Languages: tt.languages}
			assert.Equal(t, tt.want, CandidateLanguage(cand, "de"))
		})
	}
}

func TestOutreachVars(t *testing.T) {
	vars := OutreachVars(testJob(), testCandidate())
	assert.Equal(t, "Dana", vars.Name)
	assert.Equal(t, "Senior Go Engineer", vars.JobTitle)
	assert.Equal(t, "Build the matching platform.", vars.ScopeSummary)
	assert.Equal(t, "Backend engineer, Go and Postgres", vars.CoreProfileSummary)

	t.Run("nameless candidate gets a neutral greeting", func(t *testing.T) {
		cand := testCandidate()
		cand.FullName = "  "
		assert.Equal(t, "there", OutreachVars(testJob(), cand).Name)
	})

	t.Run("headline falls back to leading skills", func(t *testing.T) {
		cand := testCandidate()
		cand.Headline = ""
		assert.Equal(t, "go, postgres, kafka", OutreachVars(testJob(), cand).CoreProfileSummary)
	})
}
