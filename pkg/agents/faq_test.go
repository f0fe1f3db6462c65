package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/preresume"
)

func TestAnswerSalaryQuestion(t *testing.T) {
	responder := &scriptedResponder{reply: "It depends on level; send your CV and I'll share the range."}
	composer := NewFAQComposer(preresume.NewBundle("en"), responder, "en", nil)

	reply, err := composer.Answer(context.Background(), FAQInput{
		Job:            testJob(),
		Candidate:      testCandidate(),
		ConversationID: "conv-1",
		Question:       "What's the salary range for this?",
	})
	require.NoError(t, err)

	assert.Equal(t, preresume.IntentSalary, reply.Intent)
	assert.Equal(t, "en", reply.Language)
	assert.Equal(t, SourceLLM, reply.Source)
	assert.Equal(t, "It depends on level; send your CV and I'll share the range.", reply.Text)

	// The responder is grounded in the approved template copy and sees the
	// raw question as the user turn.
	assert.Contains(t, responder.last.System, "Compensation for the Senior Go Engineer role")
	require.Len(t, responder.last.Messages, 1)
	assert.Equal(t, "What's the salary range for this?", responder.last.Messages[0].Content)
}

func TestAnswerFallsBackToTemplate(t *testing.T) {
	composer := NewFAQComposer(preresume.NewBundle("en"), llm.NewStatic(), "en", nil)

	reply, err := composer.Answer(context.Background(), FAQInput{
		Job:       testJob(),
		Candidate: testCandidate(),
		Question:  "What's the tech stack?",
	})
	require.NoError(t, err)
	assert.Equal(t, preresume.IntentStack, reply.Intent)
	assert.Equal(t, SourceTemplate, reply.Source)
	assert.Contains(t, reply.Text, "Build the matching platform.")
}

func TestAnswerResponderErrorKeepsTemplate(t *testing.T) {
	responder := &scriptedResponder{err: errors.New("overloaded")}
	composer := NewFAQComposer(preresume.NewBundle("en"), responder, "en", nil)

	reply, err := composer.Answer(context.Background(), FAQInput{
		Job:       testJob(),
		Candidate: testCandidate(),
		Question:  "How long is the process?",
	})
	require.NoError(t, err)
	assert.Equal(t, preresume.IntentTimeline, reply.Intent)
	assert.Equal(t, SourceTemplate, reply.Source)
	assert.NotEmpty(t, reply.Text)
}

func TestAnswerDetectsLanguage(t *testing.T) {
	composer := NewFAQComposer(preresume.NewBundle("en"), nil, "en", nil)

	reply, err := composer.Answer(context.Background(), FAQInput{
		Job:       testJob(),
		Candidate: testCandidate(),
		Question:  "Какая вилка по деньгам?",
	})
	require.NoError(t, err)
	assert.Equal(t, "ru", reply.Language)
	// The intent keywords are English; a Russian question lands in the
	// default bucket, which has a Russian template.
	assert.Equal(t, preresume.IntentDefault, reply.Intent)
	assert.Contains(t, reply.Text, "Спасибо за ответ, Dana!")
}

func TestAnswerSurfacesResumeSharedIntent(t *testing.T) {
	responder := &scriptedResponder{reply: "Let me rephrase that!"}
	composer := NewFAQComposer(preresume.NewBundle("en"), responder, "en", nil)

	reply, err := composer.Answer(context.Background(), FAQInput{
		Job:       testJob(),
		Candidate: testCandidate(),
		Question:  "Here you go: https://drive.example.com/dana-cv.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, preresume.IntentResumeShared, reply.Intent)
	assert.Equal(t, SourceTemplate, reply.Source)
	assert.Contains(t, reply.Text, "got your resume")
	assert.Zero(t, responder.calls, "acknowledgements must not be rephrased")
}

func TestAnswerOptOutSkipsResponder(t *testing.T) {
	responder := &scriptedResponder{reply: "Are you sure? The role is great!"}
	composer := NewFAQComposer(preresume.NewBundle("en"), responder, "en", nil)

	reply, err := composer.Answer(context.Background(), FAQInput{
		Job:       testJob(),
		Candidate: testCandidate(),
		Question:  "Not interested, please stop messaging me.",
	})
	require.NoError(t, err)
	assert.Equal(t, preresume.IntentNotInterested, reply.Intent)
	assert.Equal(t, SourceTemplate, reply.Source)
	assert.Zero(t, responder.calls)
}

func TestAnswerValidation(t *testing.T) {
	composer := NewFAQComposer(preresume.NewBundle("en"), nil, "en", nil)

	_, err := composer.Answer(context.Background(), FAQInput{Job: testJob(), Candidate: testCandidate()})
	require.Error(t, err)

	_, err = composer.Answer(context.Background(), FAQInput{Question: "hi"})
	require.Error(t, err)
}
