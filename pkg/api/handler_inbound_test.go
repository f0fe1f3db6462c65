package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/workflow"
)

func TestInboundHandler_SessionRouted(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")

	rec := f.do(t, http.MethodPost, "/api/v1/sessions", StartSessionRequest{
		JobID:       jobID,
		CandidateID: cand.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	var started struct {
		Session struct {
			ConversationID string `json:"conversation_id"`
		} `json:"session"`
	}
	decode(t, rec, &started)
	require.NotEmpty(t, started.Session.ConversationID)

	rec = f.do(t, http.MethodPost, "/api/v1/inbound", InboundRequest{
		ConversationID: started.Session.ConversationID,
		Text:           "Sure, here it is: https://example.com/ada.pdf",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var result workflow.InboundResult
	decode(t, rec, &result)
	assert.Equal(t, workflow.ModePreResume, result.Mode)
	assert.Equal(t, "resume_received", result.SessionStatus)
	assert.Equal(t, []string{"https://example.com/ada.pdf"}, result.ResumeLinks)
	assert.NotEmpty(t, result.Reply)
}

func TestInboundHandler_FAQWithoutSession(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	cand := f.seedCandidate(t, "p1", "Ada Example")
	conv, err := f.conversations.EnsureConversation(context.Background(), jobID, cand.ID)
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/inbound", InboundRequest{
		ConversationID: conv.ID,
		Text:           "What does the role pay?",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var result workflow.InboundResult
	decode(t, rec, &result)
	assert.Equal(t, workflow.ModeFAQ, result.Mode)
	assert.NotEmpty(t, result.Reply)
	assert.Empty(t, result.SessionStatus)
}

func TestInboundHandler_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/inbound", InboundRequest{Text: "hello"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "conversation id is required")

	rec = f.do(t, http.MethodPost, "/api/v1/inbound", InboundRequest{ConversationID: "nope", Text: "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
