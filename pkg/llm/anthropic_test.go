package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
)

type stubMessages struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
}

func (s *stubMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = body
	return s.resp, s.err
}

func anthropicTestConfig() *config.LLMConfig {
	return &config.LLMConfig{
		Provider:    config.LLMProviderAnthropic,
		Model:       "claude-test",
		MaxTokens:   256,
		Temperature: 0.7,
		Timeout:     config.Duration(5 * time.Second),
	}
}

func TestAnthropicGenerateReply(t *testing.T) {
	stub := &stubMessages{
		resp: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "Hola Dana, "},
				{Type: "tool_use"},
				{Type: "text", Text: "¿seguimos?"},
			},
		},
	}
	responder, err := NewAnthropic(stub, anthropicTestConfig())
	require.NoError(t, err)

	out, err := responder.GenerateCandidateReply(context.Background(), Request{
		SessionID: "sess-1",
		System:    "You are a recruiter. Reply in Spanish.",
		Messages: []Message{
			{Role: RoleAssistant, Content: "Hola, vi tu perfil."},
			{Role: RoleUser, Content: "¿De qué empresa?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hola Dana, ¿seguimos?", out)

	assert.Equal(t, sdk.Model("claude-test"), stub.lastParams.Model)
	assert.Equal(t, int64(256), stub.lastParams.MaxTokens)
	require.Len(t, stub.lastParams.System, 1)
	assert.Equal(t, "You are a recruiter. Reply in Spanish.", stub.lastParams.System[0].Text)
	assert.Len(t, stub.lastParams.Messages, 2)
}

func TestAnthropicErrorPropagates(t *testing.T) {
	stub := &stubMessages{err: errors.New("overloaded")}
	responder, err := NewAnthropic(stub, anthropicTestConfig())
	require.NoError(t, err)

	out, err := responder.GenerateCandidateReply(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic generate failed")
	assert.Empty(t, out)
}

func TestAnthropicEmptyReplyIsNotAnError(t *testing.T) {
	stub := &stubMessages{resp: &sdk.Message{}}
	responder, err := NewAnthropic(stub, anthropicTestConfig())
	require.NoError(t, err)

	out, err := responder.GenerateCandidateReply(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAnthropicRequiresMessages(t *testing.T) {
	responder, err := NewAnthropic(&stubMessages{}, anthropicTestConfig())
	require.NoError(t, err)

	_, err = responder.GenerateCandidateReply(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "   "}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messages are required")
}

func TestNewAnthropicValidation(t *testing.T) {
	_, err := NewAnthropic(nil, anthropicTestConfig())
	require.Error(t, err)

	cfg := anthropicTestConfig()
	cfg.Model = ""
	_, err = NewAnthropic(&stubMessages{}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")

	// A missing token cap falls back to the default rather than sending 0.
	cfg = anthropicTestConfig()
	cfg.MaxTokens = 0
	responder, err := NewAnthropic(&stubMessages{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(config.DefaultLLMConfig().MaxTokens), responder.maxTokens)
}
