package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/config"
	pb "github.com/hireflow/scout/proto"
)

func TestStaticResponderAlwaysFallsBack(t *testing.T) {
	out, err := NewStatic().GenerateCandidateReply(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewResponder(t *testing.T) {
	t.Run("nil config yields the static responder", func(t *testing.T) {
		responder, err := New(nil)
		require.NoError(t, err)
		assert.IsType(t, &Static{}, responder)
	})

	t.Run("grpc requires an address", func(t *testing.T) {
		_, err := New(&config.LLMConfig{Provider: config.LLMProviderGRPC})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address is required")
	})

	t.Run("grpc connects lazily", func(t *testing.T) {
		responder, err := New(&config.LLMConfig{
			Provider: config.LLMProviderGRPC,
			Address:  "127.0.0.1:19099",
		})
		require.NoError(t, err)
		grpcResponder, ok := responder.(*GRPC)
		require.True(t, ok)
		require.NoError(t, grpcResponder.Close())
	})

	t.Run("anthropic requires the key variable", func(t *testing.T) {
		t.Setenv("SCOUT_TEST_ANTHROPIC_KEY", "")
		_, err := New(&config.LLMConfig{
			Provider:  config.LLMProviderAnthropic,
			Model:     "claude-test",
			APIKeyEnv: "SCOUT_TEST_ANTHROPIC_KEY",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SCOUT_TEST_ANTHROPIC_KEY")
	})

	t.Run("anthropic builds from the key variable", func(t *testing.T) {
		t.Setenv("SCOUT_TEST_ANTHROPIC_KEY", "sk-test")
		responder, err := New(&config.LLMConfig{
			Provider:  config.LLMProviderAnthropic,
			Model:     "claude-test",
			APIKeyEnv: "SCOUT_TEST_ANTHROPIC_KEY",
		})
		require.NoError(t, err)
		assert.IsType(t, &Anthropic{}, responder)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(&config.LLMConfig{Provider: "oracle"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown llm provider "oracle"`)
	})
}

func TestToProtoMessages(t *testing.T) {
	out := toProtoMessages(Request{
		System: "You are a recruiter.",
		Messages: []Message{
			{Role: RoleAssistant, Content: "Hi there"},
			{Role: RoleUser, Content: "Who is hiring?"},
			{Role: "unknown", Content: "treated as user"},
		},
	})
	require.Len(t, out, 4)

	assert.Equal(t, pb.ChatMessage_ROLE_SYSTEM, out[0].Role)
	assert.Equal(t, "You are a recruiter.", out[0].Content)
	assert.Equal(t, pb.ChatMessage_ROLE_ASSISTANT, out[1].Role)
	assert.Equal(t, pb.ChatMessage_ROLE_USER, out[2].Role)
	assert.Equal(t, pb.ChatMessage_ROLE_USER, out[3].Role)
}
