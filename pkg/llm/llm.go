// Package llm provides the conversational responder that polishes outreach
// copy and drafts replies to candidate questions. Adapters return generated
// text; an empty reply or an error tells the caller to fall back to its
// deterministic template, so the system stays functional with no LLM
// configured at all.
package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/metrics"
)

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a recruiting conversation.
type Message struct {
	Role    string
	Content string
}

// Request carries the conversation a responder should continue. System
// holds the recruiter persona, guardrails, and language instruction;
// Messages hold the dialogue oldest first.
type Request struct {
	SessionID string
	System    string
	Messages  []Message
}

// Responder generates one reply for a candidate conversation.
type Responder interface {
	GenerateCandidateReply(ctx context.Context, req Request) (string, error)
}

// New builds the configured responder. The zero configuration yields the
// static responder, so the system runs without any LLM credentials.
func New(cfg *config.LLMConfig) (Responder, error) {
	if cfg == nil {
		cfg = config.DefaultLLMConfig()
	}
	switch cfg.Provider {
	case "", config.LLMProviderStatic:
		return NewStatic(), nil
	case config.LLMProviderGRPC:
		return NewGRPC(cfg)
	case config.LLMProviderAnthropic:
		key := os.Getenv(cfg.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("anthropic responder: environment variable %s is not set", cfg.APIKeyEnv)
		}
		return NewAnthropicFromKey(key, cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// observe counts one generation attempt per backend.
func observe(backend, content string, err error) {
	status := "ok"
	switch {
	case err != nil:
		status = "error"
	case content == "":
		status = "empty"
	}
	metrics.LLMRequests.WithLabelValues(backend, status).Inc()
}

func withTimeout(ctx context.Context, d config.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, time.Duration(d))
}
