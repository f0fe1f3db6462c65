package llm

import (
	"context"

	"github.com/hireflow/scout/pkg/config"
)

// Static is the responder used when no provider is configured. It always
// returns an empty reply, which callers treat as "use the deterministic
// template".
type Static struct{}

// NewStatic creates the fallback-only responder.
func NewStatic() *Static { return &Static{} }

// GenerateCandidateReply implements Responder.
func (*Static) GenerateCandidateReply(context.Context, Request) (string, error) {
	observe(config.LLMProviderStatic, "", nil)
	return "", nil
}
