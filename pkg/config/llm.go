package config

import "time"

// LLM provider kinds.
const (
	LLMProviderStatic    = "static"
	LLMProviderGRPC      = "grpc"
	LLMProviderAnthropic = "anthropic"
)

// LLMConfig selects and configures the conversational responder.
type LLMConfig struct {
	// Provider is one of static, grpc, anthropic. static always falls back
	// to deterministic templates and needs no credentials.
	Provider string `yaml:"provider"`

	// Model is the model identifier passed to the provider.
	Model string `yaml:"model"`

	// Address is the gRPC responder sidecar address (grpc provider).
	Address string `yaml:"address"`

	// APIKeyEnv names the environment variable holding the API key
	// (anthropic provider).
	APIKeyEnv string `yaml:"api_key_env"`

	// MaxTokens caps generated replies.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature is passed through when positive.
	Temperature float64 `yaml:"temperature"`

	// Timeout bounds each generation call.
	Timeout Duration `yaml:"timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Provider:  LLMProviderStatic,
		APIKeyEnv: "ANTHROPIC_API_KEY",
		MaxTokens: 1024,
		Timeout:   Duration(20 * time.Second),
	}
}
