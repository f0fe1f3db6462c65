package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hireflow/scout/pkg/config"
)

// MessagesClient captures the subset of the Anthropic SDK the adapter
// uses. *sdk.MessageService satisfies it, so tests can pass a stub.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Anthropic generates replies with the Claude Messages API.
type Anthropic struct {
	msg         MessagesClient
	model       string
	maxTokens   int64
	temperature float64
	timeout     config.Duration
}

// NewAnthropic builds the adapter over an existing messages client.
func NewAnthropic(msg MessagesClient, cfg *config.LLMConfig) (*Anthropic, error) {
	if msg == nil {
		return nil, errors.New("anthropic responder: messages client is required")
	}
	if cfg == nil {
		cfg = config.DefaultLLMConfig()
	}
	if cfg.Model == "" {
		return nil, errors.New("anthropic responder: model is required")
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = config.DefaultLLMConfig().MaxTokens
	}
	return &Anthropic{
		msg:         msg,
		model:       cfg.Model,
		maxTokens:   int64(maxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// NewAnthropicFromKey constructs the adapter with the SDK's default HTTP
// client.
func NewAnthropicFromKey(apiKey string, cfg *config.LLMConfig) (*Anthropic, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic responder: api key is required")
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropic(&client.Messages, cfg)
}

// GenerateCandidateReply implements Responder.
func (a *Anthropic) GenerateCandidateReply(ctx context.Context, req Request) (string, error) {
	messages := toAnthropicMessages(req.Messages)
	if len(messages) == 0 {
		err := errors.New("anthropic responder: messages are required")
		observe(config.LLMProviderAnthropic, "", err)
		return "", err
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages:  messages,
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if a.temperature > 0 {
		params.Temperature = sdk.Float(a.temperature)
	}

	callCtx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()
	msg, err := a.msg.New(callCtx, params)
	if err != nil {
		observe(config.LLMProviderAnthropic, "", err)
		return "", fmt.Errorf("anthropic generate failed: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	content := strings.TrimSpace(b.String())
	observe(config.LLMProviderAnthropic, content, nil)
	return content, nil
}

// toAnthropicMessages maps dialogue turns onto the SDK's user/assistant
// params. System content travels in MessageNewParams.System, so a stray
// system-role turn is sent as user text.
func toAnthropicMessages(msgs []Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		block := sdk.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			out = append(out, sdk.NewAssistantMessage(block))
			continue
		}
		out = append(out, sdk.NewUserMessage(block))
	}
	return out
}
