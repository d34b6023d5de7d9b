package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"ContentAudit/internal/config"
	"ContentAudit/internal/ports"
)

// AnthropicClient implements ports.Completer on the Anthropic Messages API.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

var _ ports.Completer = (*AnthropicClient)(nil)

// NewAnthropicClient builds a client; it fails without an API key.
func NewAnthropicClient(cfg config.AnthropicConfig) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: anthropic api key is not set", ports.ErrOracleUnavailable)
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultAnthropicModel
	}
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
	}, nil
}

// Complete sends a single user message and joins the returned text blocks.
func (a *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic messages: %v", ports.ErrOracleUnavailable, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: anthropic response has no text", ports.ErrMalformedResponse)
	}
	return text.String(), nil
}
