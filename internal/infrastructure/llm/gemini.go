package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"ContentAudit/internal/config"
	"ContentAudit/internal/ports"
)

// GeminiClient implements ports.Completer on Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ ports.Completer = (*GeminiClient)(nil)

// NewGeminiClient builds a client; it fails without an API key.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini api key is not set", ports.ErrOracleUnavailable)
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", ports.ErrOracleUnavailable, err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete generates a single answer for the prompt.
func (g *GeminiClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate: %v", ports.ErrOracleUnavailable, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: gemini response has no text", ports.ErrMalformedResponse)
	}
	return text, nil
}
