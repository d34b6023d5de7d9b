package llm

import (
	"context"
	"fmt"
	"strings"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

const (
	classificationMaxTokens = 2000
	strategyMaxTokens       = 4000
	briefMaxTokens          = 2000
)

// ClassificationOracle asks a completion backend to classify content.
type ClassificationOracle struct {
	completer ports.Completer
}

var _ ports.ClassificationOracle = (*ClassificationOracle)(nil)

// NewClassificationOracle wraps a backend.
func NewClassificationOracle(c ports.Completer) *ClassificationOracle {
	return &ClassificationOracle{completer: c}
}

// Classify prompts the backend and decodes its JSON answer.
func (o *ClassificationOracle) Classify(ctx context.Context, req ports.ClassificationRequest) (domain.ClassificationRecord, error) {
	if o == nil || o.completer == nil {
		return domain.ClassificationRecord{}, ports.ErrOracleUnavailable
	}
	text, err := o.completer.Complete(ctx, classificationPrompt(req), classificationMaxTokens)
	if err != nil {
		return domain.ClassificationRecord{}, fmt.Errorf("classify %q: %w", req.Item.Title, err)
	}
	rec, err := DecodeJSON[domain.ClassificationRecord](text)
	if err != nil {
		return domain.ClassificationRecord{}, fmt.Errorf("classify %q: %w", req.Item.Title, err)
	}
	return rec, nil
}

// RecommendationOracle asks a completion backend for a content strategy.
type RecommendationOracle struct {
	completer ports.Completer
}

var _ ports.RecommendationOracle = (*RecommendationOracle)(nil)
var _ ports.BriefOracle = (*RecommendationOracle)(nil)

// NewRecommendationOracle wraps a backend.
func NewRecommendationOracle(c ports.Completer) *RecommendationOracle {
	return &RecommendationOracle{completer: c}
}

// Recommend prompts the backend and decodes the strategy JSON.
func (o *RecommendationOracle) Recommend(ctx context.Context, req ports.StrategyRequest) (domain.Strategy, error) {
	if o == nil || o.completer == nil {
		return domain.Strategy{}, ports.ErrOracleUnavailable
	}
	text, err := o.completer.Complete(ctx, strategyPrompt(req), strategyMaxTokens)
	if err != nil {
		return domain.Strategy{}, fmt.Errorf("recommend strategy: %w", err)
	}
	strategy, err := DecodeJSON[domain.Strategy](text)
	if err != nil {
		return domain.Strategy{}, fmt.Errorf("recommend strategy: %w", err)
	}
	return strategy, nil
}

// Brief asks the backend for a Markdown content brief.
func (o *RecommendationOracle) Brief(ctx context.Context, req ports.BriefRequest) (string, error) {
	if o == nil || o.completer == nil {
		return "", ports.ErrOracleUnavailable
	}
	text, err := o.completer.Complete(ctx, briefPrompt(req), briefMaxTokens)
	if err != nil {
		return "", fmt.Errorf("brief %q: %w", req.Recommendation.Title, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("brief %q: %w: empty reply", req.Recommendation.Title, ports.ErrMalformedResponse)
	}
	return text, nil
}
