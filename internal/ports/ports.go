package ports

import (
	"context"
	"errors"
	"time"

	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
)

var (
	// ErrOracleUnavailable covers missing backends, credentials or connectivity.
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrMalformedResponse covers oracle output that does not fit the expected schema.
	ErrMalformedResponse = errors.New("oracle returned malformed response")
)

// ContentSource loads the raw corpus to be audited.
type ContentSource interface {
	Load(ctx context.Context) ([]domain.ContentItem, error)
}

// ClassificationRequest is everything the classification oracle sees for one item.
type ClassificationRequest struct {
	Item     domain.ContentItem
	Personas domain.Roster
}

// ClassificationOracle maps one content item onto a classification record.
type ClassificationOracle interface {
	Classify(ctx context.Context, req ClassificationRequest) (domain.ClassificationRecord, error)
}

// StrategyRequest is the structured input of the recommendation oracle.
type StrategyRequest struct {
	Gaps         []coverage.Gap
	Strengths    []coverage.Strength
	Personas     domain.Roster
	ContentCount int
}

// RecommendationOracle turns audit findings into a strategy.
type RecommendationOracle interface {
	Recommend(ctx context.Context, req StrategyRequest) (domain.Strategy, error)
}

// BriefRequest describes one planned piece of content and who it is written for.
type BriefRequest struct {
	Recommendation domain.ContentRecommendation
	Persona        domain.Persona
	Related        []domain.ClassificationRecord
}

// BriefOracle writes a free-text content brief for a writer.
type BriefOracle interface {
	Brief(ctx context.Context, req BriefRequest) (string, error)
}

// Completer sends a single prompt to an LLM backend and returns its text.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Notifier streams audit digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
