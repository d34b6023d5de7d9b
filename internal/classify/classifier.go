package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

const (
	// DefaultMaxContentChars bounds the text prefix sent to the oracle.
	DefaultMaxContentChars = 8000
	defaultConcurrency     = 4
)

// Options configures a Classifier. A nil Oracle means every item uses the fallback.
type Options struct {
	Oracle            ports.ClassificationOracle
	Logger            *slog.Logger
	MaxConcurrency    int
	RequestsPerSecond float64
	MaxContentChars   int
}

// Classifier consults the classification oracle and degrades to the keyword
// fallback per item; it never fails a batch because of the oracle.
type Classifier struct {
	oracle      ports.ClassificationOracle
	logger      *slog.Logger
	limiter     *rate.Limiter
	concurrency int
	maxChars    int
}

// New builds a classifier.
func New(opts Options) *Classifier {
	c := &Classifier{
		oracle:      opts.Oracle,
		logger:      opts.Logger,
		concurrency: opts.MaxConcurrency,
		maxChars:    opts.MaxContentChars,
	}
	if c.concurrency <= 0 {
		c.concurrency = defaultConcurrency
	}
	if c.maxChars <= 0 {
		c.maxChars = DefaultMaxContentChars
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return c
}

// Classify returns a record for item, produced by the oracle when it answers
// with a usable record and by Fallback otherwise.
func (c *Classifier) Classify(ctx context.Context, personas domain.Roster, item domain.ContentItem) domain.ClassificationRecord {
	if c.oracle == nil {
		c.debug("oracle not configured, using fallback", "title", item.Title)
		return Fallback(item, personas)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.debug("rate limiter aborted, using fallback", "title", item.Title, "error", err)
			return Fallback(item, personas)
		}
	}

	req := ports.ClassificationRequest{
		Item:     truncated(item, c.maxChars),
		Personas: personas,
	}
	rec, err := c.oracle.Classify(ctx, req)
	if err == nil {
		rec, err = normalize(rec, item)
	}
	if err != nil {
		c.logFailure(item, err)
		return Fallback(item, personas)
	}
	return rec
}

// ClassifyBatch classifies items concurrently and returns records in input order.
// Only cancellation of ctx makes it fail.
func (c *Classifier) ClassifyBatch(ctx context.Context, personas domain.Roster, items []domain.ContentItem) ([]domain.ClassificationRecord, error) {
	records := make([]domain.ClassificationRecord, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = c.Classify(gctx, personas, item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify batch: %w", err)
	}

	c.debug("batch classified", "items", len(items))
	return records, nil
}

func normalize(rec domain.ClassificationRecord, item domain.ContentItem) (domain.ClassificationRecord, error) {
	if !rec.FunnelStage.Valid() {
		return domain.ClassificationRecord{}, fmt.Errorf("%w: funnel stage %q", ports.ErrMalformedResponse, rec.FunnelStage)
	}
	if rec.PrimaryPersona == "" {
		rec.PrimaryPersona = domain.UnknownPersona
	}
	if rec.SecondaryPersonas == nil {
		rec.SecondaryPersonas = []string{}
	}
	if rec.ContentType == "" {
		rec.ContentType = item.Type
	}
	for name, score := range rec.PersonaScores {
		rec.PersonaScores[name] = clamp(score)
	}
	rec.FunnelConfidence = clamp(rec.FunnelConfidence)
	rec.QualityScore = clamp(rec.QualityScore)

	rec.OriginalTitle = item.Title
	rec.OriginalSource = item.Source
	rec.WordCount = WordCount(item.Text)
	rec.Fallback = false
	return rec, nil
}

func truncated(item domain.ContentItem, maxChars int) domain.ContentItem {
	runes := []rune(item.Text)
	if len(runes) > maxChars {
		item.Text = string(runes[:maxChars])
	}
	return item
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func (c *Classifier) logFailure(item domain.ContentItem, err error) {
	if c.logger == nil {
		return
	}
	if errors.Is(err, ports.ErrOracleUnavailable) {
		c.logger.Debug("classification oracle unavailable, using fallback", "title", item.Title, "error", err)
		return
	}
	c.logger.Warn("classification oracle failed, using fallback", "title", item.Title, "error", err)
}

func (c *Classifier) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
