package parser

import (
	"context"
	"fmt"
	"log/slog"

	"ContentAudit/internal/config"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/loader"
	"ContentAudit/internal/ports"
)

// StrategySource implements ContentSource by dispatching each corpus entry to its loader.
type StrategySource struct {
	registry *loader.Registry
	entries  []config.ContentConfig
	logger   *slog.Logger
}

var _ ports.ContentSource = (*StrategySource)(nil)

// NewStrategySource wires a loader registry with config-defined corpus entries.
func NewStrategySource(reg *loader.Registry, entries []config.ContentConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		entries:  entries,
		logger:   log,
	}
}

// Load reads every entry in manifest order. A failing entry is logged and skipped;
// Load only fails when the context ends or no entry could be loaded at all.
func (s *StrategySource) Load(ctx context.Context) ([]domain.ContentItem, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("loader registry is not configured")
	}

	s.debug("load corpus", "entries", len(s.entries))

	items := make([]domain.ContentItem, 0, len(s.entries))
	var lastErr error
	for i, entry := range s.entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kind := entry.ResolvedKind()
		l, err := s.registry.Resolve(kind)
		if err != nil {
			lastErr = fmt.Errorf("corpus entry %d: %w", i, err)
			s.warn("skip corpus entry", "index", i, "kind", kind, "error", err)
			continue
		}

		item, err := l.Load(ctx, toRequest(entry))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = fmt.Errorf("load corpus entry %d (%s): %w", i, kind, err)
			s.warn("skip corpus entry", "index", i, "kind", kind, "error", err)
			continue
		}
		s.debug("entry loaded", "index", i, "kind", kind, "title", item.Title)
		items = append(items, item)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, fmt.Errorf("no corpus entry could be loaded: %w", lastErr)
	}
	s.debug("corpus loaded", "items", len(items), "skipped", len(s.entries)-len(items))
	return items, nil
}

func toRequest(entry config.ContentConfig) loader.Request {
	return loader.Request{
		Title:  entry.Title,
		Source: entry.Source,
		Type:   entry.Type,
		Text:   entry.Text,
		Path:   entry.Path,
		URL:    entry.URL,
	}
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *StrategySource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
