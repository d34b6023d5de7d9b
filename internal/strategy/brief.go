package strategy

import (
	"context"
	"errors"
	"log/slog"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

// BriefUnavailable is returned when no backend can write briefs.
const BriefUnavailable = "API not available. Please create brief manually."

const briefRelatedLimit = 5

// Brief writes a content brief for one recommended piece aimed at persona.
// Only the first five related records are passed on as reference material.
func (s *Synthesizer) Brief(ctx context.Context, rec domain.ContentRecommendation, persona domain.Persona, related []domain.ClassificationRecord) string {
	if s.briefer == nil {
		s.log(slog.LevelDebug, "brief oracle not configured")
		return BriefUnavailable
	}

	if len(related) > briefRelatedLimit {
		related = related[:briefRelatedLimit]
	}
	brief, err := s.briefer.Brief(ctx, ports.BriefRequest{
		Recommendation: rec,
		Persona:        persona,
		Related:        related,
	})
	if errors.Is(err, ports.ErrOracleUnavailable) {
		s.log(slog.LevelDebug, "brief oracle unavailable", "title", rec.Title, "error", err)
		return BriefUnavailable
	}
	if err != nil {
		s.log(slog.LevelWarn, "brief generation failed", "title", rec.Title, "error", err)
		return "Error generating brief: " + err.Error()
	}
	return brief
}
