package strategy

import (
	"fmt"

	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
)

const (
	fallbackGapLimit     = 5
	highPriorityCutoff   = 70.0
	fallbackPersonaHint  = "Manual analysis recommended"
	fallbackAngle        = "Address key pain points"
	fallbackEffort       = "medium"
	fallbackQuickWin     = "Review and update existing content titles and meta descriptions"
	fallbackMetricTarget = "3-5 pieces per cell"
)

// Fallback synthesizes a strategy from the five most urgent gaps without any
// external call. Fields only an oracle can fill stay empty but non-nil.
func Fallback(gaps []coverage.Gap, strengths []coverage.Strength, personas domain.Roster) domain.Strategy {
	top := gaps
	if len(top) > fallbackGapLimit {
		top = top[:fallbackGapLimit]
	}

	content := make([]domain.ContentRecommendation, 0, len(top))
	for _, g := range top {
		priority := domain.PriorityMedium
		if g.Priority > highPriorityCutoff {
			priority = domain.PriorityHigh
		}
		content = append(content, domain.ContentRecommendation{
			Title:           fmt.Sprintf("Content for %s - %s Stage", g.Persona, g.StageName),
			Type:            contentTypeFor(g.Stage),
			TargetPersona:   g.Persona,
			FunnelStage:     g.Stage,
			Priority:        priority,
			Rationale:       fmt.Sprintf("Gap identified: No content for %s at %s stage", g.Persona, g.StageName),
			KeyTopics:       []string{},
			SuggestedAngle:  fallbackAngle,
			EstimatedEffort: fallbackEffort,
		})
	}

	personaRecs := make(map[string]domain.PersonaRecommendation, len(personas))
	for _, p := range personas {
		personaRecs[p.Name] = domain.PersonaRecommendation{
			KeyInsight:          fallbackPersonaHint,
			ContentPriorities:   []string{},
			MessagingThemes:     []string{},
			ContentTypesToFocus: []string{},
		}
	}

	s := domain.Strategy{
		ExecutiveSummary: fmt.Sprintf(
			"Analysis identified %d content gaps and %d strong coverage areas. Priority should be given to creating content for the highest-priority gaps.",
			len(gaps), len(strengths)),
		PriorityContent: content,
		ContentImprovements: []domain.ContentImprovement{{
			ContentArea:    "General",
			CurrentIssue:   "AI analysis unavailable for detailed recommendations",
			Recommendation: "Review content manually for improvement opportunities",
			Impact:         "Variable",
		}},
		PersonaRecommendations: personaRecs,
		QuickWins:              []string{fallbackQuickWin},
		MetricsToTrack: []domain.Metric{{
			Metric: "Content per persona/stage",
			Why:    "Ensure coverage across all segments",
			Target: fallbackMetricTarget,
		}},
		Fallback: true,
	}
	fillEmpty(&s)
	return s
}

func contentTypeFor(stage domain.Stage) string {
	switch stage {
	case domain.StageDecision:
		return "case_study"
	case domain.StageConsideration:
		return "whitepaper"
	default:
		return "blog_post"
	}
}
