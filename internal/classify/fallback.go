package classify

import (
	"strings"

	"ContentAudit/internal/domain"
)

const (
	fallbackBaseScore    = 50.0
	fallbackKeywordBonus = 10.0
	fallbackConfidence   = 50.0
	fallbackQuality      = 50.0
)

var (
	decisionKeywords      = []string{"case study", "testimonial", "pricing", "demo", "trial", "buy"}
	considerationKeywords = []string{"compare", "vs", "alternative", "solution", "platform", "tool"}
)

// Fallback classifies an item without the oracle. Decision keywords win over
// consideration keywords; anything else is awareness. Each persona starts at 50
// and gains 10 per pain point or goal found verbatim in the text, capped at 100.
// The output depends only on its inputs.
func Fallback(item domain.ContentItem, personas domain.Roster) domain.ClassificationRecord {
	text := strings.ToLower(item.Text)
	title := strings.ToLower(item.Title)

	stage := domain.StageAwareness
	switch {
	case containsAny(text, title, decisionKeywords):
		stage = domain.StageDecision
	case containsAny(text, title, considerationKeywords):
		stage = domain.StageConsideration
	}

	scores := make(map[string]float64, len(personas))
	primary := domain.UnknownPersona
	best := -1.0
	for _, p := range personas {
		score := fallbackBaseScore
		for _, kw := range append(append([]string{}, p.PainPoints...), p.Goals...) {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				score += fallbackKeywordBonus
			}
		}
		if score > 100 {
			score = 100
		}
		scores[p.Name] = score
		if score > best {
			best = score
			primary = p.Name
		}
	}

	contentType := item.Type
	if contentType == "" {
		contentType = "unknown"
	}

	return domain.ClassificationRecord{
		ContentType:       contentType,
		PrimaryPersona:    primary,
		SecondaryPersonas: []string{},
		PersonaScores:     scores,
		FunnelStage:       stage,
		FunnelConfidence:  fallbackConfidence,
		Topics:            []string{},
		Intent:            "educational",
		KeyMessages:       []string{},
		Tone:              "neutral",
		Strengths:         []string{},
		Improvements:      []string{"AI analysis unavailable - manual review recommended"},
		MissingElements:   []string{},
		QualityScore:      fallbackQuality,
		Summary:           "Automated analysis - AI not available",
		OriginalTitle:     item.Title,
		OriginalSource:    item.Source,
		WordCount:         WordCount(item.Text),
		Fallback:          true,
	}
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func containsAny(text, title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) || strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
