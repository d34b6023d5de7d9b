package classify

import (
	"math"

	"ContentAudit/internal/domain"
)

// ContentSummary holds corpus-wide totals. Records naming unknown personas are
// counted here even though the coverage matrix ignores them.
type ContentSummary struct {
	TotalContent        int                  `json:"total_content"`
	ByFunnelStage       map[domain.Stage]int `json:"by_funnel_stage"`
	ByPersona           map[string]int       `json:"by_persona"`
	ByContentType       map[string]int       `json:"by_content_type"`
	AverageQualityScore float64              `json:"average_quality_score"`
	TotalWordCount      int                  `json:"total_word_count"`
}

// Summarize computes corpus totals over classified records.
func Summarize(records []domain.ClassificationRecord) ContentSummary {
	s := ContentSummary{
		TotalContent:  len(records),
		ByFunnelStage: make(map[domain.Stage]int, 3),
		ByPersona:     map[string]int{},
		ByContentType: map[string]int{},
	}
	for _, stage := range domain.Stages() {
		s.ByFunnelStage[stage] = 0
	}

	var quality float64
	for _, rec := range records {
		s.ByFunnelStage[rec.FunnelStage]++

		persona := rec.PrimaryPersona
		if persona == "" {
			persona = domain.UnknownPersona
		}
		s.ByPersona[persona]++

		ctype := rec.ContentType
		if ctype == "" {
			ctype = "unknown"
		}
		s.ByContentType[ctype]++

		quality += rec.QualityScore
		s.TotalWordCount += rec.WordCount
	}

	if len(records) > 0 {
		s.AverageQualityScore = math.Round(quality/float64(len(records))*10) / 10
	}
	return s
}
