package usecase

import (
	"time"

	"ContentAudit/internal/analysis"
	"ContentAudit/internal/classify"
	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
)

// Report is the complete outcome of one audit run.
type Report struct {
	RunID           string                                    `json:"run_id"`
	GeneratedAt     time.Time                                 `json:"generated_at"`
	Personas        []string                                  `json:"personas"`
	Stats           coverage.SummaryStats                     `json:"summary_stats"`
	Gaps            []coverage.Gap                            `json:"gaps"`
	Strengths       []coverage.Strength                       `json:"strengths"`
	ModerateAreas   []coverage.ModerateArea                   `json:"moderate_areas"`
	StageSummary    map[domain.Stage]coverage.StageSummary    `json:"stage_summary"`
	PersonaSummary  map[string]coverage.PersonaSummary        `json:"persona_summary"`
	Content         classify.ContentSummary                   `json:"content_summary"`
	Matrix          map[string]map[domain.Stage]coverage.Cell `json:"matrix"`
	Strategy        domain.Strategy                           `json:"strategy"`
	Records         []domain.ClassificationRecord             `json:"records"`
	FallbackRecords int                                       `json:"fallback_records"`
}

func newReport(run *analysis.Run, strat domain.Strategy) Report {
	m := run.Matrix()
	return Report{
		RunID:           run.ID().String(),
		GeneratedAt:     run.StartedAt(),
		Personas:        m.Personas(),
		Stats:           m.SummaryStats(),
		Gaps:            m.Gaps(),
		Strengths:       m.Strengths(),
		ModerateAreas:   m.ModerateAreas(),
		StageSummary:    m.StageSummary(),
		PersonaSummary:  m.PersonaSummary(),
		Content:         run.ContentSummary(),
		Matrix:          m.Export(),
		Strategy:        strat,
		Records:         run.Records(),
		FallbackRecords: run.FallbackCount(),
	}
}
