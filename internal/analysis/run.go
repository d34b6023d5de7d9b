// Package analysis holds the AnalysisRun context: one persona roster, the records
// classified against it and the coverage matrix built from them.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ContentAudit/internal/classify"
	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
)

// Run is owned by a single caller; concurrent analyses use separate runs.
type Run struct {
	id        uuid.UUID
	startedAt time.Time
	personas  domain.Roster
	records   []domain.ClassificationRecord
	matrix    *coverage.Matrix
}

// Start begins a fresh analysis for the roster. The roster is copied and fixed.
func Start(personas domain.Roster) *Run {
	roster := personas.Clone()
	return &Run{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		personas:  roster,
		matrix:    coverage.Initialize(roster),
	}
}

// ID identifies the run.
func (r *Run) ID() uuid.UUID { return r.id }

// StartedAt is when the run began.
func (r *Run) StartedAt() time.Time { return r.startedAt }

// Personas returns a copy of the roster.
func (r *Run) Personas() domain.Roster { return r.personas.Clone() }

// Records returns the classified records in input order.
func (r *Run) Records() []domain.ClassificationRecord {
	return append([]domain.ClassificationRecord(nil), r.records...)
}

// Matrix exposes the run's coverage matrix.
func (r *Run) Matrix() *coverage.Matrix { return r.matrix }

// Analyze records the classified corpus and aggregates it into the matrix.
// A run analyzes once; use Reclassify to replace its records.
func (r *Run) Analyze(records []domain.ClassificationRecord) error {
	if err := r.matrix.Aggregate(records); err != nil {
		return fmt.Errorf("aggregate run %s: %w", r.id, err)
	}
	r.records = append([]domain.ClassificationRecord(nil), records...)
	return nil
}

// Reclassify replaces the records within the existing roster and rebuilds the matrix.
func (r *Run) Reclassify(records []domain.ClassificationRecord) error {
	r.matrix.Reset(r.personas)
	r.records = nil
	return r.Analyze(records)
}

// ContentSummary returns corpus-wide totals, unknown personas included.
func (r *Run) ContentSummary() classify.ContentSummary {
	return classify.Summarize(r.records)
}

// ContentByStage filters records by funnel stage.
func (r *Run) ContentByStage(stage domain.Stage) []domain.ClassificationRecord {
	var out []domain.ClassificationRecord
	for _, rec := range r.records {
		if rec.FunnelStage == stage {
			out = append(out, rec)
		}
	}
	return out
}

// ContentByPersona filters records by primary persona.
func (r *Run) ContentByPersona(name string) []domain.ClassificationRecord {
	var out []domain.ClassificationRecord
	for _, rec := range r.records {
		if rec.PrimaryPersona == name {
			out = append(out, rec)
		}
	}
	return out
}

// FallbackCount reports how many records were classified without the oracle.
func (r *Run) FallbackCount() int {
	n := 0
	for _, rec := range r.records {
		if rec.Fallback {
			n++
		}
	}
	return n
}
