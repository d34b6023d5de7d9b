package coverage

import (
	"errors"
	"slices"

	"ContentAudit/internal/domain"
)

var (
	// ErrNotInitialized is returned when aggregating a matrix that has no roster yet.
	ErrNotInitialized = errors.New("coverage matrix is not initialized")
	// ErrAlreadyAggregated is returned when aggregating a scored matrix without Reset.
	ErrAlreadyAggregated = errors.New("coverage matrix already aggregated; reset before aggregating again")
)

// State tracks the matrix lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateScored
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateScored:
		return "scored"
	default:
		return "uninitialized"
	}
}

// Cell is one persona/stage intersection.
type Cell struct {
	Persona       string              `json:"persona"`
	Stage         domain.Stage        `json:"stage"`
	ContentCount  float64             `json:"content_count"`
	ContentItems  []domain.ContentRef `json:"content_items"`
	AvgQuality    float64             `json:"avg_quality"`
	CoverageScore float64             `json:"coverage_score"`
	Status        Status              `json:"status"`
}

// Matrix maps persona name → stage → cell. It is owned by a single analysis run.
type Matrix struct {
	state    State
	personas []string
	cells    map[string]map[domain.Stage]*Cell
}

// Initialize creates one zeroed cell per (persona, stage) pair.
func Initialize(personas domain.Roster) *Matrix {
	m := &Matrix{}
	m.Reset(personas)
	return m
}

// Reset zeroes the matrix for the given roster and moves it to Initialized.
// Duplicate persona names keep their first position.
func (m *Matrix) Reset(personas domain.Roster) {
	m.personas = make([]string, 0, len(personas))
	m.cells = make(map[string]map[domain.Stage]*Cell, len(personas))
	for _, p := range personas {
		if _, dup := m.cells[p.Name]; dup {
			continue
		}
		m.personas = append(m.personas, p.Name)
		row := make(map[domain.Stage]*Cell, 3)
		for _, stage := range domain.Stages() {
			row[stage] = &Cell{
				Persona:      p.Name,
				Stage:        stage,
				ContentItems: []domain.ContentRef{},
				Status:       StatusGap,
			}
		}
		m.cells[p.Name] = row
	}
	m.state = StateInitialized
}

// State reports the lifecycle state.
func (m *Matrix) State() State {
	if m == nil {
		return StateUninitialized
	}
	return m.state
}

// Personas returns persona names in roster order.
func (m *Matrix) Personas() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.personas)
}

// TotalCells is |personas| × |stages|.
func (m *Matrix) TotalCells() int {
	if m == nil {
		return 0
	}
	return len(m.personas) * len(domain.Stages())
}

// Cell returns a copy of the cell at (persona, stage).
func (m *Matrix) Cell(persona string, stage domain.Stage) (Cell, bool) {
	if m == nil {
		return Cell{}, false
	}
	c, ok := m.cells[persona][stage]
	if !ok {
		return Cell{}, false
	}
	return c.snapshot(), true
}

// Aggregate folds records into the matrix in input order and scores every cell.
// Primary matches add 1.0 and an item reference; secondary matches add 0.5 only.
// Records naming no known persona touch nothing.
func (m *Matrix) Aggregate(records []domain.ClassificationRecord) error {
	switch m.State() {
	case StateUninitialized:
		return ErrNotInitialized
	case StateScored:
		return ErrAlreadyAggregated
	}

	for _, rec := range records {
		if !rec.FunnelStage.Valid() {
			continue
		}
		if cell, ok := m.cells[rec.PrimaryPersona][rec.FunnelStage]; ok {
			cell.ContentCount += 1.0
			cell.ContentItems = append(cell.ContentItems, rec.Ref())
		}
		for _, name := range rec.SecondaryPersonas {
			if cell, ok := m.cells[name][rec.FunnelStage]; ok {
				cell.ContentCount += 0.5
			}
		}
	}

	m.each(func(c *Cell) { c.score() })
	m.state = StateScored
	return nil
}

// Export returns a detached copy of every cell keyed by persona and stage.
func (m *Matrix) Export() map[string]map[domain.Stage]Cell {
	out := make(map[string]map[domain.Stage]Cell)
	if m == nil {
		return out
	}
	for _, name := range m.personas {
		row := make(map[domain.Stage]Cell, 3)
		for stage, c := range m.cells[name] {
			row[stage] = c.snapshot()
		}
		out[name] = row
	}
	return out
}

// each visits cells persona by persona in roster order, stages in funnel order.
func (m *Matrix) each(fn func(*Cell)) {
	if m == nil {
		return
	}
	for _, name := range m.personas {
		for _, stage := range domain.Stages() {
			fn(m.cells[name][stage])
		}
	}
}

func (c *Cell) snapshot() Cell {
	cp := *c
	cp.ContentItems = slices.Clone(c.ContentItems)
	if cp.ContentItems == nil {
		cp.ContentItems = []domain.ContentRef{}
	}
	return cp
}
