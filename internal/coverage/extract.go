package coverage

import (
	"math"
	"sort"

	"ContentAudit/internal/domain"
)

const (
	decisionBonus      = 20.0
	considerationBonus = 10.0

	topContentPerStrength = 3
)

// Gap is a cell below the moderate threshold with its urgency.
type Gap struct {
	Persona       string       `json:"persona"`
	Stage         domain.Stage `json:"stage"`
	StageName     string       `json:"stage_name"`
	CoverageScore float64      `json:"coverage_score"`
	ContentCount  float64      `json:"content_count"`
	Priority      float64      `json:"priority"`
}

// Strength is a strongly covered cell.
type Strength struct {
	Persona       string              `json:"persona"`
	Stage         domain.Stage        `json:"stage"`
	StageName     string              `json:"stage_name"`
	CoverageScore float64             `json:"coverage_score"`
	ContentCount  float64             `json:"content_count"`
	TopContent    []domain.ContentRef `json:"top_content"`
}

// ModerateArea is a cell between the two thresholds.
type ModerateArea struct {
	Persona              string       `json:"persona"`
	Stage                domain.Stage `json:"stage"`
	StageName            string       `json:"stage_name"`
	CoverageScore        float64      `json:"coverage_score"`
	ContentCount         float64      `json:"content_count"`
	ImprovementPotential float64      `json:"improvement_potential"`
}

// SummaryStats counts cells per tier.
type SummaryStats struct {
	TotalCells         int     `json:"total_cells"`
	GapCount           int     `json:"gap_count"`
	ModerateCount      int     `json:"moderate_count"`
	StrongCount        int     `json:"strong_count"`
	GapPercentage      float64 `json:"gap_percentage"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	HighestPriorityGap *Gap    `json:"highest_priority_gap"`
}

// StageBonus weights later funnel stages as more urgent.
func StageBonus(stage domain.Stage) float64 {
	switch stage {
	case domain.StageDecision:
		return decisionBonus
	case domain.StageConsideration:
		return considerationBonus
	default:
		return 0
	}
}

// GapPriority is (100 - score) plus the stage bonus, capped at 100.
func GapPriority(stage domain.Stage, score float64) float64 {
	return math.Min(100, round1(100-score+StageBonus(stage)))
}

// Gaps lists gap cells by descending priority. Equal priorities put later stages
// first, then keep roster order.
func (m *Matrix) Gaps() []Gap {
	gaps := []Gap{}
	m.each(func(c *Cell) {
		if c.Status != StatusGap {
			return
		}
		gaps = append(gaps, Gap{
			Persona:       c.Persona,
			Stage:         c.Stage,
			StageName:     c.Stage.DisplayName(),
			CoverageScore: c.CoverageScore,
			ContentCount:  c.ContentCount,
			Priority:      GapPriority(c.Stage, c.CoverageScore),
		})
	})

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Priority != gaps[j].Priority {
			return gaps[i].Priority > gaps[j].Priority
		}
		return StageBonus(gaps[i].Stage) > StageBonus(gaps[j].Stage)
	})
	return gaps
}

// Strengths lists strong cells in matrix order with their first three items.
func (m *Matrix) Strengths() []Strength {
	strengths := []Strength{}
	m.each(func(c *Cell) {
		if c.Status != StatusStrong {
			return
		}
		top := c.ContentItems
		if len(top) > topContentPerStrength {
			top = top[:topContentPerStrength]
		}
		strengths = append(strengths, Strength{
			Persona:       c.Persona,
			Stage:         c.Stage,
			StageName:     c.Stage.DisplayName(),
			CoverageScore: c.CoverageScore,
			ContentCount:  c.ContentCount,
			TopContent:    append([]domain.ContentRef{}, top...),
		})
	})
	return strengths
}

// ModerateAreas lists moderate cells in matrix order.
func (m *Matrix) ModerateAreas() []ModerateArea {
	areas := []ModerateArea{}
	m.each(func(c *Cell) {
		if c.Status != StatusModerate {
			return
		}
		areas = append(areas, ModerateArea{
			Persona:              c.Persona,
			Stage:                c.Stage,
			StageName:            c.Stage.DisplayName(),
			CoverageScore:        c.CoverageScore,
			ContentCount:         c.ContentCount,
			ImprovementPotential: round1(100 - c.CoverageScore),
		})
	})
	return areas
}

// SummaryStats rolls tier counts up; an empty roster yields zero percentages.
func (m *Matrix) SummaryStats() SummaryStats {
	gaps := m.Gaps()
	moderate := m.ModerateAreas()
	strengths := m.Strengths()
	total := m.TotalCells()

	stats := SummaryStats{
		TotalCells:         total,
		GapCount:           len(gaps),
		ModerateCount:      len(moderate),
		StrongCount:        len(strengths),
		GapPercentage:      percentage(len(gaps), total),
		CoveragePercentage: percentage(len(strengths)+len(moderate), total),
	}
	if len(gaps) > 0 {
		top := gaps[0]
		stats.HighestPriorityGap = &top
	}
	return stats
}
