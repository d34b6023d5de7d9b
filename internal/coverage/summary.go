package coverage

import "ContentAudit/internal/domain"

// StageSummary rolls one funnel stage up across personas.
type StageSummary struct {
	TotalContent     float64  `json:"total_content"`
	AvgCoverage      float64  `json:"avg_coverage"`
	PersonasWithGaps []string `json:"personas_with_gaps"`
}

// PersonaSummary rolls one persona up across stages. StrongestStage is empty
// when no stage scores above zero.
type PersonaSummary struct {
	TotalContent   float64        `json:"total_content"`
	AvgCoverage    float64        `json:"avg_coverage"`
	StagesWithGaps []domain.Stage `json:"stages_with_gaps"`
	StrongestStage domain.Stage   `json:"strongest_stage,omitempty"`
}

// StageSummary returns one entry per stage; averages are simple means over personas.
func (m *Matrix) StageSummary() map[domain.Stage]StageSummary {
	summary := make(map[domain.Stage]StageSummary, 3)
	for _, stage := range domain.Stages() {
		s := StageSummary{PersonasWithGaps: []string{}}
		var sum float64
		var n int
		if m != nil {
			for _, name := range m.personas {
				c := m.cells[name][stage]
				s.TotalContent += c.ContentCount
				sum += c.CoverageScore
				n++
				if c.Status == StatusGap {
					s.PersonasWithGaps = append(s.PersonasWithGaps, name)
				}
			}
		}
		if n > 0 {
			s.AvgCoverage = round1(sum / float64(n))
		}
		summary[stage] = s
	}
	return summary
}

// PersonaSummary returns one entry per persona. The strongest stage is the first
// stage, in funnel order, whose score strictly exceeds every earlier one and zero.
func (m *Matrix) PersonaSummary() map[string]PersonaSummary {
	summary := make(map[string]PersonaSummary)
	if m == nil {
		return summary
	}
	stages := domain.Stages()
	for _, name := range m.personas {
		s := PersonaSummary{StagesWithGaps: []domain.Stage{}}
		var sum, best float64
		for _, stage := range stages {
			c := m.cells[name][stage]
			s.TotalContent += c.ContentCount
			sum += c.CoverageScore
			if c.CoverageScore > best {
				best = c.CoverageScore
				s.StrongestStage = stage
			}
			if c.Status == StatusGap {
				s.StagesWithGaps = append(s.StagesWithGaps, stage)
			}
		}
		s.AvgCoverage = round1(sum / float64(len(stages)))
		summary[name] = s
	}
	return summary
}
