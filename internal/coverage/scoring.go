package coverage

import (
	"math"

	"ContentAudit/internal/domain"
)

// Status is the coverage tier of a cell.
type Status string

const (
	StatusStrong   Status = "strong"
	StatusModerate Status = "moderate"
	StatusGap      Status = "gap"
)

const (
	// MaxContentPerCell is the full-weight item count at which density saturates.
	MaxContentPerCell = 5.0

	StrongThreshold   = 70.0
	ModerateThreshold = 40.0

	densityWeight = 0.6
	qualityWeight = 0.4
)

// Density maps a content count onto 0..100, saturating at MaxContentPerCell.
func Density(count float64) float64 {
	return math.Min(100, (count/MaxContentPerCell)*100)
}

// AverageQuality is the mean quality of full-weight items, 0 when there are none.
func AverageQuality(items []domain.ContentRef) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += item.Quality
	}
	return sum / float64(len(items))
}

// CoverageScore weights density over quality and rounds to one decimal.
func CoverageScore(density, avgQuality float64) float64 {
	return round1(density*densityWeight + avgQuality*qualityWeight)
}

// StatusFor applies the fixed strong/moderate thresholds.
func StatusFor(score float64) Status {
	switch {
	case score >= StrongThreshold:
		return StatusStrong
	case score >= ModerateThreshold:
		return StatusModerate
	default:
		return StatusGap
	}
}

// score recomputes the derived fields of a cell from its raw counters.
func (c *Cell) score() {
	c.AvgQuality = AverageQuality(c.ContentItems)
	c.CoverageScore = CoverageScore(Density(c.ContentCount), c.AvgQuality)
	c.Status = StatusFor(c.CoverageScore)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}
