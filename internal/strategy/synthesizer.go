// Package strategy turns coverage findings into a content strategy, through the
// recommendation oracle when it answers usefully and locally otherwise.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

const (
	promptGapLimit      = 10
	promptStrengthLimit = 10
)

// Input carries the audit artefacts a strategy is built from. When Gaps or
// Strengths are nil they are derived from Matrix.
type Input struct {
	Gaps      []coverage.Gap
	Strengths []coverage.Strength
	Personas  domain.Roster
	Records   []domain.ClassificationRecord
	Matrix    *coverage.Matrix
}

// Options configures a Synthesizer. A nil Oracle always yields the fallback.
// Briefer defaults to Oracle when the oracle can also write briefs.
type Options struct {
	Oracle  ports.RecommendationOracle
	Briefer ports.BriefOracle
	Logger  *slog.Logger
}

// Synthesizer builds strategies and content briefs.
type Synthesizer struct {
	oracle  ports.RecommendationOracle
	briefer ports.BriefOracle
	logger  *slog.Logger
}

// New builds a synthesizer.
func New(opts Options) *Synthesizer {
	briefer := opts.Briefer
	if briefer == nil {
		if b, ok := opts.Oracle.(ports.BriefOracle); ok {
			briefer = b
		}
	}
	return &Synthesizer{oracle: opts.Oracle, briefer: briefer, logger: opts.Logger}
}

// Generate always returns a complete strategy; oracle failures degrade to Fallback.
func (s *Synthesizer) Generate(ctx context.Context, in Input) domain.Strategy {
	gaps, strengths := in.Gaps, in.Strengths
	if gaps == nil && in.Matrix != nil {
		gaps = in.Matrix.Gaps()
	}
	if strengths == nil && in.Matrix != nil {
		strengths = in.Matrix.Strengths()
	}

	if s.oracle == nil {
		s.log(slog.LevelDebug, "recommendation oracle not configured, using fallback")
		return Fallback(gaps, strengths, in.Personas)
	}

	req := BuildRequest(gaps, strengths, in.Personas, len(in.Records))
	strategy, err := s.oracle.Recommend(ctx, req)
	if err == nil {
		strategy, err = normalize(strategy)
	}
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ports.ErrOracleUnavailable) {
			level = slog.LevelDebug
		}
		s.log(level, "recommendation oracle failed, using fallback", "error", err)
		return Fallback(gaps, strengths, in.Personas)
	}
	return strategy
}

// BuildRequest keeps the ten most urgent gaps and the ten best-scored strengths.
func BuildRequest(gaps []coverage.Gap, strengths []coverage.Strength, personas domain.Roster, contentCount int) ports.StrategyRequest {
	topGaps := append([]coverage.Gap(nil), gaps...)
	sort.SliceStable(topGaps, func(i, j int) bool { return topGaps[i].Priority > topGaps[j].Priority })
	if len(topGaps) > promptGapLimit {
		topGaps = topGaps[:promptGapLimit]
	}

	topStrengths := append([]coverage.Strength(nil), strengths...)
	sort.SliceStable(topStrengths, func(i, j int) bool {
		return topStrengths[i].CoverageScore > topStrengths[j].CoverageScore
	})
	if len(topStrengths) > promptStrengthLimit {
		topStrengths = topStrengths[:promptStrengthLimit]
	}

	return ports.StrategyRequest{
		Gaps:         topGaps,
		Strengths:    topStrengths,
		Personas:     personas,
		ContentCount: contentCount,
	}
}

func normalize(s domain.Strategy) (domain.Strategy, error) {
	if s.ExecutiveSummary == "" && len(s.PriorityContent) == 0 {
		return domain.Strategy{}, fmt.Errorf("%w: strategy has no summary and no priority content", ports.ErrMalformedResponse)
	}
	fillEmpty(&s)
	s.Fallback = false
	return s, nil
}

// fillEmpty replaces nil collections so consumers never see null fields.
func fillEmpty(s *domain.Strategy) {
	if s.PriorityContent == nil {
		s.PriorityContent = []domain.ContentRecommendation{}
	}
	for i := range s.PriorityContent {
		if s.PriorityContent[i].KeyTopics == nil {
			s.PriorityContent[i].KeyTopics = []string{}
		}
	}
	if s.ContentImprovements == nil {
		s.ContentImprovements = []domain.ContentImprovement{}
	}
	if s.QuarterlyCalendar == nil {
		s.QuarterlyCalendar = map[string][]domain.CalendarEntry{}
	}
	for _, month := range domain.CalendarMonths {
		if s.QuarterlyCalendar[month] == nil {
			s.QuarterlyCalendar[month] = []domain.CalendarEntry{}
		}
	}
	if s.PersonaRecommendations == nil {
		s.PersonaRecommendations = map[string]domain.PersonaRecommendation{}
	}
	if s.QuickWins == nil {
		s.QuickWins = []string{}
	}
	if s.LongTermInitiatives == nil {
		s.LongTermInitiatives = []domain.Initiative{}
	}
	if s.MetricsToTrack == nil {
		s.MetricsToTrack = []domain.Metric{}
	}
}

func (s *Synthesizer) log(level slog.Level, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Log(context.Background(), level, msg, args...)
	}
}
