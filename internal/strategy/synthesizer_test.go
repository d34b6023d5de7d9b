package strategy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

type fakeOracle struct {
	got      ports.StrategyRequest
	strategy domain.Strategy
	err      error
}

func (f *fakeOracle) Recommend(_ context.Context, req ports.StrategyRequest) (domain.Strategy, error) {
	f.got = req
	return f.strategy, f.err
}

func sampleGaps() []coverage.Gap {
	return []coverage.Gap{
		{Persona: "Sales", Stage: domain.StageDecision, StageName: "Decision", Priority: 100},
		{Persona: "Sales", Stage: domain.StageConsideration, StageName: "Consideration", Priority: 90},
		{Persona: "CMO", Stage: domain.StageAwareness, StageName: "Awareness", Priority: 65},
		{Persona: "CMO", Stage: domain.StageDecision, StageName: "Decision", Priority: 70},
		{Persona: "Ops", Stage: domain.StageAwareness, StageName: "Awareness", Priority: 60},
		{Persona: "Ops", Stage: domain.StageConsideration, StageName: "Consideration", Priority: 55},
	}
}

func TestFallbackStrategy(t *testing.T) {
	t.Parallel()

	personas := domain.Roster{{Name: "CMO"}, {Name: "Sales"}}
	s := Fallback(sampleGaps(), []coverage.Strength{{Persona: "CMO"}}, personas)

	assert.True(t, s.Fallback)
	assert.Equal(t, "Analysis identified 6 content gaps and 1 strong coverage areas. Priority should be given to creating content for the highest-priority gaps.", s.ExecutiveSummary)
	require.Len(t, s.PriorityContent, 5)

	first := s.PriorityContent[0]
	assert.Equal(t, "case_study", first.Type)
	assert.Equal(t, domain.PriorityHigh, first.Priority)
	assert.Equal(t, "Content for Sales - Decision Stage", first.Title)
	assert.Equal(t, "Gap identified: No content for Sales at Decision stage", first.Rationale)
	assert.Equal(t, "Sales", first.TargetPersona)

	assert.Equal(t, "whitepaper", s.PriorityContent[1].Type)
	assert.Equal(t, "blog_post", s.PriorityContent[2].Type)
	assert.Equal(t, domain.PriorityMedium, s.PriorityContent[2].Priority)
	assert.Equal(t, domain.PriorityMedium, s.PriorityContent[3].Priority, "70 is not above the cutoff")

	assert.Len(t, s.QuarterlyCalendar, 3)
	for _, month := range domain.CalendarMonths {
		assert.NotNil(t, s.QuarterlyCalendar[month])
		assert.Empty(t, s.QuarterlyCalendar[month])
	}
	assert.Len(t, s.PersonaRecommendations, 2)
	assert.Equal(t, "Manual analysis recommended", s.PersonaRecommendations["CMO"].KeyInsight)
	assert.NotNil(t, s.LongTermInitiatives)
	assert.Empty(t, s.LongTermInitiatives)
	assert.Len(t, s.QuickWins, 1)
	assert.Len(t, s.MetricsToTrack, 1)
	assert.Len(t, s.ContentImprovements, 1)
}

func TestFallbackWithNoGaps(t *testing.T) {
	t.Parallel()

	s := Fallback(nil, nil, nil)
	assert.NotNil(t, s.PriorityContent)
	assert.Empty(t, s.PriorityContent)
	assert.NotNil(t, s.PersonaRecommendations)
	assert.Contains(t, s.ExecutiveSummary, "0 content gaps")
}

func TestBuildRequestLimitsAndOrders(t *testing.T) {
	t.Parallel()

	var gaps []coverage.Gap
	var strengths []coverage.Strength
	for i := 0; i < 14; i++ {
		gaps = append(gaps, coverage.Gap{Persona: fmt.Sprintf("p%d", i), Priority: float64(i)})
		strengths = append(strengths, coverage.Strength{Persona: fmt.Sprintf("p%d", i), CoverageScore: float64(70 + i)})
	}

	req := BuildRequest(gaps, strengths, domain.Roster{{Name: "p0"}}, 42)
	require.Len(t, req.Gaps, 10)
	require.Len(t, req.Strengths, 10)
	assert.Equal(t, 13.0, req.Gaps[0].Priority)
	assert.Equal(t, 83.0, req.Strengths[0].CoverageScore)
	assert.Equal(t, 74.0, req.Strengths[9].CoverageScore)
	assert.Equal(t, 42, req.ContentCount)
	assert.Equal(t, 0.0, gaps[0].Priority, "input must not be reordered")
}

func TestGenerateUsesOracle(t *testing.T) {
	t.Parallel()

	oracle := &fakeOracle{strategy: domain.Strategy{
		ExecutiveSummary: "Double down on proof.",
		QuarterlyCalendar: map[string][]domain.CalendarEntry{
			"month_1": {{Week: 1, ContentTitle: "Acme case study"}},
		},
	}}
	s := New(Options{Oracle: oracle}).Generate(context.Background(), Input{
		Gaps:     sampleGaps(),
		Personas: domain.Roster{{Name: "CMO"}},
		Records:  make([]domain.ClassificationRecord, 7),
	})

	assert.False(t, s.Fallback)
	assert.Equal(t, "Double down on proof.", s.ExecutiveSummary)
	assert.Len(t, s.QuarterlyCalendar["month_1"], 1)
	assert.NotNil(t, s.QuarterlyCalendar["month_3"])
	assert.NotNil(t, s.QuickWins)
	assert.Equal(t, 7, oracle.got.ContentCount)
	assert.Len(t, oracle.got.Gaps, 6)
}

func TestGenerateFallsBack(t *testing.T) {
	t.Parallel()

	cases := map[string]*fakeOracle{
		"unavailable": {err: ports.ErrOracleUnavailable},
		"malformed":   {err: fmt.Errorf("decode: %w", ports.ErrMalformedResponse)},
		"empty":       {strategy: domain.Strategy{QuickWins: []string{"x"}}},
	}
	for name, oracle := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			in := Input{Gaps: sampleGaps(), Personas: domain.Roster{{Name: "CMO"}}}
			s := New(Options{Oracle: oracle}).Generate(context.Background(), in)
			assert.Equal(t, Fallback(in.Gaps, nil, in.Personas), s)
		})
	}
}

func TestGenerateDerivesFromMatrix(t *testing.T) {
	t.Parallel()

	m := coverage.Initialize(domain.Roster{{Name: "CMO"}})
	require.NoError(t, m.Aggregate(nil))

	s := New(Options{}).Generate(context.Background(), Input{Matrix: m, Personas: domain.Roster{{Name: "CMO"}}})
	require.Len(t, s.PriorityContent, 3)
	assert.Equal(t, domain.StageDecision, s.PriorityContent[0].FunnelStage, "capped ties put decision first")
	assert.True(t, s.Fallback)
}
