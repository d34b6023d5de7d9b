package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContentAudit/internal/classify"
	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
	"ContentAudit/internal/strategy"
)

type staticSource struct {
	items []domain.ContentItem
	err   error
}

func (s staticSource) Load(context.Context) ([]domain.ContentItem, error) {
	return s.items, s.err
}

type recordingNotifier struct {
	mu      sync.Mutex
	digests []string
	err     error
}

func (n *recordingNotifier) PublishDigest(_ context.Context, digest string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.digests = append(n.digests, digest)
	return n.err
}

type titleOracle map[string]domain.ClassificationRecord

func (o titleOracle) Classify(_ context.Context, req ports.ClassificationRequest) (domain.ClassificationRecord, error) {
	rec, ok := o[req.Item.Title]
	if !ok {
		return domain.ClassificationRecord{}, ports.ErrOracleUnavailable
	}
	return rec, nil
}

type summaryOracle struct{}

func (summaryOracle) Recommend(context.Context, ports.StrategyRequest) (domain.Strategy, error) {
	return domain.Strategy{ExecutiveSummary: "Fill decision-stage gaps first."}, nil
}

func testPersonas() domain.Roster {
	return domain.Roster{
		{Name: "CMO", PainPoints: []string{"ROI"}},
		{Name: "Sales Leader", Goals: []string{"win rate"}},
	}
}

func corpus() []domain.ContentItem {
	return []domain.ContentItem{
		{Title: "Case A", Source: "a.md", Text: "customer results"},
		{Title: "Case B", Source: "b.md", Text: "customer results"},
		{Title: "Trends", Source: "c.md", Text: "industry trends"},
	}
}

func TestPipelineRunWithOracles(t *testing.T) {
	t.Parallel()

	oracle := titleOracle{
		"Case A": {PrimaryPersona: "CMO", FunnelStage: domain.StageDecision, QualityScore: 90},
		"Case B": {PrimaryPersona: "CMO", SecondaryPersonas: []string{"Sales Leader"}, FunnelStage: domain.StageDecision, QualityScore: 70},
		"Trends": {PrimaryPersona: "Analyst", FunnelStage: domain.StageAwareness, QualityScore: 60},
	}
	notifier := &recordingNotifier{}

	p := NewPipeline(PipelineDeps{
		Source:      staticSource{items: corpus()},
		Classifier:  classify.New(classify.Options{Oracle: oracle}),
		Synthesizer: strategy.New(strategy.Options{Oracle: summaryOracle{}}),
		Notifier:    notifier,
		Personas:    testPersonas(),
	})

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{"CMO", "Sales Leader"}, report.Personas)
	assert.Len(t, report.Records, 3)
	assert.Zero(t, report.FallbackRecords)
	assert.Equal(t, 3, report.Content.TotalContent)
	assert.Equal(t, 1, report.Content.ByPersona["Analyst"])

	cell := report.Matrix["CMO"][domain.StageDecision]
	assert.Equal(t, 2.0, cell.ContentCount)
	assert.Equal(t, 80.0, cell.AvgQuality)
	assert.Equal(t, 56.0, cell.CoverageScore)
	assert.Equal(t, coverage.StatusModerate, cell.Status)
	assert.Equal(t, 0.5, report.Matrix["Sales Leader"][domain.StageDecision].ContentCount)

	assert.Equal(t, 6, report.Stats.TotalCells)
	assert.Equal(t, 5, report.Stats.GapCount)
	assert.Equal(t, 1, report.Stats.ModerateCount)
	require.NotNil(t, report.Stats.HighestPriorityGap)
	assert.Equal(t, "Fill decision-stage gaps first.", report.Strategy.ExecutiveSummary)
	assert.False(t, report.Strategy.Fallback)

	require.Len(t, notifier.digests, 1)
	assert.Contains(t, notifier.digests[0], "*Top gaps*")
	assert.Contains(t, notifier.digests[0], "Fill decision-stage gaps first.")
}

func TestPipelineDegradesWithoutOracles(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{Personas: testPersonas()})
	report, err := p.Analyze(context.Background(), corpus())
	require.NoError(t, err)

	assert.Equal(t, 3, report.FallbackRecords)
	assert.True(t, report.Strategy.Fallback)
	for _, rec := range report.Records {
		assert.True(t, rec.Fallback)
		assert.True(t, rec.FunnelStage.Valid())
	}
}

func TestPipelineEmptyCorpus(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{Personas: testPersonas()})
	report, err := p.Analyze(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Stats.GapCount)
	assert.Zero(t, report.Stats.CoveragePercentage)
	require.NotNil(t, report.Stats.HighestPriorityGap)
	assert.Equal(t, "CMO", report.Stats.HighestPriorityGap.Persona)
	assert.Equal(t, domain.StageDecision, report.Stats.HighestPriorityGap.Stage)
	assert.Equal(t, 100.0, report.Stats.HighestPriorityGap.Priority)
}

func TestPipelineErrors(t *testing.T) {
	t.Parallel()

	_, err := NewPipeline(PipelineDeps{}).Run(context.Background())
	assert.Error(t, err)

	loadErr := errors.New("disk gone")
	_, err = NewPipeline(PipelineDeps{Source: staticSource{err: loadErr}}).Run(context.Background())
	assert.ErrorIs(t, err, loadErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewPipeline(PipelineDeps{Personas: testPersonas()}).Analyze(ctx, corpus())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipelineNotifierFailureDoesNotFailRun(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{err: errors.New("telegram down")}
	p := NewPipeline(PipelineDeps{Notifier: notifier, Personas: testPersonas()})

	_, err := p.Analyze(context.Background(), corpus())
	require.NoError(t, err)
	assert.Len(t, notifier.digests, 1)
}

func TestPipelineCopiesRoster(t *testing.T) {
	t.Parallel()

	roster := testPersonas()
	p := NewPipeline(PipelineDeps{Personas: roster})
	roster[0].Name = "mutated"
	assert.Equal(t, "CMO", p.Personas()[0].Name)
}

func TestBuildDigest(t *testing.T) {
	t.Parallel()

	gaps := make([]coverage.Gap, 0, 7)
	for i := 0; i < 7; i++ {
		gaps = append(gaps, coverage.Gap{Persona: "Ops_Lead", StageName: "Decision", Priority: 100})
	}
	digest := BuildDigest(Report{
		RunID:           "0123456789abcdef",
		Gaps:            gaps,
		FallbackRecords: 2,
		Strategy:        domain.Strategy{ExecutiveSummary: "Publish *more* case studies"},
	})

	assert.Contains(t, digest, "`01234567`")
	assert.Contains(t, digest, "(2 without AI analysis)")
	assert.Contains(t, digest, `Ops\_Lead / Decision: priority 100.0`)
	assert.Contains(t, digest, "...and 2 more")
	assert.Contains(t, digest, `Publish \*more\* case studies`)
	assert.Equal(t, 5, strings.Count(digest, "priority 100.0"))
}

type manualDriver struct {
	job     func(time.Time)
	stopped bool
}

func (d *manualDriver) Start(_ context.Context, job func(time.Time)) error {
	d.job = job
	return nil
}

func (d *manualDriver) Stop(context.Context) error {
	d.stopped = true
	return nil
}

func TestSchedulerRunsPipeline(t *testing.T) {
	t.Parallel()

	driver := &manualDriver{}
	p := NewPipeline(PipelineDeps{Source: staticSource{items: corpus()}, Personas: testPersonas()})

	var reports []Report
	s := NewScheduler(driver, p, func(_ time.Time, r Report, err error) {
		require.NoError(t, err)
		reports = append(reports, r)
	})
	require.NoError(t, s.Start(context.Background()))
	require.NotNil(t, driver.job)

	driver.job(time.Now())
	driver.job(time.Now())
	require.Len(t, reports, 2)
	assert.NotEqual(t, reports[0].RunID, reports[1].RunID)

	require.NoError(t, s.Stop(context.Background()))
	assert.True(t, driver.stopped)

	assert.NoError(t, NewScheduler(nil, p, nil).Start(context.Background()))
}
