package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContentAudit/internal/domain"
)

func roster(names ...string) domain.Roster {
	r := make(domain.Roster, 0, len(names))
	for _, n := range names {
		r = append(r, domain.Persona{Name: n})
	}
	return r
}

func record(persona string, stage domain.Stage, quality float64, title string) domain.ClassificationRecord {
	return domain.ClassificationRecord{
		PrimaryPersona: persona,
		FunnelStage:    stage,
		QualityScore:   quality,
		OriginalTitle:  title,
		OriginalSource: "test",
	}
}

func TestInitializeZeroesEveryCell(t *testing.T) {
	t.Parallel()

	m := Initialize(roster("CMO", "Sales"))
	require.Equal(t, StateInitialized, m.State())
	assert.Equal(t, 6, m.TotalCells())

	for _, p := range []string{"CMO", "Sales"} {
		for _, s := range domain.Stages() {
			c, ok := m.Cell(p, s)
			require.True(t, ok, "missing cell %s/%s", p, s)
			assert.Zero(t, c.ContentCount)
			assert.Equal(t, StatusGap, c.Status)
			assert.Empty(t, c.ContentItems)
		}
	}
}

func TestInitializeDeduplicatesPersonas(t *testing.T) {
	t.Parallel()

	m := Initialize(roster("CMO", "Sales", "CMO"))
	assert.Equal(t, []string{"CMO", "Sales"}, m.Personas())
	assert.Equal(t, 6, m.TotalCells())
}

func TestAggregatePrimaryAndSecondary(t *testing.T) {
	t.Parallel()

	m := Initialize(roster("CMO", "Sales"))
	rec := record("CMO", domain.StageAwareness, 90, "Intro")
	rec.SecondaryPersonas = []string{"Sales", "Ghost"}
	require.NoError(t, m.Aggregate([]domain.ClassificationRecord{rec}))

	cmo, _ := m.Cell("CMO", domain.StageAwareness)
	assert.Equal(t, 1.0, cmo.ContentCount)
	require.Len(t, cmo.ContentItems, 1)
	assert.Equal(t, domain.ContentRef{Title: "Intro", Source: "test", Quality: 90}, cmo.ContentItems[0])

	sales, _ := m.Cell("Sales", domain.StageAwareness)
	assert.Equal(t, 0.5, sales.ContentCount)
	assert.Empty(t, sales.ContentItems)
	assert.Zero(t, sales.AvgQuality, "half-weight items never feed quality")
	assert.Equal(t, 6.0, sales.CoverageScore)
}

func TestAggregateDropsUnknownPersonas(t *testing.T) {
	t.Parallel()

	m := Initialize(roster("CMO"))
	require.NoError(t, m.Aggregate([]domain.ClassificationRecord{
		record(domain.UnknownPersona, domain.StageDecision, 100, "a"),
		record("cmo", domain.StageDecision, 100, "case mismatch"),
	}))

	for _, s := range domain.Stages() {
		c, _ := m.Cell("CMO", s)
		assert.Zero(t, c.ContentCount)
	}
}

func TestAggregatePreservesInputOrder(t *testing.T) {
	t.Parallel()

	m := Initialize(roster("CMO"))
	require.NoError(t, m.Aggregate([]domain.ClassificationRecord{
		record("CMO", domain.StageDecision, 70, "first"),
		record("CMO", domain.StageDecision, 80, "second"),
		record("CMO", domain.StageDecision, 90, "third"),
	}))

	c, _ := m.Cell("CMO", domain.StageDecision)
	titles := make([]string, 0, len(c.ContentItems))
	for _, item := range c.ContentItems {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"first", "second", "third"}, titles)
	assert.Equal(t, 80.0, c.AvgQuality)
}

func TestAggregateStateGuard(t *testing.T) {
	t.Parallel()

	var zero Matrix
	assert.ErrorIs(t, zero.Aggregate(nil), ErrNotInitialized)

	recs := []domain.ClassificationRecord{record("CMO", domain.StageAwareness, 100, "x")}
	m := Initialize(roster("CMO"))
	require.NoError(t, m.Aggregate(recs))
	require.Equal(t, StateScored, m.State())

	assert.ErrorIs(t, m.Aggregate(recs), ErrAlreadyAggregated)
	c, _ := m.Cell("CMO", domain.StageAwareness)
	assert.Equal(t, 1.0, c.ContentCount, "rejected aggregate must not touch cells")
}

func TestResetThenDoubleFeedDoublesCounts(t *testing.T) {
	t.Parallel()

	recs := []domain.ClassificationRecord{record("CMO", domain.StageAwareness, 100, "x")}
	m := Initialize(roster("CMO"))
	require.NoError(t, m.Aggregate(recs))

	m.Reset(roster("CMO"))
	require.NoError(t, m.Aggregate(append(append([]domain.ClassificationRecord{}, recs...), recs...)))
	c, _ := m.Cell("CMO", domain.StageAwareness)
	assert.Equal(t, 2.0, c.ContentCount)
}

func TestExportIsDetached(t *testing.T) {
	t.Parallel()

	m := Initialize(roster("CMO"))
	require.NoError(t, m.Aggregate([]domain.ClassificationRecord{record("CMO", domain.StageAwareness, 50, "x")}))

	exported := m.Export()
	cell := exported["CMO"][domain.StageAwareness]
	cell.ContentItems[0].Title = "mutated"

	c, _ := m.Cell("CMO", domain.StageAwareness)
	assert.Equal(t, "x", c.ContentItems[0].Title)
	assert.Len(t, exported["CMO"], 3)
}
