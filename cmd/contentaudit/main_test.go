package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/usecase"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const testConfig = `
logging:
  level: error
oracle:
  backend: none
personas:
  - name: CMO
    painPoints: [ROI]
  - name: Sales Leader
corpus:
  - title: Pricing
    text: Pricing plans and a free trial.
  - title: Buyer guide
    text: Compare platforms before you buy a tool.
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("ORACLE_BACKEND", "none")
	t.Setenv("LOG_LEVEL", "error")
	configPath, corpusPath, personasPath, outputFormat, every, notify = "", "", "", formatText, 0, false
	briefTitle, briefType, briefStage, briefPersona, briefWithCorpus = "", "blog_post", "awareness", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAnalyzeJSON(t *testing.T) {
	cfg := writeTemp(t, "config.yaml", testConfig)

	out, err := execute(t, "--config", cfg, "analyze", "--format", "json")
	require.NoError(t, err)

	var report usecase.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"CMO", "Sales Leader"}, report.Personas)
	assert.Equal(t, 2, report.Content.TotalContent)
	assert.Equal(t, 2, report.FallbackRecords)
	assert.Equal(t, 6, report.Stats.TotalCells)
	assert.True(t, report.Strategy.Fallback)
	assert.Len(t, report.Matrix, 2)
}

func TestAnalyzeTextWithCorpusAndPersonaFiles(t *testing.T) {
	cfg := writeTemp(t, "config.yaml", testConfig)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "story.md"), []byte("A customer case study with results."), 0o600))
	corpus := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(corpus, []byte("- path: story.md\n"), 0o600))
	personas := writeTemp(t, "personas.yaml", "- name: Developer\n")

	out, err := execute(t, "--config", cfg, "analyze", "--corpus", corpus, "--personas", personas)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Content Audit")
	assert.Contains(t, out, "Content analyzed: 1")
	assert.Contains(t, out, "Developer")
	assert.Contains(t, out, "Content gaps:")
	assert.Contains(t, out, "Strategy (generated without AI)")
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "analyze", "--format", "xml")
	assert.Error(t, err)
}

func TestPersonasCommand(t *testing.T) {
	cfg := writeTemp(t, "config.yaml", testConfig)

	out, err := execute(t, "--config", cfg, "personas")
	require.NoError(t, err)
	assert.Contains(t, out, "CMO")
	assert.Contains(t, out, "Pain points: ROI")
	assert.Contains(t, out, "Sales Leader")

	out, err = execute(t, "--config", cfg, "personas", "sales leader")
	require.NoError(t, err)
	assert.Contains(t, out, "Sales Leader")
	assert.NotContains(t, out, "CMO")

	_, err = execute(t, "--config", cfg, "personas", "nobody")
	assert.Error(t, err)
}

func TestBriefCommandWithoutBackend(t *testing.T) {
	cfg := writeTemp(t, "config.yaml", testConfig)

	out, err := execute(t, "--config", cfg, "brief", "--title", "ROI calculator", "--persona", "cmo", "--stage", "Decision", "--with-corpus")
	require.NoError(t, err)
	assert.Equal(t, "API not available. Please create brief manually.\n", out)

	_, err = execute(t, "--config", cfg, "brief", "--title", "x", "--persona", "nobody")
	assert.Error(t, err)

	_, err = execute(t, "--config", cfg, "brief", "--title", "x", "--persona", "CMO", "--stage", "retention")
	assert.Error(t, err)
}

func TestRenderTextMatrix(t *testing.T) {
	var buf bytes.Buffer
	report := usecase.Report{
		RunID:    "run-1",
		Personas: []string{"CMO"},
		Matrix: map[string]map[domain.Stage]coverage.Cell{
			"CMO": {
				domain.StageAwareness:     {CoverageScore: 84, Status: coverage.StatusStrong},
				domain.StageConsideration: {CoverageScore: 56, Status: coverage.StatusModerate},
				domain.StageDecision:      {CoverageScore: 0, Status: coverage.StatusGap},
			},
		},
		Gaps: []coverage.Gap{{Persona: "CMO", StageName: "Decision", Priority: 100, ContentCount: 0.5}},
		Strengths: []coverage.Strength{{
			Persona: "CMO", StageName: "Awareness", CoverageScore: 84,
			TopContent: []domain.ContentRef{{Title: "Trends report"}},
		}},
		ModerateAreas: []coverage.ModerateArea{{Persona: "CMO", StageName: "Consideration", CoverageScore: 56, ImprovementPotential: 44}},
		Strategy: domain.Strategy{
			ExecutiveSummary: "Focus on decision content.",
			PriorityContent:  []domain.ContentRecommendation{{Title: "ROI case study", Priority: domain.PriorityHigh}},
			QuickWins:        []string{"Add CTAs"},
			MetricsToTrack:   []domain.Metric{{Metric: "Pipeline", Target: "+10%"}},
		},
	}
	renderText(&buf, report)
	out := buf.String()

	lines := strings.Split(out, "\n")
	var row string
	for _, l := range lines {
		if strings.HasPrefix(l, "  CMO") {
			row = l
			break
		}
	}
	assert.Equal(t, "  CMO      84.0           56.0           0.0          ", row)
	assert.Contains(t, out, "100.0  CMO / Decision (score 0.0, 0.5 items)")
	assert.Contains(t, out, "Trends report")
	assert.Contains(t, out, "(+44.0 possible)")
	assert.Contains(t, out, "[HIGH] ROI case study")
	assert.Contains(t, out, "- Add CTAs")
	assert.Contains(t, out, "- Pipeline (target: +10%)")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "2", formatCount(2))
	assert.Equal(t, "1.5", formatCount(1.5))
}
