package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ContentAudit/internal/coverage"
	"ContentAudit/internal/domain"
	"ContentAudit/internal/usecase"
)

const (
	formatText = "text"
	formatJSON = "json"

	listLimit = 10
)

func renderJSON(w io.Writer, report usecase.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func renderText(w io.Writer, r usecase.Report) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", cyan(fmt.Sprintf("=== Content Audit %s ===", r.RunID)))
	fmt.Fprintf(w, "Content analyzed: %d   Avg quality: %.1f   Words: %d\n",
		r.Content.TotalContent, r.Content.AverageQualityScore, r.Content.TotalWordCount)
	if r.FallbackRecords > 0 {
		fmt.Fprintf(w, "%s\n", yellow(fmt.Sprintf("%d item(s) classified without AI analysis - manual review recommended", r.FallbackRecords)))
	}
	fmt.Fprintf(w, "Cells: %d strong, %d moderate, %d gaps (%.1f%% covered, %.1f%% gaps)\n\n",
		r.Stats.StrongCount, r.Stats.ModerateCount, r.Stats.GapCount,
		r.Stats.CoveragePercentage, r.Stats.GapPercentage)

	renderMatrix(w, r)

	fmt.Fprintf(w, "\n%s\n", yellow("Content gaps:"))
	if len(r.Gaps) == 0 {
		fmt.Fprintf(w, "  %s\n", gray("No gaps"))
	}
	for i, gap := range r.Gaps {
		if i == listLimit {
			fmt.Fprintf(w, "  %s\n", gray(fmt.Sprintf("... %d more", len(r.Gaps)-listLimit)))
			break
		}
		fmt.Fprintf(w, "  %5.1f  %s / %s (score %.1f, %s items)\n",
			gap.Priority, gap.Persona, gap.StageName, gap.CoverageScore, formatCount(gap.ContentCount))
	}

	if len(r.Strengths) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Strengths:"))
		for _, s := range r.Strengths {
			fmt.Fprintf(w, "  %5.1f  %s / %s\n", s.CoverageScore, s.Persona, s.StageName)
			for _, ref := range s.TopContent {
				fmt.Fprintf(w, "         %s\n", gray(ref.Title))
			}
		}
	}

	if len(r.ModerateAreas) > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Moderate coverage:"))
		for _, m := range r.ModerateAreas {
			fmt.Fprintf(w, "  %5.1f  %s / %s (+%.1f possible)\n",
				m.CoverageScore, m.Persona, m.StageName, m.ImprovementPotential)
		}
	}

	renderStrategy(w, r.Strategy)
}

func renderMatrix(w io.Writer, r usecase.Report) {
	width := len("Persona")
	for _, name := range r.Personas {
		if len(name) > width {
			width = len(name)
		}
	}

	header := fmt.Sprintf("  %-*s", width, "Persona")
	for _, stage := range domain.Stages() {
		header += fmt.Sprintf("  %-13s", stage.DisplayName())
	}
	fmt.Fprintln(w, color.New(color.Bold).Sprint(header))

	for _, name := range r.Personas {
		line := fmt.Sprintf("  %-*s", width, name)
		for _, stage := range domain.Stages() {
			cell := r.Matrix[name][stage]
			line += "  " + statusColor(cell.Status)(fmt.Sprintf("%-13s", fmt.Sprintf("%.1f", cell.CoverageScore)))
		}
		fmt.Fprintln(w, line)
	}
}

func renderStrategy(w io.Writer, s domain.Strategy) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	title := "Strategy"
	if s.Fallback {
		title += " (generated without AI)"
	}
	fmt.Fprintf(w, "\n%s\n", cyan(title))
	if s.ExecutiveSummary != "" {
		fmt.Fprintf(w, "  %s\n", s.ExecutiveSummary)
	}

	if len(s.PriorityContent) > 0 {
		fmt.Fprintln(w, "\n  Priority content:")
		for _, rec := range s.PriorityContent {
			fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(rec.Priority), rec.Title)
			fmt.Fprintf(w, "    %s\n", gray(fmt.Sprintf("%s for %s at %s stage", rec.Type, rec.TargetPersona, rec.FunnelStage)))
			if rec.Rationale != "" {
				fmt.Fprintf(w, "    %s\n", gray(rec.Rationale))
			}
		}
	}

	if len(s.QuickWins) > 0 {
		fmt.Fprintln(w, "\n  Quick wins:")
		for _, win := range s.QuickWins {
			fmt.Fprintf(w, "  - %s\n", win)
		}
	}

	if len(s.MetricsToTrack) > 0 {
		fmt.Fprintln(w, "\n  Metrics:")
		for _, m := range s.MetricsToTrack {
			fmt.Fprintf(w, "  - %s (target: %s)\n", m.Metric, m.Target)
		}
	}
	fmt.Fprintln(w)
}

func statusColor(status coverage.Status) func(a ...interface{}) string {
	switch status {
	case coverage.StatusStrong:
		return color.New(color.FgGreen).SprintFunc()
	case coverage.StatusModerate:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

func formatCount(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
