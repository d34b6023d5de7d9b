package usecase

import (
	"fmt"
	"strings"
)

const digestGapLimit = 5

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "[", `\[`, "`", "\\`")

// BuildDigest renders a short Markdown summary of a report for chat channels.
func BuildDigest(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Content audit* `%s`\n", shortID(r.RunID))
	fmt.Fprintf(&b, "Content analyzed: %d", r.Content.TotalContent)
	if r.FallbackRecords > 0 {
		fmt.Fprintf(&b, " (%d without AI analysis)", r.FallbackRecords)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cells: %d strong, %d moderate, %d gaps (%.1f%% covered)\n",
		r.Stats.StrongCount, r.Stats.ModerateCount, r.Stats.GapCount, r.Stats.CoveragePercentage)

	if len(r.Gaps) > 0 {
		b.WriteString("\n*Top gaps*\n")
		for i, gap := range r.Gaps {
			if i == digestGapLimit {
				fmt.Fprintf(&b, "...and %d more\n", len(r.Gaps)-digestGapLimit)
				break
			}
			fmt.Fprintf(&b, "- %s / %s: priority %.1f\n",
				markdownEscaper.Replace(gap.Persona), gap.StageName, gap.Priority)
		}
	}

	if r.Strategy.ExecutiveSummary != "" {
		b.WriteString("\n*Strategy*\n")
		b.WriteString(markdownEscaper.Replace(r.Strategy.ExecutiveSummary))
		b.WriteString("\n")
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
