package llm

import (
	"fmt"
	"strings"

	"ContentAudit/internal/domain"
	"ContentAudit/internal/ports"
)

const classificationSchema = `{
  "content_type": "blog_post|case_study|whitepaper|ebook|webinar|...",
  "primary_persona": "exact persona name from the list",
  "secondary_personas": ["other exact persona names"],
  "persona_scores": {"persona name": 0-100},
  "funnel_stage": "awareness|consideration|decision",
  "funnel_confidence": 0-100,
  "topics": ["main topics"],
  "intent": "educational|comparative|promotional|proof|other",
  "key_messages": ["key messages"],
  "tone": "formal|casual|technical|inspirational",
  "strengths": ["what works"],
  "improvements": ["suggested improvements"],
  "missing_elements": ["elements that would strengthen it"],
  "quality_score": 0-100,
  "summary": "two or three sentences"
}`

const strategySchema = `{
  "executive_summary": "overview of findings and recommendations",
  "priority_content_to_create": [{"title": "", "type": "", "target_persona": "", "funnel_stage": "awareness|consideration|decision", "priority": "high|medium|low", "rationale": "", "key_topics": [], "suggested_angle": "", "estimated_effort": "small|medium|large"}],
  "content_improvements": [{"content_area": "", "current_issue": "", "recommendation": "", "impact": ""}],
  "quarterly_calendar": {"month_1": [{"week": 1, "content_title": "", "content_type": "", "target_persona": ""}], "month_2": [], "month_3": []},
  "persona_specific_recommendations": {"persona name": {"key_insight": "", "content_priorities": [], "messaging_themes": [], "content_types_to_focus": []}},
  "quick_wins": [""],
  "long_term_initiatives": [{"initiative": "", "timeline": "", "resources_needed": "", "expected_outcome": ""}],
  "metrics_to_track": [{"metric": "", "why": "", "target": ""}]
}`

func classificationPrompt(req ports.ClassificationRequest) string {
	var b strings.Builder
	b.WriteString("Classify the content asset below for a B2B content audit.\n\n")
	fmt.Fprintf(&b, "Title: %s\nSource: %s\nType: %s\n\nText:\n%s\n\n",
		orDefault(req.Item.Title, "Untitled"),
		orDefault(req.Item.Source, "Unknown"),
		orDefault(req.Item.Type, "Unknown"),
		req.Item.Text)

	b.WriteString("Personas:\n")
	for _, p := range req.Personas {
		fmt.Fprintf(&b, "- %s: %s. Pain points: %s\n", p.Name, p.Description, strings.Join(p.PainPoints, ", "))
	}

	b.WriteString("\nFunnel stages:\n")
	for _, stage := range domain.Stages() {
		info := stage.Info()
		fmt.Fprintf(&b, "- %s: %s\n", stage, info.Description)
	}

	b.WriteString("\nAnswer with a single JSON object of this shape and nothing else:\n")
	b.WriteString(classificationSchema)
	return b.String()
}

func strategyPrompt(req ports.StrategyRequest) string {
	var b strings.Builder
	b.WriteString("You plan B2B content strategy. Build a quarterly plan from this content audit.\n\n")

	b.WriteString("Personas:\n")
	for _, p := range req.Personas {
		pains := p.PainPoints
		if len(pains) > 3 {
			pains = pains[:3]
		}
		fmt.Fprintf(&b, "- %s: %s. Pain points: %s\n", p.Name, p.Description, strings.Join(pains, ", "))
	}

	b.WriteString("\nCoverage gaps, most urgent first:\n")
	for _, g := range req.Gaps {
		fmt.Fprintf(&b, "- %s at %s stage (priority %.1f)\n", g.Persona, g.StageName, g.Priority)
	}

	b.WriteString("\nStrong coverage:\n")
	for _, s := range req.Strengths {
		fmt.Fprintf(&b, "- %s at %s stage (score %.1f)\n", s.Persona, s.StageName, s.CoverageScore)
	}

	fmt.Fprintf(&b, "\nContent pieces analyzed: %d\n\n", req.ContentCount)
	b.WriteString("Fill the highest-priority gaps first and build on the strong areas. ")
	b.WriteString("Answer with a single JSON object of this shape and nothing else:\n")
	b.WriteString(strategySchema)
	return b.String()
}

const relatedSummaryChars = 100

func briefPrompt(req ports.BriefRequest) string {
	rec, p := req.Recommendation, req.Persona
	stage := string(rec.FunnelStage)

	var b strings.Builder
	b.WriteString("Create a detailed content brief for the following piece.\n\n")
	fmt.Fprintf(&b, "Content to create:\nTitle: %s\nType: %s\nFunnel stage: %s\n\n",
		orDefault(rec.Title, "TBD"),
		orDefault(rec.Type, "blog_post"),
		orDefault(stage, string(domain.StageAwareness)))
	fmt.Fprintf(&b, "Target persona:\nName: %s\nDescription: %s\nPain points: %s\nGoals: %s\n",
		orDefault(p.Name, domain.UnknownPersona),
		orDefault(p.Description, "N/A"),
		strings.Join(p.PainPoints, ", "),
		strings.Join(p.Goals, ", "))

	if len(req.Related) > 0 {
		b.WriteString("\nRelated existing content:\n")
		for _, r := range req.Related {
			summary := []rune(r.Summary)
			if len(summary) > relatedSummaryChars {
				summary = summary[:relatedSummaryChars]
			}
			fmt.Fprintf(&b, "- %s: %s\n", orDefault(r.OriginalTitle, "Untitled"), string(summary))
		}
	}

	b.WriteString(`
Write the brief in Markdown with these sections:
1. Working title options (3)
2. Target keywords (5-7)
3. Content outline with sections
4. Key messages to convey
5. Desired reader takeaways
6. Call-to-action recommendations
7. Internal linking opportunities
8. Visual and media suggestions
9. Distribution channels
10. Success metrics

Give actionable, specific guidance.`)
	return b.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
