package domain

// Stage is one of the three fixed funnel stages.
type Stage string

const (
	StageAwareness     Stage = "awareness"
	StageConsideration Stage = "consideration"
	StageDecision      Stage = "decision"
)

var stageOrder = [...]Stage{StageAwareness, StageConsideration, StageDecision}

// Stages returns the closed stage set in funnel order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder[:])
	return out
}

// ParseStage validates a raw stage string against the closed set.
func ParseStage(raw string) (Stage, bool) {
	s := Stage(raw)
	return s, s.Valid()
}

// Valid reports whether s belongs to the closed stage set.
func (s Stage) Valid() bool {
	switch s {
	case StageAwareness, StageConsideration, StageDecision:
		return true
	}
	return false
}

// StageInfo carries display metadata for a funnel stage.
type StageInfo struct {
	Stage         Stage
	Name          string
	Description   string
	ContentTypes  []string
	IntentSignals []string
}

var stageCatalogue = map[Stage]StageInfo{
	StageAwareness: {
		Stage:         StageAwareness,
		Name:          "Awareness",
		Description:   "Top of funnel - Problem recognition and education",
		ContentTypes:  []string{"blog_post", "social_media", "infographic", "video", "podcast"},
		IntentSignals: []string{"educational", "informational", "thought_leadership"},
	},
	StageConsideration: {
		Stage:         StageConsideration,
		Name:          "Consideration",
		Description:   "Middle of funnel - Solution evaluation and comparison",
		ContentTypes:  []string{"whitepaper", "ebook", "webinar", "comparison_guide", "how_to"},
		IntentSignals: []string{"evaluative", "comparative", "solution_focused"},
	},
	StageDecision: {
		Stage:         StageDecision,
		Name:          "Decision",
		Description:   "Bottom of funnel - Purchase decision and validation",
		ContentTypes:  []string{"case_study", "testimonial", "product_demo", "pricing", "roi_calculator"},
		IntentSignals: []string{"transactional", "proof_seeking", "validation"},
	},
}

// Info returns catalogue metadata; unknown stages get their raw value as name.
func (s Stage) Info() StageInfo {
	if info, ok := stageCatalogue[s]; ok {
		return info
	}
	return StageInfo{Stage: s, Name: string(s)}
}

// DisplayName is the human label of the stage.
func (s Stage) DisplayName() string {
	return s.Info().Name
}

// ContentTypeInfo maps a content type to the stage it usually serves.
// TypicalStage is empty for types that serve every stage.
type ContentTypeInfo struct {
	Name         string
	TypicalStage Stage
}

// ContentTypes is the catalogue of known content types.
var ContentTypes = map[string]ContentTypeInfo{
	"blog_post":        {Name: "blog_post", TypicalStage: StageAwareness},
	"case_study":       {Name: "case_study", TypicalStage: StageDecision},
	"whitepaper":       {Name: "whitepaper", TypicalStage: StageConsideration},
	"ebook":            {Name: "ebook", TypicalStage: StageConsideration},
	"webinar":          {Name: "webinar", TypicalStage: StageConsideration},
	"video":            {Name: "video", TypicalStage: StageAwareness},
	"infographic":      {Name: "infographic", TypicalStage: StageAwareness},
	"email_template":   {Name: "email_template"},
	"sales_deck":       {Name: "sales_deck", TypicalStage: StageDecision},
	"product_sheet":    {Name: "product_sheet", TypicalStage: StageDecision},
	"comparison_guide": {Name: "comparison_guide", TypicalStage: StageConsideration},
	"testimonial":      {Name: "testimonial", TypicalStage: StageDecision},
	"landing_page":     {Name: "landing_page"},
}
