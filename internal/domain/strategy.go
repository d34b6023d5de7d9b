package domain

// Priority labels used for recommended content.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Calendar month keys of the quarterly plan.
var CalendarMonths = []string{"month_1", "month_2", "month_3"}

// Strategy is the recommendation bundle built from gaps, strengths and personas.
type Strategy struct {
	ExecutiveSummary       string                           `json:"executive_summary"`
	PriorityContent        []ContentRecommendation          `json:"priority_content_to_create"`
	ContentImprovements    []ContentImprovement             `json:"content_improvements"`
	QuarterlyCalendar      map[string][]CalendarEntry       `json:"quarterly_calendar"`
	PersonaRecommendations map[string]PersonaRecommendation `json:"persona_specific_recommendations"`
	QuickWins              []string                         `json:"quick_wins"`
	LongTermInitiatives    []Initiative                     `json:"long_term_initiatives"`
	MetricsToTrack         []Metric                         `json:"metrics_to_track"`

	// Fallback marks strategies synthesized locally.
	Fallback bool `json:"fallback"`
}

// ContentRecommendation is one piece of content to create.
type ContentRecommendation struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	TargetPersona   string   `json:"target_persona"`
	FunnelStage     Stage    `json:"funnel_stage"`
	Priority        string   `json:"priority"`
	Rationale       string   `json:"rationale"`
	KeyTopics       []string `json:"key_topics"`
	SuggestedAngle  string   `json:"suggested_angle"`
	EstimatedEffort string   `json:"estimated_effort"`
}

// ContentImprovement targets an existing content area.
type ContentImprovement struct {
	ContentArea    string `json:"content_area"`
	CurrentIssue   string `json:"current_issue"`
	Recommendation string `json:"recommendation"`
	Impact         string `json:"impact"`
}

// CalendarEntry schedules one piece of content.
type CalendarEntry struct {
	Week          int    `json:"week"`
	ContentTitle  string `json:"content_title"`
	ContentType   string `json:"content_type"`
	TargetPersona string `json:"target_persona"`
}

// PersonaRecommendation groups advice for one persona.
type PersonaRecommendation struct {
	KeyInsight          string   `json:"key_insight"`
	ContentPriorities   []string `json:"content_priorities"`
	MessagingThemes     []string `json:"messaging_themes"`
	ContentTypesToFocus []string `json:"content_types_to_focus"`
}

// Initiative is a long-term programme.
type Initiative struct {
	Initiative      string `json:"initiative"`
	Timeline        string `json:"timeline"`
	ResourcesNeeded string `json:"resources_needed"`
	ExpectedOutcome string `json:"expected_outcome"`
}

// Metric is a KPI to track.
type Metric struct {
	Metric string `json:"metric"`
	Why    string `json:"why"`
	Target string `json:"target"`
}
