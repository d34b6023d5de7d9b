package domain

// UnknownPersona is the sentinel primary persona of records that match nobody.
const UnknownPersona = "Unknown"

// ContentItem is a raw asset handed to the classification oracle.
type ContentItem struct {
	Title  string
	Source string
	Type   string
	Text   string
}

// ContentRef is the lightweight reference a coverage cell keeps per item.
type ContentRef struct {
	Title   string  `json:"title"`
	Source  string  `json:"source"`
	Quality float64 `json:"quality"`
}

// ClassificationRecord is produced once per content item, by the oracle or the
// keyword fallback. FunnelStage is always one of the closed stage set.
type ClassificationRecord struct {
	ContentType       string             `json:"content_type"`
	PrimaryPersona    string             `json:"primary_persona"`
	SecondaryPersonas []string           `json:"secondary_personas"`
	PersonaScores     map[string]float64 `json:"persona_scores"`
	FunnelStage       Stage              `json:"funnel_stage"`
	FunnelConfidence  float64            `json:"funnel_confidence"`
	Topics            []string           `json:"topics"`
	Intent            string             `json:"intent"`
	KeyMessages       []string           `json:"key_messages"`
	Tone              string             `json:"tone"`
	Strengths         []string           `json:"strengths"`
	Improvements      []string           `json:"improvements"`
	MissingElements   []string           `json:"missing_elements"`
	QualityScore      float64            `json:"quality_score"`
	Summary           string             `json:"summary"`

	OriginalTitle  string `json:"original_title"`
	OriginalSource string `json:"original_source"`
	WordCount      int    `json:"word_count"`

	// Fallback marks records produced without the oracle.
	Fallback bool `json:"fallback"`
}

// Ref builds the cell reference for the record.
func (r ClassificationRecord) Ref() ContentRef {
	title := r.OriginalTitle
	if title == "" {
		title = "Untitled"
	}
	return ContentRef{Title: title, Source: r.OriginalSource, Quality: r.QualityScore}
}
