package models

// Complexity buckets text by length and structure.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// ContentType is a coarse topical tag inferred from keyword presence,
// used only to steer strategy selection.
type ContentType string

const (
	ContentInstructional ContentType = "instructional"
	ContentEducational   ContentType = "educational"
	ContentCreative      ContentType = "creative"
	ContentAnalytical    ContentType = "analytical"
	ContentCollaborative ContentType = "collaborative"
	ContentTechnical     ContentType = "technical"
	ContentStrategic     ContentType = "strategic"
)

// PromptContext is optional caller-supplied context. Framework, stage and
// tool are carried through for display and persistence only; they never
// influence how text is segmented.
type PromptContext struct {
	Framework       string   `json:"framework,omitempty"`
	Stage           string   `json:"stage,omitempty"`
	Tool            string   `json:"tool,omitempty"`
	UserIntent      string   `json:"user_intent,omitempty"`
	PreviousContext []string `json:"previous_context,omitempty"`
}

// TextMetadata holds statistics derived from one pass over the raw text.
// It is recomputed per analysis and never mutated afterwards.
type TextMetadata struct {
	TotalLength     int           `json:"total_length"`
	ReadingTime     int           `json:"reading_time"` // minutes, rounded up
	Complexity      Complexity    `json:"complexity"`
	ContentTypes    []ContentType `json:"content_types"`
	HasInstructions bool          `json:"has_instructions"`
	HasExamples     bool          `json:"has_examples"`
	HasQuestions    bool          `json:"has_questions"`
	HasLists        bool          `json:"has_lists"`
	HasCode         bool          `json:"has_code"`
	Framework       string        `json:"framework,omitempty"`
	Stage           string        `json:"stage,omitempty"`
	Tool            string        `json:"tool,omitempty"`
}

// HasContentType reports whether tag was inferred for the text.
func (m TextMetadata) HasContentType(tag ContentType) bool {
	for _, t := range m.ContentTypes {
		if t == tag {
			return true
		}
	}
	return false
}
