package models

// SegmentType classifies a fragment of analyzed text.
type SegmentType string

const (
	SegmentIntroduction SegmentType = "introduction"
	SegmentInstruction  SegmentType = "instruction"
	SegmentExplanation  SegmentType = "explanation"
	SegmentExample      SegmentType = "example"
	SegmentQuestion     SegmentType = "question"
	SegmentList         SegmentType = "list"
	SegmentCode         SegmentType = "code"
	SegmentConclusion   SegmentType = "conclusion"
	SegmentTransition   SegmentType = "transition"
	SegmentEmphasis     SegmentType = "emphasis"
)

// Priority ranks a segment for display ordering.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DisplayConfig carries per-segment presentation hints. Segments are
// immutable once built, so the config is fixed at construction time.
type DisplayConfig struct {
	MaxLength     int   `json:"max_length"`
	Delay         int64 `json:"delay_ms"`
	AllowSplit    bool  `json:"allow_split"`
	Order         int   `json:"order"`
	ShowTimestamp bool  `json:"show_timestamp"`
	ShowActions   bool  `json:"show_actions"`
}

// Segment is a typed fragment produced by one dissection run. IDs are
// unique within a single run only; there is no identity across runs.
type Segment struct {
	ID           string        `json:"id"`
	Type         SegmentType   `json:"type"`
	Content      string        `json:"content"`
	Priority     Priority      `json:"priority"`
	IsActionable bool          `json:"is_actionable"`
	// Related is reserved for cross-segment links; no strategy fills it yet.
	Related []string      `json:"related,omitempty"`
	Display DisplayConfig `json:"display"`
}
