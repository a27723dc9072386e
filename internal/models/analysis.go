package models

import "time"

// Strategy names the algorithm used to dissect text into segments.
type Strategy string

const (
	StrategyPreserve      Strategy = "preserve"
	StrategyLogicalBreak  Strategy = "logical_break"
	StrategySemanticChunk Strategy = "semantic_chunk"
	StrategyPriorityBased Strategy = "priority_based"
	StrategyProgressive   Strategy = "progressive"
	StrategySentenceSplit Strategy = "sentence_split"
)

// Analysis is the read-only result of one dissection run.
type Analysis struct {
	ID              string       `json:"id,omitempty"`
	UserID          int64        `json:"user_id,omitempty"`
	Content         string       `json:"content"`
	Strategy        Strategy     `json:"strategy"`
	Segments        []Segment    `json:"segments"`
	Metadata        TextMetadata `json:"metadata"`
	Recommendations []string     `json:"recommendations,omitempty"`
	CreatedAt       time.Time    `json:"created_at,omitempty"`
}

// BubbleMeta is the per-bubble projection of its source segment.
type BubbleMeta struct {
	Type         SegmentType `json:"type"`
	Priority     Priority    `json:"priority"`
	IsActionable bool        `json:"is_actionable"`
	SegmentID    string      `json:"segment_id"`
}

// ChatBubble is a display-ready unit: formatted text plus the delay, in
// milliseconds, before it should appear.
type ChatBubble struct {
	Content  string     `json:"content"`
	Delay    int64      `json:"delay_ms"`
	Metadata BubbleMeta `json:"metadata"`
}
