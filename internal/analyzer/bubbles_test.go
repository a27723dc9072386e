package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxcanvas/promptflow/internal/models"
)

func TestSortSegmentsByFlow_TypePrecedence(t *testing.T) {
	segments := []models.Segment{
		buildSegment(0, models.SegmentConclusion, "In summary, ship it.", models.PriorityHigh, true),
		buildSegment(1, models.SegmentQuestion, "Ready?", models.PriorityMedium, true),
		buildSegment(2, models.SegmentIntroduction, "Overview first.", models.PriorityLow, true),
	}

	sorted := SortSegmentsByFlow(segments)

	assert.Equal(t, models.SegmentIntroduction, sorted[0].Type)
	assert.Equal(t, models.SegmentQuestion, sorted[1].Type)
	assert.Equal(t, models.SegmentConclusion, sorted[2].Type)
	// input slice untouched
	assert.Equal(t, models.SegmentConclusion, segments[0].Type)
}

func TestSortSegmentsByFlow_PriorityThenIndexOnTies(t *testing.T) {
	segments := []models.Segment{
		buildSegment(0, models.SegmentInstruction, "Later step with low rank.", models.PriorityLow, true),
		buildSegment(1, models.SegmentInstruction, "Urgent step.", models.PriorityHigh, true),
		buildSegment(2, models.SegmentInstruction, "Second urgent step.", models.PriorityHigh, true),
	}

	sorted := SortSegmentsByFlow(segments)

	assert.Equal(t, "Urgent step.", sorted[0].Content)
	assert.Equal(t, "Second urgent step.", sorted[1].Content)
	assert.Equal(t, "Later step with low rank.", sorted[2].Content)
}

func TestFormatSegmentForBubble_WhitespaceCollapse(t *testing.T) {
	seg := buildSegment(0, models.SegmentExplanation, "alpha  beta\n\n\n\ngamma", models.PriorityLow, true)

	assert.Equal(t, "alpha beta\n\ngamma", FormatSegmentForBubble(seg))
}

func TestFormatSegmentForBubble_InstructionPrefix(t *testing.T) {
	seg := buildSegment(0, models.SegmentInstruction, "open the console first", models.PriorityHigh, true)
	assert.Equal(t, "→ open the console first", FormatSegmentForBubble(seg))

	// a leading action verb suppresses the arrow
	seg = buildSegment(0, models.SegmentInstruction, "Create a test plan", models.PriorityHigh, true)
	assert.Equal(t, "Create a test plan", FormatSegmentForBubble(seg))
}

func TestFormatSegmentForBubble_ExampleAndQuestion(t *testing.T) {
	seg := buildSegment(0, models.SegmentExample, "a diary entry", models.PriorityMedium, true)
	assert.Equal(t, "💡 Example: a diary entry", FormatSegmentForBubble(seg))

	seg = buildSegment(0, models.SegmentExample, "💡 already decorated", models.PriorityMedium, true)
	assert.Equal(t, "💡 already decorated", FormatSegmentForBubble(seg))

	seg = buildSegment(0, models.SegmentQuestion, "what went wrong", models.PriorityMedium, true)
	assert.Equal(t, "what went wrong?", FormatSegmentForBubble(seg))

	seg = buildSegment(0, models.SegmentQuestion, "what went wrong?", models.PriorityMedium, true)
	assert.Equal(t, "what went wrong?", FormatSegmentForBubble(seg))
}

func TestFormatSegmentForBubble_KeepsNonWhitespace(t *testing.T) {
	raw := "Check the  results.\n\n\n\nThen report back!"
	seg := buildSegment(0, models.SegmentExplanation, raw, models.PriorityLow, true)

	formatted := FormatSegmentForBubble(seg)
	stripped := strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace
	assert.Equal(t, stripped(raw), stripped(formatted))
}

func TestConvertToChatBubbles_Delays(t *testing.T) {
	content := strings.TrimSpace(strings.Repeat("We analyze the data to evaluate patterns. ", 36))
	analysis := AnalyzePrompt(content, nil)
	require.Equal(t, models.StrategySemanticChunk, analysis.Strategy)

	bubbles := ConvertToChatBubbles(analysis)

	require.NotEmpty(t, bubbles)
	assert.Equal(t, int64(300), bubbles[0].Delay)
	for _, bubble := range bubbles {
		assert.LessOrEqual(t, bubble.Delay, int64(3000))
		assert.Greater(t, bubble.Delay, int64(0))
	}
}

func TestConvertToChatBubbles_MetadataProjection(t *testing.T) {
	analysis := AnalyzePrompt("Create a short plan.", nil)
	bubbles := ConvertToChatBubbles(analysis)

	require.Len(t, bubbles, 1)
	meta := bubbles[0].Metadata
	assert.Equal(t, models.SegmentInstruction, meta.Type)
	assert.Equal(t, models.PriorityHigh, meta.Priority)
	assert.True(t, meta.IsActionable)
	assert.Equal(t, "segment-1", meta.SegmentID)
}

func TestBuildRecommendations(t *testing.T) {
	md := models.TextMetadata{Complexity: models.ComplexityComplex}

	var many []models.Segment
	for i := 0; i < 7; i++ {
		many = append(many, buildSegment(i, models.SegmentExplanation, "filler text", models.PriorityLow, true))
	}

	recs := buildRecommendations(many, md)

	// 7 non-actionable explanations: every advisory fires
	assert.Len(t, recs, 4)

	balanced := []models.Segment{
		buildSegment(0, models.SegmentInstruction, "Create the plan.", models.PriorityHigh, true),
		buildSegment(1, models.SegmentExample, "For example, this.", models.PriorityMedium, true),
		buildSegment(2, models.SegmentQuestion, "Ready to start?", models.PriorityMedium, true),
	}
	assert.Empty(t, buildRecommendations(balanced, models.TextMetadata{Complexity: models.ComplexityComplex}))
}
