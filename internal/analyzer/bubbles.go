package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/uxcanvas/promptflow/internal/models"
)

// Delay bounds for bubble pacing, in milliseconds.
const (
	firstBubbleDelay = 300
	minExtraDelay    = 300
	maxBubbleDelay   = 3000
	perCharDelay     = 20
)

// typeFlowOrder fixes the presentation precedence of segment types:
// narrative flow rather than source position.
var typeFlowOrder = map[models.SegmentType]int{
	models.SegmentIntroduction: 0,
	models.SegmentExplanation:  1,
	models.SegmentInstruction:  2,
	models.SegmentList:         3,
	models.SegmentExample:      4,
	models.SegmentCode:         5,
	models.SegmentQuestion:     6,
	models.SegmentEmphasis:     7,
	models.SegmentTransition:   8,
	models.SegmentConclusion:   9,
}

var priorityOrder = map[models.Priority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

var (
	tripleNewlineRe = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe    = regexp.MustCompile(` {2,}`)
)

// SortSegmentsByFlow orders segments for presentation: type precedence,
// then priority, then the segment's own recorded index. The sort is
// stable, so equal keys keep their strategy-assigned order.
func SortSegmentsByFlow(segments []models.Segment) []models.Segment {
	sorted := make([]models.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if typeFlowOrder[sorted[i].Type] != typeFlowOrder[sorted[j].Type] {
			return typeFlowOrder[sorted[i].Type] < typeFlowOrder[sorted[j].Type]
		}
		if priorityOrder[sorted[i].Priority] != priorityOrder[sorted[j].Priority] {
			return priorityOrder[sorted[i].Priority] < priorityOrder[sorted[j].Priority]
		}
		return sorted[i].Display.Order < sorted[j].Display.Order
	})
	return sorted
}

// FormatSegmentForBubble normalizes whitespace and applies the cosmetic
// decoration for the segment's type. It never removes non-whitespace
// characters from the content.
func FormatSegmentForBubble(seg models.Segment) string {
	content := tripleNewlineRe.ReplaceAllString(seg.Content, "\n\n")
	content = multiSpaceRe.ReplaceAllString(content, " ")
	content = strings.TrimSpace(content)

	switch seg.Type {
	case models.SegmentInstruction:
		if content != "" && !startsWithActionVerb(content) {
			content = "→ " + content
		}
	case models.SegmentExample:
		if !strings.HasPrefix(content, "💡") {
			content = "💡 Example: " + content
		}
	case models.SegmentQuestion:
		if !strings.HasSuffix(content, "?") {
			content += "?"
		}
	}
	return content
}

// ConvertToChatBubbles projects an analysis into display-ready bubbles in
// flow order. The first bubble appears quickly at a fixed 300ms; later
// bubbles scale with content length up to the 3s cap.
func ConvertToChatBubbles(a *models.Analysis) []models.ChatBubble {
	sorted := SortSegmentsByFlow(a.Segments)
	bubbles := make([]models.ChatBubble, 0, len(sorted))
	for i, seg := range sorted {
		bubbles = append(bubbles, models.ChatBubble{
			Content: FormatSegmentForBubble(seg),
			Delay:   bubbleDelay(i, seg),
			Metadata: models.BubbleMeta{
				Type:         seg.Type,
				Priority:     seg.Priority,
				IsActionable: seg.IsActionable,
				SegmentID:    seg.ID,
			},
		})
	}
	return bubbles
}

func bubbleDelay(position int, seg models.Segment) int64 {
	if position == 0 {
		return firstBubbleDelay
	}
	extra := int64(len(seg.Content)) * perCharDelay
	if extra < minExtraDelay {
		extra = minExtraDelay
	}
	delay := seg.Display.Delay + extra
	if delay > maxBubbleDelay {
		delay = maxBubbleDelay
	}
	return delay
}

// buildRecommendations emits advisory notes about the segment mix. The
// output is informational only; nothing downstream branches on it.
func buildRecommendations(segments []models.Segment, md models.TextMetadata) []string {
	var recs []string

	if len(segments) > 6 {
		recs = append(recs, "Consider shortening the prompt: more than 6 segments can overwhelm the chat flow.")
	}

	actionable := 0
	questions := 0
	examples := 0
	for _, seg := range segments {
		if seg.IsActionable {
			actionable++
		}
		if seg.Type == models.SegmentQuestion {
			questions++
		}
		if seg.Type == models.SegmentExample {
			examples++
		}
	}

	if actionable == 0 {
		recs = append(recs, "Add actionable instructions so the reader knows what to do next.")
	}
	if md.Complexity == models.ComplexityComplex && examples == 0 {
		recs = append(recs, "Complex content reads better with at least one concrete example.")
	}
	if questions == 0 {
		recs = append(recs, "Add a guiding question to invite a response.")
	}
	return recs
}
