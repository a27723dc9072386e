// Package analyzer dissects AI-generated methodology text into typed
// segments and display-ready chat bubbles.
//
// The pipeline is a single synchronous pass: metadata extraction picks a
// strategy from a fixed decision table, the strategy splits the text into
// segments, and the bubble converter orders and paces them for sequential
// chat presentation. Every function is pure and total: any input string,
// including the empty string, produces a valid result without error.
package analyzer

import (
	"strings"

	"github.com/uxcanvas/promptflow/internal/models"
)

// AnalyzePrompt runs the full dissection pipeline over content. The
// optional context is carried into the metadata for display and never
// influences segmentation. The returned analysis is a snapshot; callers
// must not mutate it.
func AnalyzePrompt(content string, pctx *models.PromptContext) *models.Analysis {
	md := ExtractMetadata(content, pctx)
	strategy := DetermineStrategy(content, md)
	segments := segmentText(strategy, content)

	// Strategies that drop short fragments can come up empty; degrade to a
	// single catch-all segment so the result is never segment-free.
	if len(segments) == 0 && strings.TrimSpace(content) != "" {
		segments = []models.Segment{
			buildSegment(0, models.SegmentExplanation, content, models.PriorityLow, true),
		}
	}

	return &models.Analysis{
		Content:         content,
		Strategy:        strategy,
		Segments:        segments,
		Metadata:        md,
		Recommendations: buildRecommendations(segments, md),
	}
}
