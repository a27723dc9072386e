package analyzer

import (
	"github.com/uxcanvas/promptflow/internal/models"
)

// DetermineStrategy picks the dissection strategy from a fixed decision
// table, evaluated top to bottom with first match winning. Every input
// matches at least the final fallback row.
func DetermineStrategy(content string, md models.TextMetadata) models.Strategy {
	switch {
	case md.TotalLength < preserveLengthThreshold && md.Complexity == models.ComplexitySimple:
		return models.StrategyPreserve
	case md.HasInstructions && md.HasLists:
		return models.StrategyLogicalBreak
	case md.Complexity == models.ComplexityComplex && md.HasContentType(models.ContentAnalytical):
		return models.StrategySemanticChunk
	case md.HasContentType(models.ContentStrategic):
		return models.StrategyPriorityBased
	case md.HasContentType(models.ContentEducational) && md.HasExamples:
		return models.StrategyProgressive
	default:
		return models.StrategySentenceSplit
	}
}
