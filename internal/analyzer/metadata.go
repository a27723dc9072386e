package analyzer

import (
	"regexp"
	"strings"

	"github.com/uxcanvas/promptflow/internal/models"
)

// Fixed thresholds for the complexity ladder and segment sizing. These are
// deliberate constants, not configuration.
const (
	complexLengthThreshold  = 1000
	moderateLengthThreshold = 500
	preserveLengthThreshold = 300
	minSegmentLength        = 50
	maxBubbleLength         = 280
	wordsPerMinute          = 200
)

var (
	instructionRe = regexp.MustCompile(`(?mi)(^\s*\d+[.)]\s)|(^\s*\*\s)|(\bstep\s+\d+\b)|(\b(first|second|third|then|next|finally)\b,?\s)`)
	exampleRe     = regexp.MustCompile(`(?i)\b(for example|for instance|such as|e\.g\.|example:)`)
	listRe        = regexp.MustCompile(`(?m)^\s*([-*•]|\d+[.)])\s+`)
	codeRe        = regexp.MustCompile("```|`[^`\n]+`")
)

// contentTypeChecks is evaluated in fixed order; every matching tag is
// appended. The order is part of the observable behavior.
var contentTypeChecks = []struct {
	tag models.ContentType
	re  *regexp.Regexp
}{
	{models.ContentInstructional, regexp.MustCompile(`(?i)\b(step|guide|how to|instruction|procedure|process)\b`)},
	{models.ContentEducational, regexp.MustCompile(`(?i)\b(learn|understand|explain|concept|knowledge|teach)\b`)},
	{models.ContentCreative, regexp.MustCompile(`(?i)\b(brainstorm|imagine|creative|ideate|inspiration|explore)\b`)},
	{models.ContentAnalytical, regexp.MustCompile(`(?i)\b(analyz|analys|evaluat|assess|compare|measure|data)`)},
	{models.ContentCollaborative, regexp.MustCompile(`(?i)\b(team|together|collaborat|workshop|stakeholder|group)`)},
	{models.ContentTechnical, regexp.MustCompile(`(?i)\b(code|technical|implementation|architecture|system|api)\b`)},
	{models.ContentStrategic, regexp.MustCompile(`(?i)\b(strateg|roadmap|vision|goal|objective|priorit)`)},
}

// ExtractMetadata derives coarse statistics from one pass over the text.
// It is total: the empty string yields zero counts and simple complexity.
func ExtractMetadata(content string, pctx *models.PromptContext) models.TextMetadata {
	wordCount := len(strings.Fields(content))

	md := models.TextMetadata{
		TotalLength:     len(content),
		ReadingTime:     (wordCount + wordsPerMinute - 1) / wordsPerMinute,
		HasInstructions: instructionRe.MatchString(content),
		HasExamples:     exampleRe.MatchString(content),
		HasQuestions:    strings.Contains(content, "?"),
		HasLists:        listRe.MatchString(content),
		HasCode:         codeRe.MatchString(content),
	}

	md.Complexity = classifyComplexity(md)
	md.ContentTypes = classifyContentTypes(content)

	if pctx != nil {
		md.Framework = pctx.Framework
		md.Stage = pctx.Stage
		md.Tool = pctx.Tool
	}
	return md
}

func classifyComplexity(md models.TextMetadata) models.Complexity {
	switch {
	case md.TotalLength > complexLengthThreshold ||
		(md.HasInstructions && md.HasExamples && md.HasLists):
		return models.ComplexityComplex
	case md.TotalLength > moderateLengthThreshold || md.HasInstructions || md.HasLists:
		return models.ComplexityModerate
	default:
		return models.ComplexitySimple
	}
}

func classifyContentTypes(content string) []models.ContentType {
	var tags []models.ContentType
	for _, check := range contentTypeChecks {
		if check.re.MatchString(content) {
			tags = append(tags, check.tag)
		}
	}
	if len(tags) == 0 {
		tags = []models.ContentType{models.ContentEducational}
	}
	return tags
}
