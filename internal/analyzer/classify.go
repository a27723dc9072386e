package analyzer

import (
	"regexp"
	"strings"

	"github.com/uxcanvas/promptflow/internal/models"
)

var (
	emphasisRe     = regexp.MustCompile(`\*\*[^*]+\*\*|(?m)^#{1,6}\s`)
	introductionRe = regexp.MustCompile(`(?i)^\s*(introduction|overview|background|context)\b`)
	conclusionRe   = regexp.MustCompile(`(?i)^\s*(conclusion|summary|finally|in summary|to conclude)\b`)
	transitionRe   = regexp.MustCompile(`(?i)\b(however|therefore|consequently|furthermore|moreover|meanwhile)\b`)
	actionVerbRe   = regexp.MustCompile(`(?i)\b(create|generate|build|design|list|define|analyze|evaluate|identify|develop|implement|execute|perform|conduct)\b`)
)

var actionVerbs = map[string]struct{}{
	"create": {}, "generate": {}, "build": {}, "design": {}, "list": {},
	"define": {}, "analyze": {}, "evaluate": {}, "identify": {}, "develop": {},
	"implement": {}, "execute": {}, "perform": {}, "conduct": {},
}

// typeRules is the flat decision list for segment classification: the
// first matching predicate wins, so rule order is load-bearing.
var typeRules = []struct {
	typ   models.SegmentType
	match func(string) bool
}{
	{models.SegmentInstruction, instructionRe.MatchString},
	{models.SegmentExample, exampleRe.MatchString},
	{models.SegmentQuestion, func(s string) bool { return strings.Contains(s, "?") }},
	{models.SegmentCode, codeRe.MatchString},
	{models.SegmentEmphasis, emphasisRe.MatchString},
	{models.SegmentIntroduction, introductionRe.MatchString},
	{models.SegmentConclusion, conclusionRe.MatchString},
	{models.SegmentList, listRe.MatchString},
	{models.SegmentTransition, transitionRe.MatchString},
}

// classifySegment returns the first matching type, falling back to
// explanation for anything the rules cannot place.
func classifySegment(content string) models.SegmentType {
	for _, rule := range typeRules {
		if rule.match(content) {
			return rule.typ
		}
	}
	return models.SegmentExplanation
}

// determinePriority ranks content: instructions and actionable text are
// high, examples and questions medium, everything else low.
func determinePriority(content string) models.Priority {
	switch {
	case instructionRe.MatchString(content) || isActionable(content):
		return models.PriorityHigh
	case exampleRe.MatchString(content) || strings.Contains(content, "?"):
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func isActionable(content string) bool {
	return actionVerbRe.MatchString(content)
}

// startsWithActionVerb reports whether the first word of content is one of
// the recognized action verbs. Used by the bubble formatter to decide
// whether an instruction needs an arrow prefix.
func startsWithActionVerb(content string) bool {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,:;!?"))
	_, ok := actionVerbs[first]
	return ok
}
