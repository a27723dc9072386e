package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uxcanvas/promptflow/internal/models"
)

// sentence_split keeps bubbles conversational: a chunk flushes once it
// holds this many sentences even when the length cap is not reached.
const maxSentencesPerChunk = 2

var (
	logicalBoundaryRe = regexp.MustCompile(`\n\s*(\d+[.)]\s|#{1,6}\s|[A-Z][A-Za-z ]{2,40}:)`)
	paragraphSplitRe  = regexp.MustCompile(`\n\s*\n`)
	numberedLineRe    = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+.+$`)
	quotedRe          = regexp.MustCompile(`"[^"]+"`)
)

// buildSegment constructs an immutable segment record. IDs are stable and
// deterministic within one run; the base delay scales with length between
// 300ms and 1000ms.
func buildSegment(index int, typ models.SegmentType, content string, priority models.Priority, allowSplit bool) models.Segment {
	content = strings.TrimSpace(content)
	delay := int64(len(content)) * 15
	if delay < 300 {
		delay = 300
	}
	if delay > 1000 {
		delay = 1000
	}
	return models.Segment{
		ID:           fmt.Sprintf("segment-%d", index+1),
		Type:         typ,
		Content:      content,
		Priority:     priority,
		IsActionable: isActionable(content),
		Display: models.DisplayConfig{
			MaxLength:     maxBubbleLength,
			Delay:         delay,
			AllowSplit:    allowSplit,
			Order:         index,
			ShowTimestamp: true,
			ShowActions:   true,
		},
	}
}

// segmentText dispatches to the chosen strategy.
func segmentText(strategy models.Strategy, content string) []models.Segment {
	switch strategy {
	case models.StrategyPreserve:
		return segmentPreserve(content)
	case models.StrategyLogicalBreak:
		return segmentLogicalBreak(content)
	case models.StrategySemanticChunk:
		return segmentSemanticChunk(content)
	case models.StrategyPriorityBased:
		return segmentPriorityBased(content)
	case models.StrategyProgressive:
		return segmentProgressive(content)
	default:
		return segmentSentenceSplit(content)
	}
}

// segmentPreserve wraps the whole trimmed input as a single non-splittable
// instruction segment. The empty string stays a single empty segment.
func segmentPreserve(content string) []models.Segment {
	return []models.Segment{
		buildSegment(0, models.SegmentInstruction, content, models.PriorityHigh, false),
	}
}

// segmentLogicalBreak splits before numbered items, markdown headers and
// "Heading:" lines, dropping fragments below the minimum length.
func segmentLogicalBreak(content string) []models.Segment {
	cuts := logicalBoundaryRe.FindAllStringIndex(content, -1)
	var parts []string
	prev := 0
	for _, cut := range cuts {
		// cut[0] points at the newline preceding the boundary marker
		if cut[0] > prev {
			parts = append(parts, content[prev:cut[0]])
		}
		prev = cut[0]
	}
	parts = append(parts, content[prev:])

	var segments []models.Segment
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) < minSegmentLength {
			continue
		}
		typ := classifySegment(part)
		priority := models.PriorityLow
		switch typ {
		case models.SegmentInstruction:
			priority = models.PriorityHigh
		case models.SegmentExample:
			priority = models.PriorityMedium
		}
		segments = append(segments, buildSegment(len(segments), typ, part, priority, true))
	}
	return segments
}

// segmentSemanticChunk greedily packs whole sentences into chunks of at
// most maxBubbleLength characters. A single overlong sentence becomes its
// own oversized chunk.
func segmentSemanticChunk(content string) []models.Segment {
	return accumulateSentences(content, 0)
}

// segmentSentenceSplit is the default fallback: the same greedy packing as
// semantic_chunk plus a per-chunk sentence cap so short imperative runs
// still break into separate bubbles.
func segmentSentenceSplit(content string) []models.Segment {
	return accumulateSentences(content, maxSentencesPerChunk)
}

func accumulateSentences(content string, maxSentences int) []models.Segment {
	sentences := splitSentences(content)
	var segments []models.Segment
	var buf strings.Builder
	count := 0

	flush := func() {
		chunk := strings.TrimSpace(buf.String())
		if chunk == "" {
			return
		}
		segments = append(segments,
			buildSegment(len(segments), classifySegment(chunk), chunk, determinePriority(chunk), true))
		buf.Reset()
		count = 0
	}

	for _, sentence := range sentences {
		full := buf.Len() > 0 && buf.Len()+1+len(sentence) > maxBubbleLength
		if full || (maxSentences > 0 && count >= maxSentences) {
			flush()
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(sentence)
		count++
	}
	flush()
	return segments
}

// splitSentences cuts text at sentence-ending punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(content string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// consume a run of terminators ("?!", "...")
		end := i + 1
		for end < len(content) && (content[end] == '.' || content[end] == '!' || content[end] == '?') {
			end++
		}
		if end < len(content) && content[end] != ' ' && content[end] != '\n' && content[end] != '\t' {
			i = end - 1
			continue
		}
		if s := strings.TrimSpace(content[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end - 1
	}
	if s := strings.TrimSpace(content[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// segmentPriorityBased splits on blank-line paragraphs and re-sorts the
// result by priority, discarding source order. Every other strategy keeps
// source order; this asymmetry is preserved intentionally for
// compatibility with existing consumers.
func segmentPriorityBased(content string) []models.Segment {
	var segments []models.Segment
	for _, para := range paragraphSplitRe.Split(content, -1) {
		para = strings.TrimSpace(para)
		if len(para) < minSegmentLength {
			continue
		}
		segments = append(segments,
			buildSegment(len(segments), classifySegment(para), para, determinePriority(para), true))
	}
	sortByPriority(segments)
	return segments
}

func sortByPriority(segments []models.Segment) {
	rank := map[models.Priority]int{
		models.PriorityHigh:   0,
		models.PriorityMedium: 1,
		models.PriorityLow:    2,
	}
	// insertion sort keeps the original order of equal priorities
	for i := 1; i < len(segments); i++ {
		for j := i; j > 0 && rank[segments[j].Priority] < rank[segments[j-1].Priority]; j-- {
			segments[j], segments[j-1] = segments[j-1], segments[j]
		}
	}
}

// segmentProgressive extracts categories in a fixed pedagogical order:
// intro, then numbered instructions, then examples, then questions. The
// source position of each piece is ignored.
func segmentProgressive(content string) []models.Segment {
	var segments []models.Segment
	add := func(typ models.SegmentType, text string, priority models.Priority) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		segments = append(segments, buildSegment(len(segments), typ, text, priority, true))
	}

	sentences := splitSentences(content)
	if len(sentences) > 0 {
		add(models.SegmentIntroduction, sentences[0], models.PriorityHigh)
	}

	for _, line := range numberedLineRe.FindAllString(content, -1) {
		add(models.SegmentInstruction, line, models.PriorityHigh)
	}

	for _, sentence := range sentences {
		if exampleRe.MatchString(sentence) || quotedRe.MatchString(sentence) {
			add(models.SegmentExample, sentence, models.PriorityMedium)
		}
	}

	for _, sentence := range sentences {
		if strings.Contains(sentence, "?") {
			add(models.SegmentQuestion, sentence, models.PriorityMedium)
		}
	}
	return segments
}
