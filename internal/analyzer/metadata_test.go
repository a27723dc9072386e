package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxcanvas/promptflow/internal/models"
)

func TestExtractMetadata_EmptyString(t *testing.T) {
	md := ExtractMetadata("", nil)

	assert.Equal(t, 0, md.TotalLength)
	assert.Equal(t, 0, md.ReadingTime)
	assert.Equal(t, models.ComplexitySimple, md.Complexity)
	assert.Equal(t, []models.ContentType{models.ContentEducational}, md.ContentTypes)
	assert.False(t, md.HasInstructions)
	assert.False(t, md.HasLists)
	assert.False(t, md.HasQuestions)
	assert.False(t, md.HasCode)
}

func TestExtractMetadata_ReadingTime(t *testing.T) {
	md := ExtractMetadata("one", nil)
	assert.Equal(t, 1, md.ReadingTime)

	md = ExtractMetadata(strings.Repeat("word ", 400), nil)
	assert.Equal(t, 2, md.ReadingTime)
}

func TestExtractMetadata_StructuralFlags(t *testing.T) {
	md := ExtractMetadata("Step 1. Do X. Step 2. Do Y.", nil)
	assert.True(t, md.HasInstructions)
	assert.False(t, md.HasLists, "inline Step markers are not list markers")

	md = ExtractMetadata("- first item\n- second item", nil)
	assert.True(t, md.HasLists)

	md = ExtractMetadata("Use `fmt.Println` to print.", nil)
	assert.True(t, md.HasCode)

	md = ExtractMetadata("What should we measure?", nil)
	assert.True(t, md.HasQuestions)

	md = ExtractMetadata("For example, a diary entry works well.", nil)
	assert.True(t, md.HasExamples)
}

func TestExtractMetadata_ComplexityLadder(t *testing.T) {
	short := "Just a tiny note."
	assert.Equal(t, models.ComplexitySimple, ExtractMetadata(short, nil).Complexity)

	// instructions bump a short text to moderate
	instr := "First, open the door. Then close it."
	assert.Equal(t, models.ComplexityModerate, ExtractMetadata(instr, nil).Complexity)

	long := strings.Repeat("plain filler text without markers ", 35)
	require.Greater(t, len(long), complexLengthThreshold)
	assert.Equal(t, models.ComplexityComplex, ExtractMetadata(long, nil).Complexity)

	// all three structural flags force complex regardless of length
	combo := "1. Add the part.\n- bolt\nFor example, tighten it."
	md := ExtractMetadata(combo, nil)
	require.True(t, md.HasInstructions)
	require.True(t, md.HasLists)
	require.True(t, md.HasExamples)
	assert.Equal(t, models.ComplexityComplex, md.Complexity)
}

func TestExtractMetadata_ContentTypeOrderAndDefault(t *testing.T) {
	md := ExtractMetadata("Analyze the data, then brainstorm with your team.", nil)
	// matches appear in fixed check order, not text order
	assert.Equal(t, []models.ContentType{
		models.ContentCreative,
		models.ContentAnalytical,
		models.ContentCollaborative,
	}, md.ContentTypes)

	// no keyword match falls back to educational
	md = ExtractMetadata("A quiet afternoon by the window.", nil)
	assert.Equal(t, []models.ContentType{models.ContentEducational}, md.ContentTypes)
}

func TestExtractMetadata_ContextCarriedThrough(t *testing.T) {
	pctx := &models.PromptContext{Framework: "design-thinking", Stage: "discover", Tool: "surveys"}
	md := ExtractMetadata("short", pctx)

	assert.Equal(t, "design-thinking", md.Framework)
	assert.Equal(t, "discover", md.Stage)
	assert.Equal(t, "surveys", md.Tool)
}
