package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxcanvas/promptflow/internal/models"
)

func newAnalysis(id string, userID int64, createdAt time.Time) *models.Analysis {
	return &models.Analysis{
		ID:        id,
		UserID:    userID,
		Content:   "content for " + id,
		Strategy:  models.StrategySentenceSplit,
		Segments:  []models.Segment{{ID: "segment-1", Type: models.SegmentExplanation, Content: "content"}},
		CreatedAt: createdAt,
	}
}

func TestMemoryStorage_SaveAndGetAnalysis(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	analysis := newAnalysis("a1", 42, time.Now())
	require.NoError(t, store.SaveAnalysis(ctx, analysis))

	got, err := store.GetAnalysis(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, analysis.Content, got.Content)
	assert.Equal(t, analysis.Strategy, got.Strategy)

	missing, err := store.GetAnalysis(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStorage_SaveAnalysisSetsCreatedAt(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	analysis := newAnalysis("a1", 42, time.Time{})
	require.NoError(t, store.SaveAnalysis(ctx, analysis))

	got, err := store.GetAnalysis(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemoryStorage_GetUserAnalyses(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.SaveAnalysis(ctx, newAnalysis("old", 42, base.Add(-2*time.Hour))))
	require.NoError(t, store.SaveAnalysis(ctx, newAnalysis("new", 42, base)))
	require.NoError(t, store.SaveAnalysis(ctx, newAnalysis("mid", 42, base.Add(-time.Hour))))
	require.NoError(t, store.SaveAnalysis(ctx, newAnalysis("other", 7, base)))

	analyses, err := store.GetUserAnalyses(ctx, 42, 10, 0)
	require.NoError(t, err)
	require.Len(t, analyses, 3)
	assert.Equal(t, "new", analyses[0].ID)
	assert.Equal(t, "mid", analyses[1].ID)
	assert.Equal(t, "old", analyses[2].ID)

	// limit and offset window the newest-first ordering
	page, err := store.GetUserAnalyses(ctx, 42, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "mid", page[0].ID)

	empty, err := store.GetUserAnalyses(ctx, 42, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStorage_UserMetadata(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	// unknown users get an empty record, not an error
	md, err := store.GetUserMetadata(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), md.UserID)
	assert.Empty(t, md.Frameworks)
	assert.Empty(t, md.Tools)

	require.NoError(t, store.AddFramework(ctx, 42, "design-thinking"))
	require.NoError(t, store.AddFramework(ctx, 42, "design-thinking"))
	require.NoError(t, store.AddFramework(ctx, 42, "lean-ux"))
	require.NoError(t, store.AddTool(ctx, 42, "surveys"))
	require.NoError(t, store.AddTool(ctx, 42, "surveys"))

	md, err = store.GetUserMetadata(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"design-thinking", "lean-ux"}, md.Frameworks)
	assert.Equal(t, []string{"surveys"}, md.Tools)
}

func TestMemoryStorage_Close(t *testing.T) {
	store := NewMemoryStorage()
	assert.NoError(t, store.Close())
}
