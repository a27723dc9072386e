package storage

import (
	"context"

	"github.com/uxcanvas/promptflow/internal/models"
)

type Storage interface {
	// Embed AnalysisStorage interface
	AnalysisStorage

	GetUserMetadata(ctx context.Context, userID int64) (*models.UserMetadata, error)
	AddFramework(ctx context.Context, userID int64, framework string) error
	AddTool(ctx context.Context, userID int64, tool string) error

	Close() error
}

type AnalysisStorage interface {
	SaveAnalysis(ctx context.Context, analysis *models.Analysis) error
	GetAnalysis(ctx context.Context, id string) (*models.Analysis, error)
	GetUserAnalyses(ctx context.Context, userID int64, limit, offset int) ([]*models.Analysis, error)
}
