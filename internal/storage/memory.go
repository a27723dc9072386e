package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/uxcanvas/promptflow/internal/models"
)

type MemoryStorage struct {
	mu       sync.RWMutex
	users    map[int64]*models.UserMetadata
	analyses map[string]*models.Analysis
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:    make(map[int64]*models.UserMetadata),
		analyses: make(map[string]*models.Analysis),
	}
}

func (s *MemoryStorage) SaveAnalysis(ctx context.Context, analysis *models.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *analysis
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.analyses[stored.ID] = &stored
	return nil
}

func (s *MemoryStorage) GetAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if analysis, exists := s.analyses[id]; exists {
		return analysis, nil
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserAnalyses(ctx context.Context, userID int64, limit, offset int) ([]*models.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*models.Analysis
	for _, analysis := range s.analyses {
		if analysis.UserID == userID {
			results = append(results, analysis)
		}
	}

	// Newest first
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	if offset >= len(results) {
		return []*models.Analysis{}, nil
	}
	results = results[offset:]
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

func (s *MemoryStorage) GetUserMetadata(ctx context.Context, userID int64) (*models.UserMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, exists := s.users[userID]; exists {
		return user, nil
	}
	return &models.UserMetadata{
		UserID:     userID,
		LastUsedAt: time.Now(),
	}, nil
}

func (s *MemoryStorage) AddFramework(ctx context.Context, userID int64, framework string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.getOrCreateUser(userID)
	for _, f := range user.Frameworks {
		if f == framework {
			return nil
		}
	}
	user.Frameworks = append(user.Frameworks, framework)
	user.LastUsedAt = time.Now()
	return nil
}

func (s *MemoryStorage) AddTool(ctx context.Context, userID int64, tool string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.getOrCreateUser(userID)
	for _, t := range user.Tools {
		if t == tool {
			return nil
		}
	}
	user.Tools = append(user.Tools, tool)
	user.LastUsedAt = time.Now()
	return nil
}

func (s *MemoryStorage) getOrCreateUser(userID int64) *models.UserMetadata {
	user, exists := s.users[userID]
	if !exists {
		user = &models.UserMetadata{
			UserID:     userID,
			LastUsedAt: time.Now(),
		}
		s.users[userID] = user
	}
	return user
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
