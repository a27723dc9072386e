package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/uxcanvas/promptflow/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStorage) SaveAnalysis(ctx context.Context, analysis *models.Analysis) error {
	segments, err := json.Marshal(analysis.Segments)
	if err != nil {
		return fmt.Errorf("error encoding segments: %v", err)
	}
	metadata, err := json.Marshal(analysis.Metadata)
	if err != nil {
		return fmt.Errorf("error encoding metadata: %v", err)
	}

	query := `
		INSERT INTO analyses (id, user_id, content, strategy, segments, metadata, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err = s.db.QueryRowContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.Content,
		string(analysis.Strategy),
		segments,
		metadata,
		pq.Array(analysis.Recommendations),
	).Scan(&analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("error saving analysis: %v", err)
	}

	return nil
}

func (s *PostgresStorage) GetAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	query := `
		SELECT id, user_id, content, strategy, segments, metadata, recommendations, created_at
		FROM analyses
		WHERE id = $1`

	analysis, err := scanAnalysis(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying analysis: %v", err)
	}
	return analysis, nil
}

func (s *PostgresStorage) GetUserAnalyses(ctx context.Context, userID int64, limit, offset int) ([]*models.Analysis, error) {
	query := `
		SELECT id, user_id, content, strategy, segments, metadata, recommendations, created_at
		FROM analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying analyses: %v", err)
	}
	defer rows.Close()

	var analyses []*models.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning analysis: %v", err)
		}
		analyses = append(analyses, analysis)
	}

	return analyses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*models.Analysis, error) {
	var (
		analysis models.Analysis
		strategy string
		segments []byte
		metadata []byte
	)

	err := row.Scan(
		&analysis.ID,
		&analysis.UserID,
		&analysis.Content,
		&strategy,
		&segments,
		&metadata,
		pq.Array(&analysis.Recommendations),
		&analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	analysis.Strategy = models.Strategy(strategy)
	if err := json.Unmarshal(segments, &analysis.Segments); err != nil {
		return nil, fmt.Errorf("error decoding segments: %v", err)
	}
	if err := json.Unmarshal(metadata, &analysis.Metadata); err != nil {
		return nil, fmt.Errorf("error decoding metadata: %v", err)
	}
	return &analysis, nil
}

func (s *PostgresStorage) GetUserMetadata(ctx context.Context, userID int64) (*models.UserMetadata, error) {
	query := `
		SELECT user_id, frameworks, tools, last_used_at
		FROM user_metadata
		WHERE user_id = $1`

	metadata := &models.UserMetadata{UserID: userID}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&metadata.UserID,
		pq.Array(&metadata.Frameworks),
		pq.Array(&metadata.Tools),
		&metadata.LastUsedAt,
	)
	if err == sql.ErrNoRows {
		metadata.LastUsedAt = time.Now()
		return metadata, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user metadata: %v", err)
	}

	return metadata, nil
}

func (s *PostgresStorage) AddFramework(ctx context.Context, userID int64, framework string) error {
	query := `
		INSERT INTO user_metadata (user_id, frameworks, tools, last_used_at)
		VALUES ($1, ARRAY[$2], '{}', NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET frameworks = (
			SELECT ARRAY(SELECT DISTINCT unnest(user_metadata.frameworks || $2))
		), last_used_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, userID, framework); err != nil {
		return fmt.Errorf("error adding framework: %v", err)
	}
	return nil
}

func (s *PostgresStorage) AddTool(ctx context.Context, userID int64, tool string) error {
	query := `
		INSERT INTO user_metadata (user_id, frameworks, tools, last_used_at)
		VALUES ($1, '{}', ARRAY[$2], NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET tools = (
			SELECT ARRAY(SELECT DISTINCT unnest(user_metadata.tools || $2))
		), last_used_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, userID, tool); err != nil {
		return fmt.Errorf("error adding tool: %v", err)
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
