package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumenlabs/lumen/internal/models"
)

// Build repository errors.
var (
	ErrBuildNotFound = errors.New("build not found")
	ErrInvalidBuild  = errors.New("invalid build record")
)

// BuildRepository handles build record persistence.
type BuildRepository struct {
	db *DB
}

// NewBuildRepository creates a new BuildRepository.
func NewBuildRepository(db *DB) *BuildRepository {
	return &BuildRepository{db: db}
}

// Create inserts a new build record.
func (r *BuildRepository) Create(ctx context.Context, record *models.BuildRecord) error {
	if record.ThemeID == "" || record.OutputHash == "" {
		return ErrInvalidBuild
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO builds (
			id, theme_id, output_hash, page_count, theme_count, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.ThemeID,
		record.OutputHash,
		record.PageCount,
		record.ThemeCount,
		record.Duration.Milliseconds(),
		record.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert build record: %w", err)
	}
	return nil
}

// Get retrieves a build record by ID.
func (r *BuildRepository) Get(ctx context.Context, id string) (*models.BuildRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, theme_id, output_hash, page_count, theme_count, duration_ms, created_at
		FROM builds WHERE id = ?
	`, id)
	return scanBuildRecord(row)
}

// List returns the most recent builds, newest first.
func (r *BuildRepository) List(ctx context.Context, limit int) ([]*models.BuildRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, theme_id, output_hash, page_count, theme_count, duration_ms, created_at
		FROM builds ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	var records []*models.BuildRecord
	for rows.Next() {
		record, err := scanBuildRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Latest returns the most recent build record.
func (r *BuildRepository) Latest(ctx context.Context) (*models.BuildRecord, error) {
	records, err := r.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrBuildNotFound
	}
	return records[0], nil
}

// Prune removes all but the newest keep records.
func (r *BuildRepository) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM builds WHERE id NOT IN (
			SELECT id FROM builds ORDER BY created_at DESC, id DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune builds: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuildRecord(row rowScanner) (*models.BuildRecord, error) {
	var record models.BuildRecord
	var durationMS int64
	var createdAt string

	err := row.Scan(
		&record.ID,
		&record.ThemeID,
		&record.OutputHash,
		&record.PageCount,
		&record.ThemeCount,
		&durationMS,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBuildNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan build record: %w", err)
	}

	record.Duration = time.Duration(durationMS) * time.Millisecond
	record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &record, nil
}
