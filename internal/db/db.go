// Package db provides SQLite-backed build history for lumen.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the sql handle so repositories share one connection.
type DB struct {
	*sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS builds (
	id TEXT PRIMARY KEY,
	theme_id TEXT NOT NULL,
	output_hash TEXT NOT NULL,
	page_count INTEGER NOT NULL,
	theme_count INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_builds_created_at ON builds(created_at);
`

// Open opens the database at path and applies the schema.
func Open(path string) (*DB, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := handle.ExecContext(context.Background(), schema); err != nil {
		handle.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{DB: handle}, nil
}
