// Package sqlite reads dashboard documents that the producer publishes into a
// SQLite database. The database is opened read-only.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

// Repository represents a read-only document store backed by SQLite.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewRepository opens the database at storagePath in read-only mode and checks
// that the documents table is present.
func NewRepository(ctx context.Context, log *slog.Logger, storagePath string) (*Repository, error) {
	dtb, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", storagePath))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Check if the connection is actually established.
	if err = dtb.PingContext(ctx); err != nil {
		dtb.Close()
		return nil, fmt.Errorf("unable to establish connection to database: %w", err)
	}

	if err = checkSchema(ctx, dtb); err != nil {
		dtb.Close()
		return nil, fmt.Errorf("DB schema check error: %w", err)
	}

	return &Repository{db: dtb, log: log}, nil
}

// NewForTest wraps an existing handle, used with sqlmock.
func NewForTest(db *sql.DB) *Repository {
	return &Repository{db: db, log: slog.New(slog.DiscardHandler)}
}

// Schema is the table layout the producer writes. Exported for fixtures.
const Schema = `
	CREATE TABLE IF NOT EXISTS documents (
		name TEXT PRIMARY KEY NOT NULL,
		body BLOB NOT NULL,
		updated_at TEXT
	);
	`

// checkSchema verifies the documents table exists.
func checkSchema(ctx context.Context, dtb *sql.DB) error {
	var name string
	err := dtb.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'documents'",
	).Scan(&name)
	if err != nil {
		return fmt.Errorf("documents table is missing: %w", err)
	}

	return nil
}

// Close closes the connection to the database.
func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		r.log.Error("failed to close the database", "op", "repository.sqlite.Close", "error", err)
		return fmt.Errorf("failed to close the database: %w", err)
	}

	return nil
}

// DB is a getter for database handler.
func (r *Repository) DB() *sql.DB {
	return r.db
}
