// Package db provides PostgreSQL storage for published pose dataset snapshots.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schemaSQL creates the snapshot table. It is idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS pose_dataset_snapshots (
    id           UUID PRIMARY KEY,
    dataset_id   TEXT NOT NULL,
    version      TEXT NOT NULL,
    content      JSONB NOT NULL,
    content_hash TEXT NOT NULL UNIQUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS pose_dataset_snapshots_dataset_created
    ON pose_dataset_snapshots (dataset_id, created_at DESC);
`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string, logger zerolog.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool, logger: logger}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the snapshot table and index when missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
