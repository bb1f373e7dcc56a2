package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/swingtrack/swing-pose/internal/poses"
)

// SaveSnapshot publishes a dataset. Publishing identical content twice returns the first
// snapshot instead of creating a duplicate.
func (db *DB) SaveSnapshot(ctx context.Context, dataset *poses.Dataset) (*Snapshot, error) {
	snap, err := NewSnapshot(dataset)
	if err != nil {
		return nil, err
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO pose_dataset_snapshots (id, dataset_id, version, content, content_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (content_hash) DO UPDATE SET content_hash = EXCLUDED.content_hash
		 RETURNING id, created_at`,
		snap.ID, snap.DatasetID, snap.Version, []byte(snap.Content), snap.ContentHash,
	).Scan(&snap.ID, &snap.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	db.logger.Info().
		Str("snapshot_id", snap.ID.String()).
		Str("dataset_id", snap.DatasetID).
		Str("version", snap.Version).
		Msg("dataset snapshot saved")

	return snap, nil
}

// GetSnapshot retrieves a snapshot with its content.
func (db *DB) GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	var s Snapshot
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, dataset_id, version, content, content_hash, created_at
		 FROM pose_dataset_snapshots WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.DatasetID, &s.Version, &content, &s.ContentHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	s.Content = content
	return &s, nil
}

// LatestSnapshot retrieves the most recently published snapshot of a dataset id.
func (db *DB) LatestSnapshot(ctx context.Context, datasetID string) (*Snapshot, error) {
	var s Snapshot
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, dataset_id, version, content, content_hash, created_at
		 FROM pose_dataset_snapshots WHERE dataset_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		datasetID,
	).Scan(&s.ID, &s.DatasetID, &s.Version, &content, &s.ContentHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	s.Content = content
	return &s, nil
}

// ListSnapshots returns recent snapshots, newest first, without their content.
func (db *DB) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, dataset_id, version, content_hash, created_at
		 FROM pose_dataset_snapshots ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []Snapshot{}
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.DatasetID, &s.Version, &s.ContentHash, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}
