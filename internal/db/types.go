package db

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/validation"
)

// ErrSnapshotNotFound is returned when no snapshot matches a lookup.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DefaultListLimit caps ListSnapshots when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Snapshot is one published copy of a pose dataset.
type Snapshot struct {
	ID          uuid.UUID       `json:"id"`
	DatasetID   string          `json:"dataset_id"`
	Version     string          `json:"version"`
	Content     json.RawMessage `json:"content,omitempty"`
	ContentHash string          `json:"content_hash"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewSnapshot validates and serializes a dataset for storage. Invalid datasets are refused
// with the *validation.InvalidDatasetError in the chain.
func NewSnapshot(dataset *poses.Dataset) (*Snapshot, error) {
	if err := validation.AssertValid(dataset); err != nil {
		return nil, fmt.Errorf("refusing to publish dataset: %w", err)
	}

	var buf bytes.Buffer
	if err := poses.Encode(&buf, dataset); err != nil {
		return nil, err
	}

	return &Snapshot{
		ID:          uuid.New(),
		DatasetID:   dataset.ID,
		Version:     dataset.Version,
		Content:     json.RawMessage(buf.Bytes()),
		ContentHash: HashContent(buf.Bytes()),
	}, nil
}

// Dataset decodes the stored content.
func (s *Snapshot) Dataset() (*poses.Dataset, error) {
	if len(s.Content) == 0 {
		return nil, fmt.Errorf("snapshot %s has no content loaded", s.ID)
	}
	return poses.Decode(bytes.NewReader(s.Content))
}

// HashContent computes SHA-256 hash of content for deduplication
func HashContent(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
