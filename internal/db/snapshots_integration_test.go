//go:build integration

package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swingtrack/swing-pose/internal/poses"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM pose_dataset_snapshots WHERE dataset_id LIKE 'test-%'")

	return db
}

func testDataset() *poses.Dataset {
	d := poses.Build()
	d.ID = "test-" + uuid.NewString()
	return d
}

func TestIntegration_Snapshot_Lifecycle(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	d := testDataset()

	saved, err := db.SaveSnapshot(ctx, d)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := db.GetSnapshot(ctx, saved.ID)
		if err != nil {
			t.Fatalf("GetSnapshot failed: %v", err)
		}
		decoded, err := got.Dataset()
		if err != nil {
			t.Fatalf("Dataset failed: %v", err)
		}
		if decoded.ID != d.ID {
			t.Errorf("dataset id = %q, want %q", decoded.ID, d.ID)
		}
	})

	t.Run("latest", func(t *testing.T) {
		got, err := db.LatestSnapshot(ctx, d.ID)
		if err != nil {
			t.Fatalf("LatestSnapshot failed: %v", err)
		}
		if got.ID != saved.ID {
			t.Errorf("latest id = %s, want %s", got.ID, saved.ID)
		}
	})

	t.Run("republish is idempotent", func(t *testing.T) {
		again, err := db.SaveSnapshot(ctx, d)
		if err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
		if again.ID != saved.ID {
			t.Errorf("republished id = %s, want %s", again.ID, saved.ID)
		}
	})

	t.Run("list omits content", func(t *testing.T) {
		list, err := db.ListSnapshots(ctx, 10)
		if err != nil {
			t.Fatalf("ListSnapshots failed: %v", err)
		}
		found := false
		for _, s := range list {
			if s.ID == saved.ID {
				found = true
				if len(s.Content) != 0 {
					t.Error("listed snapshot should not carry content")
				}
			}
		}
		if !found {
			t.Error("saved snapshot missing from list")
		}
	})
}

func TestIntegration_Snapshot_NotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	if _, err := db.GetSnapshot(ctx, uuid.New()); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("GetSnapshot error = %v, want ErrSnapshotNotFound", err)
	}
	if _, err := db.LatestSnapshot(ctx, "test-missing"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("LatestSnapshot error = %v, want ErrSnapshotNotFound", err)
	}
}
