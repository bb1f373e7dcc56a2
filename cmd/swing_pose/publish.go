package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/db"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a dataset snapshot to the database",
	Long: "Validates a dataset and stores it as an immutable snapshot. Publishing identical content " +
		"again returns the existing snapshot.",
	RunE: runPublish,
}

var publishInput string

func init() {
	publishCmd.Flags().StringVarP(&publishInput, "in", "i", "", "Path to dataset JSON file (default built-in dataset)")
	rootCmd.AddCommand(publishCmd)
}

// connectDB opens the configured database and makes sure the snapshot table exists.
func connectDB(ctx context.Context) (*db.DB, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is required (set SWING_POSE_DATABASE_URL)")
	}

	database, err := db.Connect(ctx, cfg.Database.URL, logger)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func runPublish(cmd *cobra.Command, _ []string) error {
	dataset, err := readDataset(publishInput)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	snapshot, err := database.SaveSnapshot(ctx, dataset)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published %s %s as snapshot %s (sha256 %s)\n",
		snapshot.DatasetID, snapshot.Version, snapshot.ID, snapshot.ContentHash)
	return nil
}
