package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/db"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List published dataset snapshots",
	RunE:  runSnapshots,
}

var snapshotsLimit int

func init() {
	snapshotsCmd.Flags().IntVarP(&snapshotsLimit, "limit", "n", db.DefaultListLimit, "Maximum number of snapshots to list")
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshots(cmd *cobra.Command, _ []string) error {
	if snapshotsLimit < 1 {
		return fmt.Errorf("--limit must be positive, got %d", snapshotsLimit)
	}

	ctx := cmd.Context()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	snapshots, err := database.ListSnapshots(ctx, snapshotsLimit)
	if err != nil {
		return err
	}
	return printSnapshots(cmd, snapshots)
}

func printSnapshots(cmd *cobra.Command, snapshots []db.Snapshot) error {
	if len(snapshots) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No snapshots published")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATASET\tVERSION\tHASH\tCREATED")
	for _, s := range snapshots {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.12s\t%s\n",
			s.ID, s.DatasetID, s.Version, s.ContentHash, s.CreatedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}
