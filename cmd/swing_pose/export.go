package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/poses"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the built-in dataset as JSON",
	Long:  "Writes the built-in P1-P10 pose dataset, both handedness variants, as indented JSON.",
	RunE:  runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output dataset JSON file (required)")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	content, err := encodeDataset(poses.Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(exportOutput, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s %s to %s\n", poses.DatasetID, poses.DatasetVersion, exportOutput)
	return nil
}
