package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/config"
	"github.com/swingtrack/swing-pose/internal/observability"
	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project one pose into screen space",
	Long: "Projects one pose through the configured camera and writes the depth-sorted grid, bone " +
		"and joint collections as JSON.",
	RunE: runProject,
}

var (
	projectPosition   string
	projectHandedness string
	projectWidth      int
	projectHeight     int
	projectInput      string
	projectOutput     string
	projectVerbose    bool
)

func init() {
	projectCmd.Flags().StringVarP(&projectPosition, "position", "p", "", "Swing position P1-P10 (required)")
	projectCmd.Flags().StringVar(&projectHandedness, "handedness", "", "right or left (required)")
	projectCmd.Flags().IntVar(&projectWidth, "width", 0, "Viewport width in pixels (default from config)")
	projectCmd.Flags().IntVar(&projectHeight, "height", 0, "Viewport height in pixels (default from config)")
	projectCmd.Flags().StringVarP(&projectInput, "in", "i", "", "Path to dataset JSON file (optional)")
	projectCmd.Flags().StringVarP(&projectOutput, "out", "o", "", "Path to output Scene JSON file (default stdout)")
	projectCmd.Flags().BoolVarP(&projectVerbose, "verbose", "v", false, "Print a scene summary to stderr")

	if err := projectCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}
	if err := projectCmd.MarkFlagRequired("handedness"); err != nil {
		panic(fmt.Sprintf("failed to mark handedness flag as required: %v", err))
	}

	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	dataset, err := readDataset(projectInput)
	if err != nil {
		return err
	}
	pose, err := lookupPose(dataset, projectPosition, projectHandedness)
	if err != nil {
		return err
	}

	viewport, err := viewportFor(projectWidth, projectHeight)
	if err != nil {
		return err
	}
	projector := projection.NewProjector(projection.DefaultOptions())
	scene := projector.ProjectScene(pose, cfg.CameraValue(), viewport, cfg.GridValue())
	if projectVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintScene(pose, scene)
	}

	content, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if projectOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(content))
		return err
	}
	if err := os.WriteFile(projectOutput, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info().
		Str("position", string(pose.Position)).
		Str("handedness", string(pose.Handedness)).
		Int("joints", len(scene.Joints)).
		Int("bones", len(scene.BoneLines)).
		Str("out", projectOutput).
		Msg("scene projected")
	return nil
}

// lookupPose parses the position and handedness flags and finds the pose.
func lookupPose(dataset *poses.Dataset, position, handedness string) (poses.Pose, error) {
	p, err := skeleton.ParsePPosition(position)
	if err != nil {
		return poses.Pose{}, err
	}
	h, err := skeleton.ParseHandedness(handedness)
	if err != nil {
		return poses.Pose{}, err
	}
	pose, ok := dataset.Pose(p, h)
	if !ok {
		return poses.Pose{}, fmt.Errorf("dataset has no %s %s pose", p, h)
	}
	return pose, nil
}

// viewportFor applies width and height flags over the configured viewport. Zero keeps the
// configured value.
func viewportFor(width, height int) (projection.Viewport, error) {
	if width < 0 || width > config.MaxViewportSide {
		return projection.Viewport{}, fmt.Errorf("--width must be between 0 and %d, got %d", config.MaxViewportSide, width)
	}
	if height < 0 || height > config.MaxViewportSide {
		return projection.Viewport{}, fmt.Errorf("--height must be between 0 and %d, got %d", config.MaxViewportSide, height)
	}

	viewport := cfg.ViewportValue()
	if width != 0 {
		viewport.Width = float64(width)
	}
	if height != 0 {
		viewport.Height = float64(height)
	}
	return viewport, nil
}
