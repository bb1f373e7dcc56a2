package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render poses to PNG",
	Long: "Renders one pose (--position, --handedness, --out) or every pose (--all, --out-dir) " +
		"through the configured camera as PNG images.",
	RunE: runRender,
}

var (
	renderPosition   string
	renderHandedness string
	renderOutput     string
	renderAll        bool
	renderOutDir     string
	renderWidth      int
	renderHeight     int
	renderInput      string
)

func init() {
	renderCmd.Flags().StringVarP(&renderPosition, "position", "p", "", "Swing position P1-P10")
	renderCmd.Flags().StringVar(&renderHandedness, "handedness", "", "right or left")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output PNG file")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every position and handedness")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "", "Output directory for --all")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Viewport width in pixels (default from config)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Viewport height in pixels (default from config)")
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to dataset JSON file (optional)")

	renderCmd.MarkFlagsMutuallyExclusive("all", "position")
	renderCmd.MarkFlagsMutuallyExclusive("all", "out")
	renderCmd.MarkFlagsRequiredTogether("all", "out-dir")

	rootCmd.AddCommand(renderCmd)
}

// renderOptions applies the configured colors over the default styling.
func renderOptions() rendering.Options {
	opts := rendering.DefaultOptions()
	opts.Background = cfg.Render.Background
	opts.JointColor = cfg.Render.JointColor
	return opts
}

func newRenderer() *rendering.Renderer {
	return rendering.NewRenderer(renderOptions(), logger)
}

func runRender(cmd *cobra.Command, _ []string) error {
	dataset, err := readDataset(renderInput)
	if err != nil {
		return err
	}
	renderer := newRenderer()
	viewport, err := viewportFor(renderWidth, renderHeight)
	if err != nil {
		return err
	}

	if renderAll {
		paths, err := renderer.RenderAll(cmd.Context(), dataset, rendering.BatchOptions{
			OutDir:      renderOutDir,
			Camera:      cfg.CameraValue(),
			Viewport:    viewport,
			Grid:        cfg.GridValue(),
			Concurrency: cfg.Render.Concurrency,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d poses to %s\n", len(paths), renderOutDir)
		return nil
	}

	if renderPosition == "" || renderHandedness == "" || renderOutput == "" {
		return fmt.Errorf("either --all with --out-dir, or --position, --handedness and --out are required")
	}

	pose, err := lookupPose(dataset, renderPosition, renderHandedness)
	if err != nil {
		return err
	}

	if err := writePNG(renderOutput, renderer, pose, viewport); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s %s to %s\n", pose.Position, pose.Handedness, renderOutput)
	return nil
}

// writePNG renders one pose to path. A failed close is reported when nothing else failed.
func writePNG(path string, renderer *rendering.Renderer, pose poses.Pose, viewport projection.Viewport) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := renderer.RenderPose(w, pose, cfg.CameraValue(), viewport, cfg.GridValue()); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
