package rendering

import (
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/projection"
)

// DefaultBackground is the viewport fill behind the grid.
const DefaultBackground = "#2B2F35"

// Options control colors that are not part of the projected scene.
type Options struct {
	// Background is a #RRGGBB fill. Empty means DefaultBackground.
	Background string
	// JointColor overrides the palette joint color when set.
	JointColor string
	Projection projection.Options
}

// DefaultOptions returns the dark viewport styling.
func DefaultOptions() Options {
	return Options{
		Background: DefaultBackground,
		Projection: projection.DefaultOptions(),
	}
}

// Renderer rasterizes scenes. It holds no per-frame state and may be shared.
type Renderer struct {
	opts      Options
	projector *projection.Projector
	logger    zerolog.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options, logger zerolog.Logger) *Renderer {
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	if opts.JointColor == "" {
		opts.JointColor = opts.Projection.Palette.Joint
	}
	return &Renderer{
		opts:      opts,
		projector: projection.NewProjector(opts.Projection),
		logger:    logger,
	}
}

// Projector returns the projector used by RenderPose.
func (r *Renderer) Projector() *projection.Projector {
	return r.projector
}

// RenderPose projects a pose and writes it as PNG.
func (r *Renderer) RenderPose(w io.Writer, pose poses.Pose, camera projection.Camera, viewport projection.Viewport, grid projection.GridConfig) error {
	scene := r.projector.ProjectScene(pose, camera, viewport, grid)
	return r.Render(w, scene, viewport)
}

// Render paints the background, grid lines, bones and joints in that order and encodes
// the result as PNG. Each scene collection must already be sorted farthest first.
func (r *Renderer) Render(w io.Writer, scene projection.Scene, viewport projection.Viewport) error {
	if viewport.Empty() {
		return &RenderError{Message: "viewport must have positive width and height"}
	}

	dc := gg.NewContext(int(math.Ceil(viewport.Width)), int(math.Ceil(viewport.Height)))
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.Hex(r.opts.Background))
	dc.SetLineCap(gg.LineCapRound)

	for _, line := range scene.GridLines {
		if err := strokeLine(dc, line); err != nil {
			return err
		}
	}
	for _, line := range scene.BoneLines {
		if err := strokeLine(dc, line); err != nil {
			return err
		}
	}

	dc.SetHexColor(r.opts.JointColor)
	for _, joint := range scene.Joints {
		dc.DrawCircle(joint.X, joint.Y, joint.Radius)
		if err := dc.Fill(); err != nil {
			return &RenderError{Message: "failed to fill joint " + string(joint.Joint), Cause: err}
		}
	}

	r.logger.Trace().
		Int("grid_lines", len(scene.GridLines)).
		Int("bone_lines", len(scene.BoneLines)).
		Int("joints", len(scene.Joints)).
		Msg("scene rasterized")

	if err := dc.EncodePNG(w); err != nil {
		return &RenderError{Message: "failed to encode PNG", Cause: err}
	}
	return nil
}

func strokeLine(dc *gg.Context, line projection.ProjectedLine) error {
	dc.SetHexColor(line.Color)
	dc.SetLineWidth(line.StrokeWidth)
	dc.DrawLine(line.From.X, line.From.Y, line.To.X, line.To.Y)
	if err := dc.Stroke(); err != nil {
		return &RenderError{Message: "failed to stroke " + string(line.Kind) + " line", Cause: err}
	}
	return nil
}
