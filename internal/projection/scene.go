package projection

import (
	"cmp"
	"slices"

	"github.com/swingtrack/swing-pose/internal/geometry"
	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

// axisLift raises the axis lines just above the grid plane so they win depth ties.
const axisLift = 0.001

// LineKind tells a renderer what a projected line represents.
type LineKind string

// Line kinds.
const (
	LineGridMinor LineKind = "grid_minor"
	LineGridMajor LineKind = "grid_major"
	LineAxisX     LineKind = "axis_x"
	LineAxisZ     LineKind = "axis_z"
	LineBone      LineKind = "bone"
)

// ProjectedLine is a screen-space segment. Depth is the mean of the endpoint depths.
type ProjectedLine struct {
	From        ProjectedPoint `json:"from"`
	To          ProjectedPoint `json:"to"`
	Color       string         `json:"color"`
	StrokeWidth float64        `json:"strokeWidth"`
	Depth       float64        `json:"depth"`
	Kind        LineKind       `json:"kind"`
	BoneID      string         `json:"boneId,omitempty"`
}

// ProjectedJoint is a projected joint with the radius a renderer should draw it at.
type ProjectedJoint struct {
	ProjectedPoint
	Joint  skeleton.JointID `json:"joint"`
	Radius float64          `json:"radius"`
}

// Palette holds the scene colors and stroke widths.
type Palette struct {
	GridMinor      string  `json:"gridMinor"`
	GridMajor      string  `json:"gridMajor"`
	GridMinorWidth float64 `json:"gridMinorWidth"`
	GridMajorWidth float64 `json:"gridMajorWidth"`
	AxisX          string  `json:"axisX"`
	AxisZ          string  `json:"axisZ"`
	AxisWidth      float64 `json:"axisWidth"`
	Bone           string  `json:"bone"`
	BoneWidth      float64 `json:"boneWidth"`
	Joint          string  `json:"joint"`
}

// DefaultPalette matches the dark viewport of the mobile client.
func DefaultPalette() Palette {
	return Palette{
		GridMinor:      "#3D434B",
		GridMajor:      "#4C545E",
		GridMinorWidth: 1,
		GridMajorWidth: 1.2,
		AxisX:          "#A34A4A",
		AxisZ:          "#5D8A4B",
		AxisWidth:      2,
		Bone:           "#D5DFEA",
		BoneWidth:      1.9,
		Joint:          "#F2F6FA",
	}
}

// GridConfig describes the ground reference grid on the y = 0 plane.
type GridConfig struct {
	Size      float64 `json:"size"`
	Divisions int     `json:"divisions"`
}

// DefaultGrid is a 6.4 m square split into 24 cells per side.
func DefaultGrid() GridConfig {
	return GridConfig{Size: DefaultGridSize, Divisions: DefaultGridDivisions}
}

// Scene is everything a renderer needs for one frame. Each slice is sorted farthest first.
type Scene struct {
	GridLines []ProjectedLine  `json:"gridLines"`
	BoneLines []ProjectedLine  `json:"boneLines"`
	Joints    []ProjectedJoint `json:"joints"`
}

// JointRadius shrinks joints with distance, within [2.2, 4.5] pixels.
func JointRadius(depth float64) float64 {
	return geometry.Clamp(5.2-depth*0.9, 2.2, 4.5)
}

// ProjectScene projects a pose with the default options.
func ProjectScene(pose poses.Pose, camera Camera, viewport Viewport, grid GridConfig) Scene {
	return NewProjector(DefaultOptions()).ProjectScene(pose, camera, viewport, grid)
}

// ProjectScene builds the grid, bone and joint collections for one frame.
// An empty viewport yields empty collections.
func (p *Projector) ProjectScene(pose poses.Pose, camera Camera, viewport Viewport, grid GridConfig) Scene {
	scene := Scene{
		GridLines: []ProjectedLine{},
		BoneLines: []ProjectedLine{},
		Joints:    []ProjectedJoint{},
	}
	if viewport.Empty() {
		return scene
	}

	basis := NewBasis(camera)
	palette := p.opts.Palette

	scene.GridLines = p.gridLines(basis, viewport, grid)

	for _, bone := range skeleton.Bones {
		from, okFrom := pose.Joints[bone.From]
		to, okTo := pose.Joints[bone.To]
		if !okFrom || !okTo {
			continue
		}
		line, ok := p.projectLine(from, to, basis, viewport)
		if !ok {
			continue
		}
		line.Color = palette.Bone
		line.StrokeWidth = palette.BoneWidth
		line.Kind = LineBone
		line.BoneID = bone.ID
		scene.BoneLines = append(scene.BoneLines, line)
	}

	for _, joint := range skeleton.JointOrder {
		v, ok := pose.Joints[joint]
		if !ok {
			continue
		}
		point, ok := p.ProjectPoint(v, basis, viewport)
		if !ok {
			continue
		}
		scene.Joints = append(scene.Joints, ProjectedJoint{
			ProjectedPoint: point,
			Joint:          joint,
			Radius:         JointRadius(point.Depth),
		})
	}

	sortLines(scene.GridLines)
	sortLines(scene.BoneLines)
	slices.SortStableFunc(scene.Joints, func(a, b ProjectedJoint) int {
		return cmp.Compare(b.Depth, a.Depth)
	})

	return scene
}

// projectLine drops the segment when either endpoint cannot be projected.
func (p *Projector) projectLine(from, to geometry.Vec3, basis Basis, viewport Viewport) (ProjectedLine, bool) {
	a, ok := p.ProjectPoint(from, basis, viewport)
	if !ok {
		return ProjectedLine{}, false
	}
	b, ok := p.ProjectPoint(to, basis, viewport)
	if !ok {
		return ProjectedLine{}, false
	}
	return ProjectedLine{From: a, To: b, Depth: (a.Depth + b.Depth) / 2}, true
}

func (p *Projector) gridLines(basis Basis, viewport Viewport, grid GridConfig) []ProjectedLine {
	palette := p.opts.Palette
	half := grid.Size / 2
	lines := make([]ProjectedLine, 0, 2*(max(grid.Divisions, 0)+1)+2)

	add := func(from, to geometry.Vec3, kind LineKind, color string, width float64) {
		line, ok := p.projectLine(from, to, basis, viewport)
		if !ok {
			return
		}
		line.Kind = kind
		line.Color = color
		line.StrokeWidth = width
		lines = append(lines, line)
	}

	for i := 0; grid.Divisions > 0 && i <= grid.Divisions; i++ {
		offset := -half + float64(i)/float64(grid.Divisions)*grid.Size

		kind, color, width := LineGridMinor, palette.GridMinor, palette.GridMinorWidth
		if p.opts.MajorLineEvery > 0 && i%p.opts.MajorLineEvery == 0 {
			kind, color, width = LineGridMajor, palette.GridMajor, palette.GridMajorWidth
		}

		add(geometry.Vec3{X: -half, Z: offset}, geometry.Vec3{X: half, Z: offset}, kind, color, width)
		add(geometry.Vec3{X: offset, Z: -half}, geometry.Vec3{X: offset, Z: half}, kind, color, width)
	}

	add(geometry.Vec3{X: -half, Y: axisLift}, geometry.Vec3{X: half, Y: axisLift}, LineAxisX, palette.AxisX, palette.AxisWidth)
	add(geometry.Vec3{Y: axisLift, Z: -half}, geometry.Vec3{Y: axisLift, Z: half}, LineAxisZ, palette.AxisZ, palette.AxisWidth)

	return lines
}

func sortLines(lines []ProjectedLine) {
	slices.SortStableFunc(lines, func(a, b ProjectedLine) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}
