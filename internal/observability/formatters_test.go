package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/skeleton"
	"github.com/swingtrack/swing-pose/internal/validation"
)

func TestPrintDataset_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDataset(poses.Default(), nil)
	output := buf.String()

	assert.Contains(t, output, "POSE DATASET")
	assert.Contains(t, output, poses.DatasetID)
	assert.Contains(t, output, poses.DatasetVersion)
	assert.Contains(t, output, "Poses:    20 of 20")
	assert.Contains(t, output, "Issues:   none")
}

func TestPrintDataset_Issues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	d := poses.Build()
	delete(d.Poses, skeleton.P1)
	d.CoordinateSpace.Units = "feet"
	for _, position := range []skeleton.PPosition{skeleton.P2, skeleton.P3, skeleton.P4, skeleton.P5} {
		delete(d.Poses[position], skeleton.Left)
	}

	issues := validation.Validate(d)
	require.Len(t, issues, 6)

	p.PrintDataset(d, issues)
	output := buf.String()

	assert.Contains(t, output, "Poses:    14 of 20")
	assert.Contains(t, output, "Issues:   6")
	assert.Contains(t, output, validation.CodeInvalidCoordinateUnits)
	assert.Contains(t, output, "... and 1 more")
}

func TestPrintDataset_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDataset(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintScene(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	pose, ok := poses.Default().Pose(skeleton.P4, skeleton.Right)
	require.True(t, ok)
	scene := projection.ProjectScene(pose, projection.DefaultCamera(), projection.Viewport{Width: 390, Height: 320}, projection.DefaultGrid())

	p.PrintScene(pose, scene)
	output := buf.String()

	assert.Contains(t, output, "PROJECTED SCENE")
	assert.Contains(t, output, "Pose:     P4 right")
	assert.Contains(t, output, "Joints:   16 of 16 visible")
	assert.Contains(t, output, "Bones:    15 of 15 visible")
	assert.Contains(t, output, "Nearest joints:")
	assert.Contains(t, output, string(scene.Joints[len(scene.Joints)-1].Joint))

	nearest := scene.BoneLines[len(scene.BoneLines)-1]
	bone, ok := skeleton.BoneByID(nearest.BoneID)
	require.True(t, ok)
	assert.Contains(t, output, "Nearest bone: "+bone.ID)
	assert.Contains(t, output, string(bone.From)+" to "+string(bone.To))
}

func TestPrintScene_UnknownBoneSkipped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scene := projection.Scene{BoneLines: []projection.ProjectedLine{{BoneID: "tail", Depth: 3}}}
	p.PrintScene(poses.Pose{Position: skeleton.P1, Handedness: skeleton.Right}, scene)
	output := buf.String()

	assert.Contains(t, output, "Bones:    1 of 15 visible")
	assert.NotContains(t, output, "Nearest bone:")
}

func TestPrintScene_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScene(poses.Pose{Position: skeleton.P1, Handedness: skeleton.Left}, projection.Scene{})
	output := buf.String()

	assert.Contains(t, output, "Joints:   0 of 16 visible")
	assert.NotContains(t, output, "Nearest joints:")
	assert.NotContains(t, output, "Nearest bone:")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, lines[3], "...")
}
