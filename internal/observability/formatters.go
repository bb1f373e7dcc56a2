// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/skeleton"
	"github.com/swingtrack/swing-pose/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDataset outputs the dataset identity, its coverage and the first validation issues.
func (p *Printer) PrintDataset(dataset *poses.Dataset, issues []validation.Issue) {
	if dataset == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dataset:  %s\n", dataset.ID))
	sb.WriteString(fmt.Sprintf("Version:  %s\n", dataset.Version))
	sb.WriteString(fmt.Sprintf("Space:    %s (%s)\n", dataset.CoordinateSpace.ID, dataset.CoordinateSpace.Units))
	sb.WriteString("\n")

	complete := 0
	for _, position := range skeleton.PositionOrder {
		for _, handedness := range skeleton.HandednessOrder {
			if _, ok := dataset.Pose(position, handedness); ok {
				complete++
			}
		}
	}
	sb.WriteString(fmt.Sprintf("Poses:    %d of %d\n", complete, len(skeleton.PositionOrder)*len(skeleton.HandednessOrder)))

	if len(issues) == 0 {
		sb.WriteString("Issues:   none")
		p.printBox("POSE DATASET", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Issues:   %d\n\n", len(issues)))
	count := min(len(issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", issues[i].Code))
		sb.WriteString(fmt.Sprintf("    %s\n", issues[i].Path))
	}
	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(issues)-maxItemsToShow))
	}

	p.printBox("POSE DATASET", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScene outputs how much of a projected pose is visible and its nearest bone and joints.
func (p *Printer) PrintScene(pose poses.Pose, scene projection.Scene) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pose:     %s %s\n", pose.Position, pose.Handedness))
	sb.WriteString(fmt.Sprintf("Joints:   %d of %d visible\n", len(scene.Joints), len(skeleton.JointOrder)))
	sb.WriteString(fmt.Sprintf("Bones:    %d of %d visible\n", len(scene.BoneLines), len(skeleton.Bones)))
	sb.WriteString(fmt.Sprintf("Grid:     %d lines\n", len(scene.GridLines)))

	if n := len(scene.BoneLines); n > 0 {
		line := scene.BoneLines[n-1]
		if bone, ok := skeleton.BoneByID(line.BoneID); ok {
			sb.WriteString(fmt.Sprintf("\nNearest bone: %s\n", bone.ID))
			sb.WriteString(fmt.Sprintf("  %s to %s, depth %.2fm\n", bone.From, bone.To, line.Depth))
		}
	}

	if len(scene.Joints) > 0 {
		sb.WriteString("\nNearest joints:\n")
		// Joints are sorted farthest first.
		count := min(len(scene.Joints), maxItemsToShow)
		for i := 0; i < count; i++ {
			j := scene.Joints[len(scene.Joints)-1-i]
			sb.WriteString(fmt.Sprintf("  • %-14s depth %.2fm  r %.1fpx\n", j.Joint, j.Depth, j.Radius))
		}
	}

	p.printBox("PROJECTED SCENE", strings.TrimSuffix(sb.String(), "\n"))
}
