package validation

import (
	"fmt"
	"math"

	"github.com/swingtrack/swing-pose/internal/geometry"
	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

// Geometric limits in meters.
const (
	BoneLengthMin   = 0.04
	MirrorTolerance = 0.005
)

// CodeMissingDataset is reported for a nil dataset.
const CodeMissingDataset = "missing_dataset"

// Validate returns every issue found in the dataset. It never fails and never stops early;
// an empty result means the dataset may be handed to a renderer.
func Validate(dataset *poses.Dataset) []Issue {
	if dataset == nil {
		return []Issue{{Path: "(root)", Code: CodeMissingDataset, Message: "Dataset is nil."}}
	}

	var issues []Issue

	// 1. Coordinate-space contract
	issues = append(issues, validateCoordinateSpace(dataset.CoordinateSpace)...)

	for _, position := range skeleton.PositionOrder {
		positionPath := "poses." + string(position)

		// 2. Completeness
		pair, ok := dataset.Poses[position]
		if !ok {
			issues = append(issues, Issue{
				Path:    positionPath,
				Code:    CodeMissingPositionPose,
				Message: fmt.Sprintf("Missing pose data for %s.", position),
			})
			continue
		}

		for _, handedness := range skeleton.HandednessOrder {
			posePath := positionPath + "." + string(handedness)

			pose, ok := pair[handedness]
			if !ok {
				issues = append(issues, Issue{
					Path:    posePath,
					Code:    CodeMissingHandedPose,
					Message: fmt.Sprintf("Missing %s-handed pose for %s.", handedness, position),
				})
				continue
			}

			// 3. Self-consistency
			if pose.Position != position {
				issues = append(issues, Issue{
					Path:    posePath + ".position",
					Code:    CodePositionMismatch,
					Message: fmt.Sprintf("Expected position %s, received %s.", position, pose.Position),
				})
			}
			if pose.Handedness != handedness {
				issues = append(issues, Issue{
					Path:    posePath + ".handedness",
					Code:    CodeHandednessMismatch,
					Message: fmt.Sprintf("Expected handedness %s, received %s.", handedness, pose.Handedness),
				})
			}

			// 4. Per-pose geometry
			issues = append(issues, ValidatePose(pose, posePath)...)
		}

		// 5. Mirror symmetry
		right, hasRight := pair[skeleton.Right]
		left, hasLeft := pair[skeleton.Left]
		if hasRight && hasLeft {
			issues = append(issues, validateMirror(position, right, left)...)
		}
	}

	return issues
}

// IsValid reports whether the dataset has no issues.
func IsValid(dataset *poses.Dataset) bool {
	return len(Validate(dataset)) == 0
}

// AssertValid returns an *InvalidDatasetError listing every issue, or nil.
func AssertValid(dataset *poses.Dataset) error {
	issues := Validate(dataset)
	if len(issues) == 0 {
		return nil
	}
	return &InvalidDatasetError{Issues: issues}
}

// ValidatePose checks one pose's joints, coordinate space and bone lengths.
// pathPrefix is prepended to every issue path.
func ValidatePose(pose poses.Pose, pathPrefix string) []Issue {
	var issues []Issue

	for _, joint := range skeleton.JointOrder {
		v, ok := pose.Joints[joint]
		if !ok {
			issues = append(issues, Issue{
				Path:    buildPath(pathPrefix, "joints."+string(joint)),
				Code:    CodeMissingJoint,
				Message: fmt.Sprintf("Joint %s is missing.", joint),
			})
			continue
		}
		if !v.IsFinite() {
			issues = append(issues, Issue{
				Path:    buildPath(pathPrefix, "joints."+string(joint)),
				Code:    CodeInvalidJointVector,
				Message: "Joint coordinates must be finite numbers.",
			})
		}
	}

	if pose.CoordinateSpace != skeleton.GolferLocalV1 {
		issues = append(issues, Issue{
			Path:    buildPath(pathPrefix, "coordinateSpace"),
			Code:    CodeInvalidCoordinateSpace,
			Message: fmt.Sprintf("Expected coordinate space %s.", skeleton.GolferLocalV1),
		})
	}

	for _, bone := range skeleton.Bones {
		from, okFrom := pose.Joints[bone.From]
		to, okTo := pose.Joints[bone.To]
		if !okFrom || !okTo {
			continue
		}
		// NaN lengths fail this comparison and are already reported above.
		length := geometry.Distance(from, to)
		if length < BoneLengthMin {
			issues = append(issues, Issue{
				Path:    buildPath(pathPrefix, "bones."+bone.ID),
				Code:    CodeBoneTooShort,
				Message: fmt.Sprintf("Bone length %.4fm is below %.2fm.", length, BoneLengthMin),
			})
		}
	}

	return issues
}

func validateCoordinateSpace(actual skeleton.CoordinateSpace) []Issue {
	expected := skeleton.CanonicalSpace()

	checks := []struct {
		path     string
		code     string
		expected string
		actual   string
	}{
		{"coordinateSpace.id", CodeInvalidCoordinateSpaceID, string(expected.ID), string(actual.ID)},
		{"coordinateSpace.units", CodeInvalidCoordinateUnits, expected.Units, actual.Units},
		{"coordinateSpace.originJoint", CodeInvalidOriginJoint, string(expected.OriginJoint), string(actual.OriginJoint)},
		{"coordinateSpace.axes.x", CodeInvalidAxisX, expected.Axes.X, actual.Axes.X},
		{"coordinateSpace.axes.y", CodeInvalidAxisY, expected.Axes.Y, actual.Axes.Y},
		{"coordinateSpace.axes.z", CodeInvalidAxisZ, expected.Axes.Z, actual.Axes.Z},
		{"coordinateSpace.handednessRule", CodeInvalidHandednessRule, expected.HandednessRule, actual.HandednessRule},
	}

	var issues []Issue
	for _, c := range checks {
		if c.actual != c.expected {
			issues = append(issues, Issue{
				Path:    c.path,
				Code:    c.code,
				Message: fmt.Sprintf("Expected %s, received %s.", c.expected, c.actual),
			})
		}
	}
	return issues
}

func validateMirror(position skeleton.PPosition, right, left poses.Pose) []Issue {
	var issues []Issue

	for _, joint := range skeleton.JointOrder {
		r, okRight := right.Joints[joint]
		l, okLeft := left.Joints[joint]
		if !okRight || !okLeft {
			continue
		}

		xDelta := math.Abs(l.X + r.X)
		yDelta := math.Abs(l.Y - r.Y)
		zDelta := math.Abs(l.Z - r.Z)

		// Written as !(<=) so NaN deltas are reported too.
		if !(xDelta <= MirrorTolerance && yDelta <= MirrorTolerance && zDelta <= MirrorTolerance) {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("poses.%s.left.joints.%s", position, joint),
				Code:    CodeInvalidHandednessMirror,
				Message: "Left-handed pose should mirror right-handed pose across the lead-side axis.",
			})
		}
	}

	return issues
}

func buildPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
