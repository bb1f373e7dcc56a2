// Package validation checks a pose dataset against the stick-figure invariants before it is trusted.
package validation

import (
	"fmt"
	"strings"
)

// Issue is a single nonconformance found in a dataset.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Issue codes.
const (
	CodeInvalidCoordinateSpaceID = "invalid_coordinate_space_id"
	CodeInvalidCoordinateUnits   = "invalid_coordinate_units"
	CodeInvalidOriginJoint       = "invalid_origin_joint"
	CodeInvalidAxisX             = "invalid_axis_x"
	CodeInvalidAxisY             = "invalid_axis_y"
	CodeInvalidAxisZ             = "invalid_axis_z"
	CodeInvalidHandednessRule    = "invalid_handedness_rule"

	CodeMissingPositionPose = "missing_position_pose"
	CodeMissingHandedPose   = "missing_handed_pose"
	CodePositionMismatch    = "position_mismatch"
	CodeHandednessMismatch  = "handedness_mismatch"

	CodeMissingJoint           = "missing_joint"
	CodeInvalidJointVector     = "invalid_joint_vector"
	CodeInvalidCoordinateSpace = "invalid_coordinate_space"
	CodeBoneTooShort           = "bone_too_short"

	CodeInvalidHandednessMirror = "invalid_handedness_mirror"
)

// InvalidDatasetError aggregates every issue found by AssertValid.
type InvalidDatasetError struct {
	Issues []Issue
}

func (e *InvalidDatasetError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Code))
	}
	return "invalid stick-figure pose dataset: " + strings.Join(parts, "; ")
}
