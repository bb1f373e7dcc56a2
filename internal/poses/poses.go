// Package poses provides the reference stick-figure pose dataset: one skeleton per swing
// position and handedness, built once from the authored right-handed table.
package poses

import (
	"sync"

	"github.com/swingtrack/swing-pose/internal/geometry"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

// Dataset identity.
const (
	DatasetID      = "initial-p1-p10-static"
	DatasetVersion = "2026.02.06.1"
)

// JointMap holds one coordinate per joint.
type JointMap map[skeleton.JointID]geometry.Vec3

// Pose is a complete skeleton snapshot for one swing checkpoint and one handedness.
type Pose struct {
	Position        skeleton.PPosition         `json:"position"`
	Handedness      skeleton.Handedness        `json:"handedness"`
	CoordinateSpace skeleton.CoordinateSpaceID `json:"coordinateSpace"`
	Joints          JointMap                   `json:"joints"`
}

// PosePair holds the right- and left-handed pose of one position.
type PosePair map[skeleton.Handedness]Pose

// Dataset is the full set of reference poses.
// A Dataset returned by Default is shared and must be treated as read-only.
type Dataset struct {
	ID              string                          `json:"id"`
	Version         string                          `json:"version"`
	CoordinateSpace skeleton.CoordinateSpace        `json:"coordinateSpace"`
	Poses           map[skeleton.PPosition]PosePair `json:"poses"`
}

// Pose looks up the pose for a position and handedness.
func (d *Dataset) Pose(position skeleton.PPosition, handedness skeleton.Handedness) (Pose, bool) {
	if d == nil {
		return Pose{}, false
	}
	pair, ok := d.Poses[position]
	if !ok {
		return Pose{}, false
	}
	pose, ok := pair[handedness]
	return pose, ok
}

// Mirror reflects every joint across the lead-side axis (x → -x). This is the only
// transformation between handedness variants; y and z are untouched.
func Mirror(joints JointMap) JointMap {
	mirrored := make(JointMap, len(joints))
	for id, v := range joints {
		mirrored[id] = v.MirrorX()
	}
	return mirrored
}

// Clone returns a deep copy of the joint map.
func (m JointMap) Clone() JointMap {
	out := make(JointMap, len(m))
	for id, v := range m {
		out[id] = v
	}
	return out
}

// AuthoredJoints returns a copy of the authored right-handed joints for a position.
func AuthoredJoints(position skeleton.PPosition) (JointMap, bool) {
	joints, ok := rightHandedJoints[position]
	if !ok {
		return nil, false
	}
	return joints.Clone(), true
}

func newPose(position skeleton.PPosition, handedness skeleton.Handedness, joints JointMap) Pose {
	return Pose{
		Position:        position,
		Handedness:      handedness,
		CoordinateSpace: skeleton.GolferLocalV1,
		Joints:          joints,
	}
}

func newPosePair(position skeleton.PPosition) PosePair {
	right := rightHandedJoints[position].Clone()
	return PosePair{
		skeleton.Right: newPose(position, skeleton.Right, right),
		skeleton.Left:  newPose(position, skeleton.Left, Mirror(right)),
	}
}

// Build constructs a fresh dataset. Callers that only read should use Default.
func Build() *Dataset {
	poses := make(map[skeleton.PPosition]PosePair, len(skeleton.PositionOrder))
	for _, position := range skeleton.PositionOrder {
		poses[position] = newPosePair(position)
	}

	return &Dataset{
		ID:              DatasetID,
		Version:         DatasetVersion,
		CoordinateSpace: skeleton.CanonicalSpace(),
		Poses:           poses,
	}
}

var (
	defaultOnce    sync.Once
	defaultDataset *Dataset
)

// Default returns the process-wide dataset, building it on first use.
func Default() *Dataset {
	defaultOnce.Do(func() {
		defaultDataset = Build()
	})
	return defaultDataset
}
