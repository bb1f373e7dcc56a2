package poses

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingtrack/swing-pose/internal/geometry"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

const mirrorTolerance = 0.005

func TestBuild_Structure(t *testing.T) {
	d := Build()

	assert.Equal(t, "initial-p1-p10-static", d.ID)
	assert.NotEmpty(t, d.Version)
	assert.Equal(t, skeleton.CanonicalSpace(), d.CoordinateSpace)
	require.Len(t, d.Poses, 10)

	for _, position := range skeleton.PositionOrder {
		pair, ok := d.Poses[position]
		require.True(t, ok, "missing %s", position)
		require.Len(t, pair, 2)

		for _, handedness := range skeleton.HandednessOrder {
			pose, ok := pair[handedness]
			require.True(t, ok, "missing %s/%s", position, handedness)
			assert.Equal(t, position, pose.Position)
			assert.Equal(t, handedness, pose.Handedness)
			assert.Equal(t, skeleton.GolferLocalV1, pose.CoordinateSpace)
			assert.Len(t, pose.Joints, len(skeleton.JointOrder))
		}
	}
}

func TestMirror_Idempotent(t *testing.T) {
	for _, position := range skeleton.PositionOrder {
		right, ok := AuthoredJoints(position)
		require.True(t, ok)
		assert.Equal(t, right, Mirror(Mirror(right)), "double mirror of %s", position)
	}
}

func TestMirror_SymmetryLaw(t *testing.T) {
	d := Build()
	for _, position := range skeleton.PositionOrder {
		right := d.Poses[position][skeleton.Right].Joints
		left := d.Poses[position][skeleton.Left].Joints

		for _, joint := range skeleton.JointOrder {
			r, l := right[joint], left[joint]
			assert.LessOrEqual(t, math.Abs(l.X+r.X), mirrorTolerance, "%s %s x", position, joint)
			assert.LessOrEqual(t, math.Abs(l.Y-r.Y), mirrorTolerance, "%s %s y", position, joint)
			assert.LessOrEqual(t, math.Abs(l.Z-r.Z), mirrorTolerance, "%s %s z", position, joint)
		}
	}
}

func TestMirror_OnlyX(t *testing.T) {
	in := JointMap{skeleton.LeftWrist: {X: 0.12, Y: 1.03, Z: 0.28}}
	out := Mirror(in)
	assert.Equal(t, geometry.Vec3{X: -0.12, Y: 1.03, Z: 0.28}, out[skeleton.LeftWrist])
	assert.Equal(t, 0.12, in[skeleton.LeftWrist].X, "input must not be modified")
}

func TestBoneLengthFloor(t *testing.T) {
	d := Build()
	for _, position := range skeleton.PositionOrder {
		for _, handedness := range skeleton.HandednessOrder {
			joints := d.Poses[position][handedness].Joints
			for _, bone := range skeleton.Bones {
				length := geometry.Distance(joints[bone.From], joints[bone.To])
				assert.GreaterOrEqual(t, length, 0.04, "%s/%s %s", position, handedness, bone.ID)
			}
		}
	}
}

func TestDefault_BuiltOnce(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.NotSame(t, Default(), Build())
}

func TestBuild_IndependentCopies(t *testing.T) {
	a := Build()
	a.Poses[skeleton.P1][skeleton.Right].Joints[skeleton.Head] = geometry.Vec3{X: 9}

	b := Build()
	assert.Equal(t, geometry.Vec3{X: 0, Y: 1.72, Z: 0.12}, b.Poses[skeleton.P1][skeleton.Right].Joints[skeleton.Head])

	authored, _ := AuthoredJoints(skeleton.P1)
	assert.Equal(t, 1.72, authored[skeleton.Head].Y)
}

func TestDatasetPose(t *testing.T) {
	d := Build()

	pose, ok := d.Pose(skeleton.P4, skeleton.Left)
	require.True(t, ok)
	assert.Equal(t, skeleton.P4, pose.Position)
	assert.InDelta(t, 0.12, pose.Joints[skeleton.LeftWrist].X, 1e-12)

	_, ok = d.Pose("P11", skeleton.Left)
	assert.False(t, ok)

	var nilDataset *Dataset
	_, ok = nilDataset.Pose(skeleton.P1, skeleton.Right)
	assert.False(t, ok)
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Build()))

	out := buf.String()
	assert.Contains(t, out, `"id": "initial-p1-p10-static"`)
	assert.Contains(t, out, `"coordinateSpace": "golfer_local_v1"`)
	assert.Contains(t, out, `"handednessRule": "mirror_x_for_left_handed"`)

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DatasetID, decoded.ID)
	assert.Len(t, decoded.Poses, 10)

	got, ok := decoded.Pose(skeleton.P7, skeleton.Right)
	require.True(t, ok)
	want, _ := Build().Pose(skeleton.P7, skeleton.Right)
	assert.Equal(t, want.Joints, got.Joints)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id":"x","extra":true}`))
	assert.Error(t, err)
}

func TestDecode_RejectsUnknownJoint(t *testing.T) {
	d := Build()
	joints := d.Poses[skeleton.P3][skeleton.Left].Joints
	joints["tailBone"] = geometry.Vec3{Y: 0.9}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))

	_, err := Decode(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `poses.P3.left.joints: unknown joint: "tailBone"`)

	var unknown *skeleton.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "joint", unknown.Kind)
}

func TestDecode_MissingJointLeftToValidator(t *testing.T) {
	d := Build()
	delete(d.Poses[skeleton.P9][skeleton.Right].Joints, skeleton.LeftAnkle)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Len(t, decoded.Poses[skeleton.P9][skeleton.Right].Joints, 15)
}
