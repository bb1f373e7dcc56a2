// Package skeleton defines the fixed stick-figure schema: joint identifiers, bones,
// swing positions, handedness and the golfer-local coordinate space.
//
// Everything here is a load-time constant. Consumers must iterate JointOrder, Bones
// and PositionOrder rather than ranging over maps so that output order is deterministic.
package skeleton

// JointID names an anatomical joint of the stick figure.
type JointID string

// Joints in declared order.
const (
	Head          JointID = "head"
	Neck          JointID = "neck"
	SpineChest    JointID = "spineChest"
	Pelvis        JointID = "pelvis"
	LeftShoulder  JointID = "leftShoulder"
	RightShoulder JointID = "rightShoulder"
	LeftElbow     JointID = "leftElbow"
	RightElbow    JointID = "rightElbow"
	LeftWrist     JointID = "leftWrist"
	RightWrist    JointID = "rightWrist"
	LeftHip       JointID = "leftHip"
	RightHip      JointID = "rightHip"
	LeftKnee      JointID = "leftKnee"
	RightKnee     JointID = "rightKnee"
	LeftAnkle     JointID = "leftAnkle"
	RightAnkle    JointID = "rightAnkle"
)

// JointOrder lists all 16 joints in declared order.
var JointOrder = [...]JointID{
	Head,
	Neck,
	SpineChest,
	Pelvis,
	LeftShoulder,
	RightShoulder,
	LeftElbow,
	RightElbow,
	LeftWrist,
	RightWrist,
	LeftHip,
	RightHip,
	LeftKnee,
	RightKnee,
	LeftAnkle,
	RightAnkle,
}

// Bone is an edge of the skeleton graph.
type Bone struct {
	ID   string  `json:"id"`
	From JointID `json:"from"`
	To   JointID `json:"to"`
}

// Bones lists all 15 bones in declared order.
var Bones = [...]Bone{
	{ID: "head-neck", From: Head, To: Neck},
	{ID: "neck-chest", From: Neck, To: SpineChest},
	{ID: "chest-pelvis", From: SpineChest, To: Pelvis},
	{ID: "chest-left-shoulder", From: SpineChest, To: LeftShoulder},
	{ID: "left-upper-arm", From: LeftShoulder, To: LeftElbow},
	{ID: "left-lower-arm", From: LeftElbow, To: LeftWrist},
	{ID: "chest-right-shoulder", From: SpineChest, To: RightShoulder},
	{ID: "right-upper-arm", From: RightShoulder, To: RightElbow},
	{ID: "right-lower-arm", From: RightElbow, To: RightWrist},
	{ID: "pelvis-left-hip", From: Pelvis, To: LeftHip},
	{ID: "left-upper-leg", From: LeftHip, To: LeftKnee},
	{ID: "left-lower-leg", From: LeftKnee, To: LeftAnkle},
	{ID: "pelvis-right-hip", From: Pelvis, To: RightHip},
	{ID: "right-upper-leg", From: RightHip, To: RightKnee},
	{ID: "right-lower-leg", From: RightKnee, To: RightAnkle},
}

// PPosition is one of the ten canonical swing checkpoints.
type PPosition string

// Swing positions in declared order.
const (
	P1  PPosition = "P1"
	P2  PPosition = "P2"
	P3  PPosition = "P3"
	P4  PPosition = "P4"
	P5  PPosition = "P5"
	P6  PPosition = "P6"
	P7  PPosition = "P7"
	P8  PPosition = "P8"
	P9  PPosition = "P9"
	P10 PPosition = "P10"
)

// PositionOrder lists P1 through P10.
var PositionOrder = [...]PPosition{P1, P2, P3, P4, P5, P6, P7, P8, P9, P10}

// Handedness is the golfer's swing side.
type Handedness string

// Handedness values.
const (
	Right Handedness = "right"
	Left  Handedness = "left"
)

// HandednessOrder lists right before left, the order poses are built and validated in.
var HandednessOrder = [...]Handedness{Right, Left}
