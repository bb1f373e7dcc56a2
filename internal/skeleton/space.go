package skeleton

// CoordinateSpaceID identifies a coordinate-space contract.
type CoordinateSpaceID string

// GolferLocalV1 is the only coordinate space poses may be authored in.
const GolferLocalV1 CoordinateSpaceID = "golfer_local_v1"

// Axes describes what the positive direction of each axis means.
type Axes struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z string `json:"z"`
}

// CoordinateSpace is the contract every pose coordinate is expressed in.
type CoordinateSpace struct {
	ID             CoordinateSpaceID `json:"id"`
	Units          string            `json:"units"`
	OriginJoint    JointID           `json:"originJoint"`
	Axes           Axes              `json:"axes"`
	HandednessRule string            `json:"handednessRule"`
}

// Contract values of golfer_local_v1.
const (
	UnitsMeters           = "meters"
	AxisLeadSidePositive  = "lead_side_positive"
	AxisUpPositive        = "up_positive"
	AxisTargetPositive    = "target_positive"
	RuleMirrorXLeftHanded = "mirror_x_for_left_handed"
)

// CanonicalSpace returns the golfer_local_v1 contract. Meters, pelvis origin,
// x toward the lead side, y up, z toward the target; left-handed poses mirror x.
//
// It is returned by value so no caller can alter the shared contract.
func CanonicalSpace() CoordinateSpace {
	return CoordinateSpace{
		ID:          GolferLocalV1,
		Units:       UnitsMeters,
		OriginJoint: Pelvis,
		Axes: Axes{
			X: AxisLeadSidePositive,
			Y: AxisUpPositive,
			Z: AxisTargetPositive,
		},
		HandednessRule: RuleMirrorXLeftHanded,
	}
}
