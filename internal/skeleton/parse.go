package skeleton

import (
	"fmt"
	"strings"
)

// UnknownValueError is returned when a string does not name a schema member.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Value)
}

// ParsePPosition accepts "P4" or "p4".
func ParsePPosition(s string) (PPosition, error) {
	candidate := PPosition(strings.ToUpper(strings.TrimSpace(s)))
	for _, p := range PositionOrder {
		if p == candidate {
			return p, nil
		}
	}
	return "", &UnknownValueError{Kind: "swing position", Value: s}
}

// ParseHandedness accepts "right" or "left", case-insensitively.
func ParseHandedness(s string) (Handedness, error) {
	switch Handedness(strings.ToLower(strings.TrimSpace(s))) {
	case Right:
		return Right, nil
	case Left:
		return Left, nil
	}
	return "", &UnknownValueError{Kind: "handedness", Value: s}
}

// ParseJointID matches joint identifiers exactly.
func ParseJointID(s string) (JointID, error) {
	for _, j := range JointOrder {
		if string(j) == s {
			return j, nil
		}
	}
	return "", &UnknownValueError{Kind: "joint", Value: s}
}

// BoneByID returns the bone with the given identifier.
func BoneByID(id string) (Bone, bool) {
	for _, b := range Bones {
		if b.ID == id {
			return b, true
		}
	}
	return Bone{}, false
}
