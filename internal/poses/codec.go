package poses

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/swingtrack/swing-pose/internal/skeleton"
)

// Encode writes the dataset as indented JSON.
func Encode(w io.Writer, d *Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode pose dataset: %w", err)
	}
	return nil
}

// Decode reads a dataset from JSON. Unknown fields and joint names are rejected; structural
// gaps such as missing poses or joints are left for the validator to report.
func Decode(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Dataset
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode pose dataset: %w", err)
	}
	if err := checkJointNames(&d); err != nil {
		return nil, fmt.Errorf("failed to decode pose dataset: %w", err)
	}
	return &d, nil
}

func checkJointNames(d *Dataset) error {
	for _, position := range slices.Sorted(maps.Keys(d.Poses)) {
		pair := d.Poses[position]
		for _, handedness := range slices.Sorted(maps.Keys(pair)) {
			for _, name := range slices.Sorted(maps.Keys(pair[handedness].Joints)) {
				if _, err := skeleton.ParseJointID(string(name)); err != nil {
					return fmt.Errorf("poses.%s.%s.joints: %w", position, handedness, err)
				}
			}
		}
	}
	return nil
}
