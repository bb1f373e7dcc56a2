// Package schemas ships the JSON Schemas for the interchange documents.
package schemas

import _ "embed"

// PoseDatasetFile is the schema file name under this directory.
const PoseDatasetFile = "pose_dataset.schema.json"

// PoseDataset is the contents of pose_dataset.schema.json.
//
//go:embed pose_dataset.schema.json
var PoseDataset []byte
