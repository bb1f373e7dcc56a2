package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swingtrack/swing-pose/internal/observability"
	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/schemas"
	"github.com/swingtrack/swing-pose/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a pose dataset",
	Long: "Checks a pose dataset JSON file against the dataset schema and then runs the semantic " +
		"validator (coordinate space, completeness, bone lengths, mirror symmetry). " +
		"Without --in the built-in dataset is checked. --schema replaces the built-in schema " +
		"with a schema file, e.g. a newer draft of schemas/pose_dataset.schema.json.",
	RunE: runValidate,
}

var (
	validateInput   string
	validateSchema  string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to dataset JSON file (optional)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to dataset JSON Schema file (requires --in)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a dataset summary")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if validateSchema != "" && validateInput == "" {
		return fmt.Errorf("--schema requires --in")
	}

	source := "built-in dataset"
	document, err := encodeDataset(poses.Default())
	if err != nil {
		return err
	}
	if validateInput != "" {
		source = validateInput
		if document, err = os.ReadFile(validateInput); err != nil {
			return fmt.Errorf("failed to read dataset file: %w", err)
		}
	}

	if err := checkSchema(document); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(out, "Validation failed: %s does not match the dataset schema\n", source)
			for _, fe := range schemaErr.Errors {
				fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("schema validation failed with %d error(s)", len(schemaErr.Errors))
		}
		return fmt.Errorf("failed to validate %s: %w", source, err)
	}

	dataset, err := poses.Decode(bytes.NewReader(document))
	if err != nil {
		return err
	}

	issues := validation.Validate(dataset)
	if validateVerbose {
		observability.NewPrinter(out).PrintDataset(dataset, issues)
	}
	if len(issues) > 0 {
		fmt.Fprintf(out, "Validation failed: %d issue(s) in %s\n", len(issues), source)
		for _, issue := range issues {
			fmt.Fprintf(out, "  %s: %s - %s\n", issue.Path, issue.Code, issue.Message)
		}
		return &validation.InvalidDatasetError{Issues: issues}
	}

	logger.Debug().Str("source", source).Str("dataset", dataset.ID).Msg("dataset validated")
	fmt.Fprintf(out, "Validation passed: %s (%s %s)\n", source, dataset.ID, dataset.Version)
	return nil
}

// checkSchema validates against the --schema file when set, else the embedded schema.
func checkSchema(document []byte) error {
	if validateSchema == "" {
		return schemas.ValidateDataset(document)
	}

	schemaPath := schemas.ResolveSchemaPath(validateSchema)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", validateSchema)
	}
	return schemas.ValidateJSON(schemaPath, validateInput)
}

// readDataset loads a dataset file, or returns the built-in dataset when path is empty.
// Files must pass the schema and the semantic validator.
func readDataset(path string) (*poses.Dataset, error) {
	if path == "" {
		return poses.Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	if err := schemas.ValidateDataset(content); err != nil {
		return nil, err
	}
	dataset, err := poses.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	if err := validation.AssertValid(dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}

func encodeDataset(dataset *poses.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := poses.Encode(&buf, dataset); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
