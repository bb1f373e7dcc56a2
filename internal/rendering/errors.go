// Package rendering paints projected stick-figure scenes to PNG.
package rendering

import "fmt"

// RenderError represents a rendering failure. Position and Handedness are set when the
// failure belongs to one pose of a batch.
type RenderError struct {
	Message    string
	Position   string
	Handedness string
	Cause      error
}

func (e *RenderError) Error() string {
	subject := ""
	if e.Position != "" {
		subject = fmt.Sprintf(" (%s %s)", e.Position, e.Handedness)
	}
	if e.Cause != nil {
		return fmt.Sprintf("render error%s: %s: %v", subject, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error%s: %s", subject, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
