package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/swingtrack/swing-pose/internal/db"
	"github.com/swingtrack/swing-pose/internal/skeleton"
	"github.com/swingtrack/swing-pose/internal/validation"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPoseNotFound indicates the dataset has no pose for the requested key
type ErrPoseNotFound struct {
	Position   skeleton.PPosition
	Handedness skeleton.Handedness
}

func (e *ErrPoseNotFound) Error() string {
	return fmt.Sprintf("pose not found: %s %s", e.Position, e.Handedness)
}

// ErrStoreUnavailable is returned by snapshot routes when no database is configured.
var ErrStoreUnavailable = errors.New("snapshot store not configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		unknownErr    *skeleton.UnknownValueError
		notFoundErr   *ErrPoseNotFound
		invalidErr    *validation.InvalidDatasetError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &unknownErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, db.ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
