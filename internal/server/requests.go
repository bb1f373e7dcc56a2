package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/swingtrack/swing-pose/internal/geometry"
	"github.com/swingtrack/swing-pose/internal/projection"
	"github.com/swingtrack/swing-pose/internal/skeleton"
)

// SceneRequest asks for one pose projected through a camera. Camera and grid fall back to
// the server defaults when omitted.
type SceneRequest struct {
	Position   string          `json:"position" validate:"required"`
	Handedness string          `json:"handedness" validate:"required"`
	Camera     *CameraRequest  `json:"camera,omitempty"`
	Viewport   ViewportRequest `json:"viewport"`
	Grid       *GridRequest    `json:"grid,omitempty"`
}

// CameraRequest holds [x, y, z] eye and look-at points.
type CameraRequest struct {
	Position []float64 `json:"position" validate:"len=3"`
	Target   []float64 `json:"target" validate:"len=3"`
}

// ViewportRequest is the output size in pixels.
type ViewportRequest struct {
	Width  float64 `json:"width" validate:"gt=0,lte=4096"`
	Height float64 `json:"height" validate:"gt=0,lte=4096"`
}

// GridRequest overrides the ground grid.
type GridRequest struct {
	Size      float64 `json:"size" validate:"gt=0,lte=100"`
	Divisions int     `json:"divisions" validate:"gte=0,lte=240"`
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks field ranges and returns the first failure as *ErrValidation.
func (r *SceneRequest) Validate() error {
	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		return &ErrValidation{Field: field, Message: describe(fe)}
	}
	return &ErrValidation{Field: "(root)", Message: err.Error()}
}

// SceneParams are the projector inputs a SceneRequest resolves to.
type SceneParams struct {
	Position   skeleton.PPosition
	Handedness skeleton.Handedness
	Camera     projection.Camera
	Viewport   projection.Viewport
	Grid       projection.GridConfig
}

// Resolve parses the request into projector inputs. Validate must have passed.
func (r *SceneRequest) Resolve(defaults SceneDefaults) (SceneParams, error) {
	position, err := skeleton.ParsePPosition(r.Position)
	if err != nil {
		return SceneParams{}, err
	}
	handedness, err := skeleton.ParseHandedness(r.Handedness)
	if err != nil {
		return SceneParams{}, err
	}

	params := SceneParams{
		Position:   position,
		Handedness: handedness,
		Camera:     defaults.Camera,
		Viewport:   projection.Viewport{Width: r.Viewport.Width, Height: r.Viewport.Height},
		Grid:       defaults.Grid,
	}
	if r.Camera != nil {
		params.Camera = projection.Camera{Position: toVec(r.Camera.Position), Target: toVec(r.Camera.Target)}
	}
	if r.Grid != nil {
		params.Grid = projection.GridConfig{Size: r.Grid.Size, Divisions: r.Grid.Divisions}
	}
	return params, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must have exactly %s values", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

func toVec(s []float64) geometry.Vec3 {
	return geometry.Vec3{X: s[0], Y: s[1], Z: s[2]}
}
