// Package shapes validates garden bed shape names and their shape-specific
// parameter sets before anything is persisted.
package shapes

import (
	"errors"
	"fmt"
)

const (
	Rectangle  = "rectangle"
	Circle     = "circle"
	Pill       = "pill"
	CRectangle = "c-rectangle"
)

// All lists the supported shapes in their canonical order.
var All = []string{Rectangle, Circle, Pill, CRectangle}

// ValidationError reports why a shape definition was rejected. The message is
// safe to return to API callers.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err came from Validate rejecting input.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks shape and its parameter set, returning nil when valid and a
// *ValidationError describing the first violated rule otherwise.
func Validate(shape string, params map[string]interface{}) error {
	switch shape {
	case Rectangle, Circle, Pill, CRectangle:
	default:
		return invalid("Shape must be one of: rectangle, circle, pill, c-rectangle.")
	}

	if params == nil {
		return invalid("shape_params must be a JSON object.")
	}

	switch shape {
	case Rectangle:
		for _, k := range []string{"width", "height"} {
			if _, ok := params[k]; !ok {
				return invalid("Rectangle requires 'width' and 'height' in shape_params.")
			}
		}
		for _, k := range []string{"width", "height"} {
			if !positiveNumber(params[k]) {
				return invalid("Rectangle '%s' must be a positive number.", k)
			}
		}

	case Circle:
		if _, ok := params["radius"]; !ok {
			return invalid("Circle requires 'radius' in shape_params.")
		}
		if !positiveNumber(params["radius"]) {
			return invalid("Circle 'radius' must be a positive number.")
		}

	case Pill:
		for _, k := range []string{"width", "height", "border_radius"} {
			if _, ok := params[k]; !ok {
				return invalid("Pill requires '%s' in shape_params.", k)
			}
			if !positiveNumber(params[k]) {
				return invalid("Pill '%s' must be a positive number.", k)
			}
		}

	case CRectangle:
		for _, k := range []string{"width", "height", "missing_side", "missing_width", "missing_height"} {
			if _, ok := params[k]; !ok {
				return invalid("C-rectangle requires '%s' in shape_params.", k)
			}
		}
		side, _ := params["missing_side"].(string)
		switch side {
		case "top", "bottom", "left", "right":
		default:
			return invalid("C-rectangle 'missing_side' must be one of: top, bottom, left, right.")
		}
		for _, k := range []string{"width", "height", "missing_width", "missing_height"} {
			if !positiveNumber(params[k]) {
				return invalid("C-rectangle '%s' must be a positive number.", k)
			}
		}
		if number(params["missing_width"]) >= number(params["width"]) {
			return invalid("C-rectangle 'missing_width' must be less than 'width'.")
		}
		if number(params["missing_height"]) >= number(params["height"]) {
			return invalid("C-rectangle 'missing_height' must be less than 'height'.")
		}
	}

	return nil
}

// number coerces the numeric types a decoded JSON document or caller may
// carry. Non-numeric values yield 0 and fail the positive check.
func number(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	default:
		return 0
	}
}

func positiveNumber(v interface{}) bool {
	switch v.(type) {
	case float64, float32, int, int64, uint:
		return number(v) > 0
	default:
		return false
	}
}
