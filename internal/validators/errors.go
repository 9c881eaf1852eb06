package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-marketplace/models"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError lists the fields that failed validation, in struct order.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewFieldError builds a single-field *ValidationError. Handlers use it for
// path parameters and undecodable bodies.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}

// AsValidationError reports whether err is or wraps a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
