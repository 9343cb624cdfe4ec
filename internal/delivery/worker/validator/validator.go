// Package validator plugs go-playground/validator into echo.
package validator

import (
	"poolscout/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed constraint, reported back to the caller.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a request validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Fields flattens a validation error into per-field failures. Other errors
// yield nil.
func Fields(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}

	return fields
}
