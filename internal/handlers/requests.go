package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/dolinaroz/landing/internal/lead"
)

// CustomValidator wraps go-playground/validator to implement echo.Validator.
// Errors name fields by their form tags.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: lead.NewValidator()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// MissingFields returns the form names of the fields that failed validation,
// or nil when err is not a validation error.
func MissingFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
