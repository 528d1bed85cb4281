package middleware

import (
	"github.com/go-playground/validator/v10"

	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct validates a DTO against its validation tags and converts
// the first failure into the portal's error envelope semantics.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return apperrors.NewBadRequestError(formatValidationError(fieldErrors[0]))
	}
	return apperrors.NewBadRequestError("invalid request format")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
