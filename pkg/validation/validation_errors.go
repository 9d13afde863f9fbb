package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-prodigy-backend/pkg/apperror"
)

// fieldMessages maps field name + failed tag to the user-facing message shown
// on the site. Falls back to a generic message for unmapped combinations.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name must be at least 2 characters",
		"min":      "Name must be at least 2 characters",
		"max":      "Name must be less than 100 characters",
	},
	"email": {
		"required": "Please enter a valid email address",
		"email":    "Please enter a valid email address",
	},
	"projectType": {
		"required": "Please select a project type",
		"max":      "Project type must be less than 100 characters",
	},
	"message": {
		"required": "Message must be at least 10 characters",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be less than 2000 characters",
	},
}

// Violations converts a validator error into field-level violation records.
// Every failed rule is reported; nothing short-circuits, so the caller gets
// the full violation set from a single validation pass.
func Violations(err error) []apperror.FieldViolation {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a field-level error; report it unattributed rather than dropping it.
		return []apperror.FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]apperror.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, apperror.FieldViolation{
			Field:   e.Field(),
			Message: messageFor(e),
		})
	}
	return violations
}

func messageFor(e validator.FieldError) string {
	if byTag, ok := fieldMessages[e.Field()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	default:
		return fmt.Sprintf("%s is invalid (%s)", e.Field(), e.Tag())
	}
}
