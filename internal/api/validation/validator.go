package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the user-facing reason for a failed field/tag pair
var fieldMessages = map[string]string{
	"name.min":    "Name must be at least 2 characters",
	"email.email": "Please enter a valid email",
	"subject.min": "Subject must be at least 5 characters",
	"message.min": "Message must be at least 20 characters",
}

// NewValidator creates a validator that reports JSON field names and uses the
// project's custom rules.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	// Replaces the built-in RFC-style email rule with the permissive site rule
	v.RegisterValidation("email", validateEmail)
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return utils.IsValidEmail(fl.Field().String())
}

// FormatValidationError converts validator errors into field -> reasons.
// Errors that are not validation errors yield nil.
func FormatValidationError(err error) common.FieldErrors {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(common.FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		details[e.Field()] = append(details[e.Field()], Message(e.Field(), e.Tag(), e.Param()))
	}
	return details
}

// Message returns the reason for a failed rule on a field
func Message(field, tag, param string) string {
	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}

	label := utils.Capitalize(field)
	switch tag {
	case "required":
		return label + " is required"
	case "min":
		return label + " must be at least " + param + " characters"
	case "max":
		return label + " must be at most " + param + " characters"
	case "email":
		return "Please enter a valid email"
	default:
		return label + " is invalid"
	}
}
