// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/jwtcrack/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// SignedToken validates that a string has three non-empty dot-separated segments.
var SignedToken = validation.NewStringRuleWithError(
	func(s string) bool {
		parts := strings.Split(s, ".")
		if len(parts) != 3 {
			return false
		}
		for _, part := range parts {
			if part == "" {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_signed_token", "must be a token of the form header.payload.signature"),
)
