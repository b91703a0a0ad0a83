// Package validation contains the logic for validating
// caller-supplied input such as page requests and entities.
//
// It uses the `validator` library to enforce rules (like
// required fields or value ranges) defined in struct tags
// and extracts validation errors into a format the caller can
// understand
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dame620/firstbackjhipstergradle/internal/errs"
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by input types that know how to validate themselves.
//
// Typical pattern:
// - Define a struct with validator tags (`validate:"required,min=1"`)
// - Implement Validate() error that runs validation.Struct or returns CustomValidationErrors
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their json names, e.g. "size" rather than "Size".
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct validates v against its struct tags. It returns nil or a
// *errs.ValidationError listing every failing field.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return toValidationError(err)
	}
	return nil
}

// Check runs v.Validate and converts its failure into a *errs.ValidationError.
func Check(v Validatable) error {
	if err := v.Validate(); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	var already *errs.ValidationError
	if errors.As(err, &already) {
		return err
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return errs.Malformed("cannot validate %s", invalid.Type)
	}
	msg, fieldErrors := extractValidationError(err)
	return &errs.ValidationError{Message: msg, Errors: fieldErrors}
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means length for strings and value for numbers.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "isdefault":
			msg = "must not be set"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
