package validation

import (
	"errors"

	"github.com/deppfellow/product-service/internal/errs"
)

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// ToHTTPError converts CustomValidationErrors into an errs.KindValidation
// error. Any other error is returned unchanged.
func ToHTTPError(err error) error {
	if err == nil {
		return nil
	}

	fieldErrors := extractValidationError(err)
	if fieldErrors == nil {
		return err
	}
	return errs.NewValidationError(fieldErrors)
}

func extractValidationError(err error) []errs.FieldError {
	var customValidationErrors CustomValidationErrors
	if !errors.As(err, &customValidationErrors) {
		return nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(customValidationErrors))
	for _, e := range customValidationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field:   e.Field,
			Message: e.Message,
		})
	}
	return fieldErrors
}
