package errs

import (
	"fmt"
	"strings"
)

// Kind tags an expected failure.
type Kind uint8

const (
	// KindValidation means one or more fields failed the schema.
	KindValidation Kind = iota + 1

	// KindNotFound means the addressed record does not exist.
	KindNotFound

	// KindMalformedBody means the request body is not a parseable JSON object.
	KindMalformedBody
)

// String returns a stable name for logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindMalformedBody:
		return "malformed_body"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// FieldError is a validation message for a single input field.
//
//	{ "field": "price", "message": "price is a required field" }
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is an expected failure at the handler boundary.
type Error struct {
	Kind Kind

	// Fields is set for KindValidation, in the order the checks ran.
	Fields []FieldError

	// Cause is the parser error for KindMalformedBody.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return "validation failed: " + strings.Join(e.Messages(), "; ")
	case KindNotFound:
		return "not found"
	case KindMalformedBody:
		return "invalid request body format: " + e.causeMessage()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, errs.NewNotFoundError()).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Messages returns the field messages in order.
func (e *Error) Messages() []string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return messages
}

func (e *Error) causeMessage() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// NewValidationError returns a KindValidation error carrying fields.
func NewValidationError(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

// NewNotFoundError returns a KindNotFound error.
func NewNotFoundError() *Error {
	return &Error{Kind: KindNotFound}
}

// NewMalformedBodyError returns a KindMalformedBody error wrapping the parser
// failure.
func NewMalformedBodyError(cause error) *Error {
	return &Error{Kind: KindMalformedBody, Cause: cause}
}
