package errs

import (
	"errors"
	"net/http"
)

// ValidationBody is the 400 body for validation failures.
type ValidationBody struct {
	Errors []string `json:"errors"`
}

// MessageBody is the body for single-message failures.
type MessageBody struct {
	Error string `json:"error"`
}

// NotFoundMessage is the fixed body message for missing records.
const NotFoundMessage = "not found"

// HTTPResponse maps an expected failure to its status code and JSON body.
//
// ok is false when err is not an *Error, or carries an unknown kind. Those
// errors must be propagated by the caller, not turned into a response here.
func HTTPResponse(err error) (status int, body any, ok bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, nil, false
	}

	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest, ValidationBody{Errors: e.Messages()}, true

	case KindNotFound:
		return http.StatusNotFound, MessageBody{Error: NotFoundMessage}, true

	case KindMalformedBody:
		return http.StatusBadRequest, MessageBody{
			Error: `invalid request body format : "` + e.causeMessage() + `"`,
		}, true

	default:
		return 0, nil, false
	}
}
