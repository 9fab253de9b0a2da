// Package validation contains the logic for validating
// request data.
//
// Product bodies are untyped, so the checks are described by a small
// declarative Schema instead of struct tags. Failures are converted into
// the field error format the client receives.
package validation
