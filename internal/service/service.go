// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each product operation
// parses and validates the raw body, talks to the product store, and reports
// expected failures as errs values.
package service
