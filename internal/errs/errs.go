// Package errs defines the failure kinds the product handlers expect at
// their boundary and how each one is rendered to the client.
//
// Only three kinds are recognized: validation failures, missing records, and
// request bodies that cannot be parsed. Anything else is deliberately left
// alone so that it reaches the hosting runtime unchanged.
package errs
