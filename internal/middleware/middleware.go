// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, CORS, request IDs, New Relic tracing,
// panic recovery, and the final error funnel
package middleware
