// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// Product handlers consume and produce gateway events, so the same entry
// point serves echo routes and CLI invocations. The base pipeline adapts an
// echo request into a gateway.Request and writes the gateway.Response back.
package handler
