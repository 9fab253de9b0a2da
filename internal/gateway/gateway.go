// Package gateway defines the request and response events exchanged between
// the HTTP gateway and the product handlers.
//
// The shapes mirror a proxy-integration event: the gateway hands over the raw
// body text and the matched path parameters, and expects a status code,
// headers and a body string back. Handlers never see the transport directly,
// which keeps each one invocable from echo, from the CLI, or from a test.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// HeaderContentType is the response header carrying the body media type.
	HeaderContentType = "content-type"

	// ContentTypeJSON is the only media type the handlers produce.
	ContentTypeJSON = "application/json"

	// PathParamID is the path parameter holding a product identifier.
	PathParamID = "id"
)

// Request is the inbound event for one handler invocation.
//
// Body may be empty when the client sent nothing.
type Request struct {
	Body           string            `json:"body"`
	PathParameters map[string]string `json:"pathParameters"`
}

// PathParameter returns the named path parameter, or "" when absent.
func (r Request) PathParameter(name string) string {
	if r.PathParameters == nil {
		return ""
	}
	return r.PathParameters[name]
}

// Response is the outbound event produced by a handler.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// JSON encodes v and returns a response with the JSON content type.
func JSON(status int, v any) (Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode response body: %w", err)
	}

	return Response{
		StatusCode: status,
		Headers:    map[string]string{HeaderContentType: ContentTypeJSON},
		Body:       string(body),
	}, nil
}

// NoContent returns the 204 response. It carries neither headers nor a body.
func NoContent() Response {
	return Response{StatusCode: http.StatusNoContent}
}
