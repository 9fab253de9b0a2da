package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deppfellow/product-service/internal/gateway"
	"github.com/deppfellow/product-service/internal/middleware"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// GatewayFunc is a handler entry point. A non-nil error is an unclassified
// failure: expected failures are already encoded in the Response.
type GatewayFunc func(ctx context.Context, req gateway.Request) (gateway.Response, error)

// handleRequest is the shared execution pipeline for gateway handlers.
//
// It centralizes:
//   - echo request -> gateway.Request conversion
//   - structured logging (with request context)
//   - New Relic attributes and error reporting
//   - handler timing
//   - gateway.Response -> echo response writing
func handleRequest(c echo.Context, operation string, handler GatewayFunc) error {
	start := time.Now()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", operation)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", operation).
		Str("route", c.Path()).
		Logger()

	logger.Info().Msg("handling request")

	req, err := gatewayRequest(c)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read request")
		return err
	}

	res, err := handler(c.Request().Context(), req)
	handlerDuration := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("handler.status_code", res.StatusCode)
	}

	logger.Info().
		Int("status", res.StatusCode).
		Dur("handler_duration", handlerDuration).
		Msg("request completed successfully")

	return writeResponse(c, res)
}

// Handle wraps a gateway entry point into an echo.HandlerFunc.
//
//	router.POST("/products", handler.Handle(h, "create_product", products.CreateProduct))
func Handle(h Handler, operation string, handler GatewayFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, operation, handler)
	}
}

// gatewayRequest converts the echo request into a gateway event.
func gatewayRequest(c echo.Context) (gateway.Request, error) {
	req := gateway.Request{}

	if c.Request().Body != nil {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return req, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body = string(body)
	}

	names := c.ParamNames()
	if len(names) > 0 {
		values := c.ParamValues()
		req.PathParameters = make(map[string]string, len(names))
		for i, name := range names {
			if i < len(values) {
				req.PathParameters[name] = values[i]
			}
		}
	}

	return req, nil
}

// writeResponse writes a gateway response through echo.
func writeResponse(c echo.Context, res gateway.Response) error {
	header := c.Response().Header()
	for k, v := range res.Headers {
		header.Set(k, v)
	}

	if res.StatusCode == http.StatusNoContent || res.Body == "" {
		return c.NoContent(res.StatusCode)
	}

	return c.Blob(res.StatusCode, header.Get(gateway.HeaderContentType), []byte(res.Body))
}
