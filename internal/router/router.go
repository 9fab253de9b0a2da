// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/product-service/internal/handler"
	"github.com/deppfellow/product-service/internal/middleware"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance serving every route.
//
// Middleware order matters: the request ID and New Relic transaction must
// exist before the context enhancer derives the request logger, and the
// request logger must wrap Recover so recovered panics are logged as 500s.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerProductRoutes(router, h)

	return router
}
