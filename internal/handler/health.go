package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/product-service/internal/middleware"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler reports whether the service and its storage backend are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 when every configured dependency answers,
// 503 otherwise. The memory driver has no dependency to check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"storage":     h.server.Config.Storage.Driver,
		"checks":      checks,
	}

	isHealthy := true

	if h.server.DB != nil {
		if !h.check(c.Request().Context(), &logger, checks, "database", h.server.DB.Pool.Ping) {
			isHealthy = false
		}
	}

	if h.server.Redis != nil {
		ping := func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}
		if !h.check(c.Request().Context(), &logger, checks, "redis", ping) {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// check runs one ping bounded by the configured health check timeout and
// records its outcome under name.
func (h *HealthHandler) check(
	parent context.Context,
	logger *zerolog.Logger,
	checks map[string]interface{},
	name string,
	ping func(context.Context) error,
) bool {
	ctx, cancel := context.WithTimeout(parent, h.timeout())
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		checks[name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordFailure(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks[name] = map[string]interface{}{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}

	logger.Info().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)
	return true
}

func (h *HealthHandler) timeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return 5 * time.Second
}

// recordFailure sends a HealthCheckError custom event when New Relic runs.
func (h *HealthHandler) recordFailure(attrs map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
