package handler

import (
	"context"
	"time"

	"autoquiz/internal/domain"
	"autoquiz/internal/dto"
	"autoquiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Redis states reported by the health check.
const (
	RedisUp       = "up"
	RedisDown     = "down"
	RedisDisabled = "disabled"
)

// HealthHandler answers the liveness probe. The API keeps serving without the quiz
// cache, so a failing redis only degrades the status.
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil when redis is not configured.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health is mounted outside /api and left out of the API docs.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Redis: RedisDisabled}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health check: redis ping failed", zap.Error(err))
			resp.Status = "degraded"
			resp.Redis = RedisDown
		} else {
			resp.Redis = RedisUp
		}
	}
	return c.JSON(resp)
}
