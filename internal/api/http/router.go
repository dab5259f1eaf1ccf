package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/civicgrid/complaints-platform/internal/api/http/handlers"
	"github.com/civicgrid/complaints-platform/internal/ratelimit"
	apperrors "github.com/civicgrid/complaints-platform/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Complaints *handlers.ComplaintsHandler
	Limiter    ratelimit.Limiter
	Logger     *zap.Logger
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)

	app.Post("/complaint", rateLimitMiddleware(cfg.Limiter, cfg.Logger), cfg.Complaints.Create)
	app.Get("/complaint/:id", cfg.Complaints.Get)
	app.Get("/complaints", cfg.Complaints.List)
}

// rateLimitMiddleware rejects submissions once a client exceeds its
// per-minute budget. A limiter error fails open: intake availability
// matters more than precise throttling.
func rateLimitMiddleware(limiter ratelimit.Limiter, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		allowed, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if !allowed {
			return apperrors.NewRateLimited()
		}
		return c.Next()
	}
}
