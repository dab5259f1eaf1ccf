// Package gateway exposes the chat gateway: a WebSocket endpoint, the
// notification broadcast endpoint and the static chat page.
package gateway

import (
	"path/filepath"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/civicgrid/complaints-platform/internal/hub"
	"github.com/civicgrid/complaints-platform/internal/relay"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Hub          *hub.Hub
	Forwarder    *relay.Forwarder
	Logger       *zap.Logger
	StaticDir    string
	TemplatesDir string
}

// RegisterRoutes wires the gateway's HTTP and WebSocket routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	handler := newChatHandler(cfg.Hub, cfg.Forwarder, cfg.Logger)

	app.Static("/static", cfg.StaticDir)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.TemplatesDir, "index.html"))
	})

	app.Post("/api/notificacion", handler.Notify)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(handler.HandleSocket))
}
