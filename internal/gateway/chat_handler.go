package gateway

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicgrid/complaints-platform/internal/hub"
	"github.com/civicgrid/complaints-platform/internal/relay"
	apperrors "github.com/civicgrid/complaints-platform/pkg/util"
)

// messageEvent is the client-to-server event carrying chat text.
const messageEvent = "message"

// chatHandler owns the WebSocket sessions and the broadcast endpoint.
type chatHandler struct {
	hub       *hub.Hub
	forwarder *relay.Forwarder
	logger    *zap.Logger
}

func newChatHandler(h *hub.Hub, forwarder *relay.Forwarder, logger *zap.Logger) *chatHandler {
	return &chatHandler{hub: h, forwarder: forwarder, logger: logger}
}

// HandleSocket runs one client session: register, read frames, relay
// each chat message, unregister on disconnect. A relay loop runs to
// completion before the next frame is read, so messages from one client
// are forwarded in order.
func (h *chatHandler) HandleSocket(conn *websocket.Conn) {
	client := newWSClient(uuid.NewString(), conn)
	h.hub.Register(client)
	defer h.hub.Unregister(client.SessionID())

	for {
		var frame hub.Frame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		if frame.Event != messageEvent || strings.TrimSpace(frame.Data) == "" {
			continue
		}
		h.logger.Info("chat message received",
			zap.String("session", client.SessionID()))
		h.forwarder.Relay(context.Background(), client.SessionID(), frame.Data, client)
	}
}

type notifyRequest struct {
	Mensaje string `json:"mensaje"`
}

// Notify POST /api/notificacion. Fans the message out to every
// connected client.
func (h *chatHandler) Notify(c *fiber.Ctx) error {
	var req notifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Falta el campo mensaje")
	}
	if strings.TrimSpace(req.Mensaje) == "" {
		return apperrors.NewValidationError("Falta el campo mensaje")
	}

	delivered := h.hub.Broadcast(relay.BotMessageEvent, req.Mensaje)
	h.logger.Info("notification broadcast",
		zap.Int("clients", delivered))

	return c.JSON(fiber.Map{
		"status":  "ok",
		"mensaje": req.Mensaje,
	})
}
