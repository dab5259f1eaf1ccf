// Package hub tracks connected chat clients and fans messages out to
// them.
package hub

import (
	"sync"

	"go.uber.org/zap"
)

// Frame is the JSON envelope exchanged over the chat channel.
type Frame struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Client is a connected chat session.
type Client interface {
	SessionID() string
	Emit(event, data string) error
}

// Hub is the registry of currently connected clients. Broadcast walks a
// snapshot of the registry, so a client connecting mid-broadcast sees
// either all or none of that message.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]Client
	logger  *zap.Logger
}

// NewHub creates an empty registry.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]Client),
		logger:  logger,
	}
}

// Register adds a client to the registry.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	h.clients[client.SessionID()] = client
	h.mu.Unlock()
	h.logger.Info("client connected", zap.String("session", client.SessionID()))
}

// Unregister removes a client. Safe to call for unknown sessions.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	_, known := h.clients[sessionID]
	delete(h.clients, sessionID)
	h.mu.Unlock()
	if known {
		h.logger.Info("client disconnected", zap.String("session", sessionID))
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast delivers the event to every currently connected client and
// returns how many deliveries succeeded. There is no acknowledgment and
// no replay; a failed write only drops that one client's copy.
func (h *Hub) Broadcast(event, data string) int {
	h.mu.RLock()
	snapshot := make([]Client, 0, len(h.clients))
	for _, client := range h.clients {
		snapshot = append(snapshot, client)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, client := range snapshot {
		if err := client.Emit(event, data); err != nil {
			h.logger.Warn("broadcast write failed",
				zap.String("session", client.SessionID()),
				zap.Error(err))
			continue
		}
		delivered++
	}
	return delivered
}
