package gateway

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/civicgrid/complaints-platform/internal/hub"
)

// wsClient wraps a websocket connection as a hub client. Writes are
// serialized: broadcasts and relay failure notices may race on the same
// connection.
type wsClient struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSClient(id string, conn *websocket.Conn) *wsClient {
	return &wsClient{id: id, conn: conn}
}

func (c *wsClient) SessionID() string {
	return c.id
}

func (c *wsClient) Emit(event, data string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(hub.Frame{Event: event, Data: data})
}
