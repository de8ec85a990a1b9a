package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps one websocket connection. Writes are serialized; the core
// may notify from an inbound handler and a timer callback close together.
type client struct {
	id   string
	conn *websocket.Conn

	mu sync.Mutex
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		conn: conn,
	}
}

func (c *client) writeJson(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.WriteJSON(msg)
}
