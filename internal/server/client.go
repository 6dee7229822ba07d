package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a websocket connection with a write lock. The broadcast
// loop and the close path may write concurrently; gorilla allows only one
// writer at a time.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.Close()
}
