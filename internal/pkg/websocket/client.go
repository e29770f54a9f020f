package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// Client is one live WebSocket connection and the identity it resolved at
// connect time. Identity is nil for anonymous connections.
type Client struct {
	Identity *models.Identity

	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewClient wraps a connection with its resolved identity.
func NewClient(conn *websocket.Conn, identity *models.Identity) *Client {
	return &Client{conn: conn, Identity: identity}
}

// DriverID returns the driver id of the connection, or "" when the
// connection does not carry a driver identity.
func (c *Client) DriverID() string {
	if c.Identity.IsDriver() {
		return c.Identity.ID
	}
	return ""
}

// ReadMessage reads the next message from the connection.
func (c *Client) ReadMessage() (int, []byte, error) {
	return c.conn.ReadMessage()
}

// Send writes an event envelope to the connection. Writes are serialized per
// connection because gorilla connections do not support concurrent writers.
// A nil connection is tolerated so registry logic can be tested without a
// network peer.
func (c *Client) Send(event string, data interface{}) error {
	if c.conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}
