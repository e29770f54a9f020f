package websocket

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/jwt"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// HeaderAuthToken is the explicit handshake credential carrier, checked
// before the query parameter and the Authorization header.
const HeaderAuthToken = "X-Auth-Token"

// Manager is the session registry: it tracks every live connection and a
// room per driver id. A driver id may hold many simultaneous connections
// (multiple devices). The registry does not own connections; entries are
// removed when the transport signals disconnect.
type Manager struct {
	sync.RWMutex
	conns    map[*Client]struct{}
	rooms    map[string]map[*Client]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new connection manager. One instance is constructed
// at startup and injected into every component that emits events.
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns: make(map[*Client]struct{}),
		rooms: make(map[string]map[*Client]struct{}),
		cfg:   jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection resolves the connection identity, upgrades the request
// and runs handleClient until the connection closes. Registry membership is
// maintained for the whole connection lifetime.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	identity := m.ResolveIdentity(c.Request())

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := NewClient(ws, identity)
	m.Join(client)
	defer m.Leave(client)

	return handleClient(client)
}

// ResolveIdentity extracts and verifies the connection credential. An absent
// credential yields an anonymous connection. An invalid credential also
// yields an anonymous connection, logged but never fatal to the transport;
// actions that require identity reject at action level instead.
func (m *Manager) ResolveIdentity(r *http.Request) *models.Identity {
	token := extractToken(r)
	if token == "" {
		return nil
	}

	claims, err := jwt.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Connection token validation failed, continuing unauthenticated",
			logger.Err(err))
		return nil
	}

	return claims.Identity()
}

// extractToken checks credential carriers in priority order: the explicit
// handshake header, the token query parameter, then a Bearer-prefixed
// Authorization header (prefix stripped case-insensitively).
func extractToken(r *http.Request) string {
	if token := r.Header.Get(HeaderAuthToken); token != "" {
		return token
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// Join registers a connection, adding driver connections to their room.
func (m *Manager) Join(client *Client) {
	m.Lock()
	defer m.Unlock()

	m.conns[client] = struct{}{}
	if driverID := client.DriverID(); driverID != "" {
		room, ok := m.rooms[driverID]
		if !ok {
			room = make(map[*Client]struct{})
			m.rooms[driverID] = room
		}
		room[client] = struct{}{}
	}
}

// Leave removes a connection from the registry and from its room, dropping
// the room entry when its last connection closes. No-op for unknown clients.
func (m *Manager) Leave(client *Client) {
	m.Lock()
	defer m.Unlock()

	delete(m.conns, client)
	if driverID := client.DriverID(); driverID != "" {
		if room, ok := m.rooms[driverID]; ok {
			delete(room, client)
			if len(room) == 0 {
				delete(m.rooms, driverID)
			}
		}
	}
}

// SendToDriver fans an event out to every connection of one driver. A driver
// with no live connections is a no-op, not an error: drivers go offline.
func (m *Manager) SendToDriver(driverID string, event string, data interface{}) {
	m.RLock()
	targets := make([]*Client, 0, len(m.rooms[driverID]))
	for client := range m.rooms[driverID] {
		targets = append(targets, client)
	}
	m.RUnlock()

	for _, client := range targets {
		if err := client.Send(event, data); err != nil {
			logger.Warn("Error sending message to driver connection",
				logger.String("driver_id", driverID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// BroadcastAll delivers an event to every live connection regardless of
// identity. Sends happen outside the registry lock.
func (m *Manager) BroadcastAll(event string, data interface{}) {
	m.RLock()
	targets := make([]*Client, 0, len(m.conns))
	for client := range m.conns {
		targets = append(targets, client)
	}
	m.RUnlock()

	for _, client := range targets {
		if err := client.Send(event, data); err != nil {
			logger.Warn("Error broadcasting message",
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// SendErrorMessage sends a typed error event to one connection.
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return client.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// ConnectionCount returns the number of live connections.
func (m *Manager) ConnectionCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.conns)
}

// RoomSize returns the number of live connections for a driver id.
func (m *Manager) RoomSize(driverID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.rooms[driverID])
}
