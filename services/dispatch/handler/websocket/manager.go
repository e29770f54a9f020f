package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
	pkgws "github.com/ridewave/dispatch/internal/pkg/websocket"
	"github.com/ridewave/dispatch/services/dispatch"
)

// WebSocketManager routes dispatch events for connected clients on top of
// the shared connection registry.
type WebSocketManager struct {
	dispatchUC dispatch.DispatchUC
	manager    *pkgws.Manager
	jwtCfg     models.JWTConfig
}

// NewWebSocketManager creates a new WebSocket manager for the dispatch service
func NewWebSocketManager(
	dispatchUC dispatch.DispatchUC,
	manager *pkgws.Manager,
	jwtCfg models.JWTConfig,
) *WebSocketManager {
	return &WebSocketManager{
		dispatchUC: dispatchUC,
		manager:    manager,
		jwtCfg:     jwtCfg,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.messageLoop)
}

// messageLoop reads and dispatches messages until the connection closes.
func (m *WebSocketManager) messageLoop(client *pkgws.Client) error {
	for {
		_, msg, err := client.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error", logger.Err(err))
			}
			return err
		}

		if err := m.handleMessage(context.Background(), client, msg); err != nil {
			logger.Warn("Error handling message", logger.Err(err))
		}
	}
}

// handleMessage processes one inbound event envelope.
func (m *WebSocketManager) handleMessage(ctx context.Context, client *pkgws.Client, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventBookingRequest:
		return m.handleBookingRequest(ctx, client, wsMsg.Data)
	case constants.EventDriverPosition:
		return m.handleDriverPosition(ctx, client, wsMsg.Data)
	case constants.EventPricingUpdate:
		return m.handlePricingUpdate(ctx, client, wsMsg.Data)
	default:
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event: "+wsMsg.Event)
	}
}
