package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/services/dispatch/handler/http"
	"github.com/ridewave/dispatch/services/dispatch/handler/nats"
	"github.com/ridewave/dispatch/services/dispatch/handler/websocket"
)

// Handler coordinates all protocol handlers for the dispatch service
type Handler struct {
	pricingHandler *http.PricingHandler
	wsManager      *websocket.WebSocketManager
	natsHandler    *nats.NatsHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	pricingHandler *http.PricingHandler,
	wsManager *websocket.WebSocketManager,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		pricingHandler: pricingHandler,
		wsManager:      wsManager,
		natsHandler:    natsHandler,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
	})
}

// RegisterRoutes registers all protocol handlers and their routes.
// The WebSocket endpoint is deliberately unguarded: identity is resolved
// inside the connection handshake and anonymous connections are allowed.
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	e.GET("/ws", h.wsManager.HandleWebSocket)

	pricingGroup := e.Group("/v1/pricing", h.GetJWTMiddleware())
	pricingGroup.POST("", h.pricingHandler.UpsertPricingRule)
	pricingGroup.GET("/:vehicle_class", h.pricingHandler.GetPricingRule)

	return h.natsHandler.InitConsumers()
}
