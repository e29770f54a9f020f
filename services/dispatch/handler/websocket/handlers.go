package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/jwt"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
	pkgws "github.com/ridewave/dispatch/internal/pkg/websocket"
	"github.com/ridewave/dispatch/services/dispatch"
)

// coordinatePayload carries optional coordinate fields so absent values can
// be told apart from zero values.
type coordinatePayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// bookingRequestPayload is the inbound booking request shape. Clients in the
// field use both naming generations, so both alias sets are accepted:
// pickup/from, dropoff/to and vehicleClass/vehicleType.
type bookingRequestPayload struct {
	Pickup       *coordinatePayload `json:"pickup"`
	From         *coordinatePayload `json:"from"`
	Dropoff      *coordinatePayload `json:"dropoff"`
	To           *coordinatePayload `json:"to"`
	VehicleClass string             `json:"vehicleClass"`
	VehicleType  string             `json:"vehicleType"`
	Token        string             `json:"token"`
}

// handleBookingRequest validates and normalizes a booking request, resolves
// the acting identity and hands off to the dispatch flow. Failures come back
// to the requester as typed booking_error events.
func (m *WebSocketManager) handleBookingRequest(ctx context.Context, client *pkgws.Client, data json.RawMessage) error {
	var payload bookingRequestPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return client.Send(constants.EventBookingError, models.WSErrorMessage{
			Code:    constants.ErrorInvalidFormat,
			Message: "Invalid booking request format",
		})
	}

	identity := client.Identity
	if payload.Token != "" {
		claims, err := jwt.ValidateToken(payload.Token, m.jwtCfg.Secret)
		if err != nil {
			return client.Send(constants.EventBookingError, models.WSErrorMessage{
				Code:    constants.ErrorUnauthorized,
				Message: "Invalid credential",
			})
		}
		identity = claims.Identity()
	}

	pickup := firstCoordinate(payload.Pickup, payload.From)
	dropoff := firstCoordinate(payload.Dropoff, payload.To)
	if pickup == nil || dropoff == nil {
		return client.Send(constants.EventBookingError, models.WSErrorMessage{
			Code:    constants.ErrorInvalidRequest,
			Message: "Pickup and dropoff coordinates are required",
		})
	}

	vehicleClass := payload.VehicleClass
	if vehicleClass == "" {
		vehicleClass = payload.VehicleType
	}

	req := &models.BookingRequest{
		Pickup:       *pickup,
		Dropoff:      *dropoff,
		VehicleClass: vehicleClass,
	}

	booking, err := m.dispatchUC.CreateBooking(ctx, identity, req)
	if err != nil {
		logger.WarnCtx(ctx, "Booking request rejected", logger.Err(err))
		return client.Send(constants.EventBookingError, models.WSErrorMessage{
			Code:    bookingErrorCode(err),
			Message: err.Error(),
		})
	}

	return client.Send(constants.EventBookingCreated, booking)
}

// firstCoordinate returns the first alias that is fully present.
func firstCoordinate(candidates ...*coordinatePayload) *models.Coordinate {
	for _, c := range candidates {
		if c == nil || c.Latitude == nil || c.Longitude == nil {
			continue
		}
		return &models.Coordinate{
			Latitude:  *c.Latitude,
			Longitude: *c.Longitude,
		}
	}
	return nil
}

// bookingErrorCode maps dispatch flow errors to wire error codes.
func bookingErrorCode(err error) string {
	switch {
	case errors.Is(err, dispatch.ErrUnauthorized):
		return constants.ErrorUnauthorized
	case errors.Is(err, dispatch.ErrInvalidRequest):
		return constants.ErrorInvalidRequest
	case errors.Is(err, dispatch.ErrPersistence):
		return constants.ErrorBookingFailed
	default:
		return constants.ErrorInternalError
	}
}

// handleDriverPosition relays a driver position update to every connection.
func (m *WebSocketManager) handleDriverPosition(ctx context.Context, client *pkgws.Client, data json.RawMessage) error {
	m.dispatchUC.RelayDriverPosition(ctx, data)
	return nil
}

// handlePricingUpdate relays a pricing change to every connection.
func (m *WebSocketManager) handlePricingUpdate(ctx context.Context, client *pkgws.Client, data json.RawMessage) error {
	m.dispatchUC.RelayPricingUpdate(ctx, data)
	return nil
}
