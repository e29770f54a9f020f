package usecase

import (
	"context"
	"encoding/json"

	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// RelayDriverPosition rebroadcasts a driver position payload verbatim to
// every connection. When the payload happens to parse as a position update
// it also refreshes the driver position cache; cache failures never block
// the relay.
func (uc *DispatchUC) RelayDriverPosition(ctx context.Context, payload json.RawMessage) {
	uc.notifier.BroadcastAll(constants.EventDriverPosition, payload)

	var update models.DriverPositionUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return
	}
	if update.DriverID == "" || update.Latitude == nil || update.Longitude == nil {
		return
	}

	position := models.Coordinate{Latitude: *update.Latitude, Longitude: *update.Longitude}
	if !position.Valid() {
		return
	}

	if err := uc.repo.UpdateDriverPosition(ctx, update.DriverID, position); err != nil {
		logger.WarnCtx(ctx, "Failed to cache driver position",
			logger.String("driver_id", update.DriverID),
			logger.Err(err))
	}
}

// RelayPricingUpdate rebroadcasts a pricing update payload verbatim to every
// connection.
func (uc *DispatchUC) RelayPricingUpdate(ctx context.Context, payload json.RawMessage) {
	uc.notifier.BroadcastAll(constants.EventPricingUpdate, payload)
}
