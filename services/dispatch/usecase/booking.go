package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/services/dispatch"
)

// CreateBooking runs one booking request to its terminal outcome:
// validate -> price -> persist -> match -> notify. Driver notifications and
// the aggregate broadcast are dispatched before this returns, so the
// requester's acknowledgment is never observed ahead of them.
func (uc *DispatchUC) CreateBooking(ctx context.Context, identity *models.Identity, req *models.BookingRequest) (*models.BookingPayload, error) {
	if !identity.IsPassenger() {
		return nil, dispatch.ErrUnauthorized
	}
	if !req.Pickup.Valid() || !req.Dropoff.Valid() {
		return nil, dispatch.ErrInvalidRequest
	}

	vehicleClass := req.VehicleClass
	if vehicleClass == "" {
		vehicleClass = uc.cfg.Dispatch.DefaultVehicleClass
	}

	breakdown, distanceKm := uc.EstimateFare(ctx, req.Pickup, req.Dropoff, vehicleClass)

	booking := &models.Booking{
		ID:            uuid.New(),
		PassengerID:   identity.ID,
		PassengerName: identity.Name,
		VehicleClass:  vehicleClass,
		Pickup:        req.Pickup,
		Dropoff:       req.Dropoff,
		DistanceKm:    distanceKm,
		FareEstimated: breakdown.Total(),
		FareBreakdown: breakdown,
		Status:        models.BookingStatusRequested,
		CreatedAt:     time.Now(),
	}

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		logger.ErrorCtx(ctx, "Failed to persist booking",
			logger.String("passenger_id", identity.ID),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", dispatch.ErrPersistence, err)
	}

	payload := buildBookingPayload(booking, identity)
	uc.notifyDrivers(ctx, payload, vehicleClass, req.Pickup)

	return payload, nil
}

// notifyDrivers dispatches the targeted driver notifications and the
// aggregate dashboard broadcast. A failed driver-pool lookup degrades to a
// global broadcast so the booking is never lost; zero matches is not a
// failure.
func (uc *DispatchUC) notifyDrivers(ctx context.Context, payload *models.BookingPayload, vehicleClass string, pickup models.Coordinate) {
	candidates, err := uc.repo.FindAvailableDrivers(ctx, vehicleClass)
	if err != nil {
		logger.WarnCtx(ctx, "Driver pool lookup failed, falling back to global broadcast",
			logger.String("booking_id", payload.ID),
			logger.Err(err))

		uc.notifier.BroadcastAll(constants.EventBookingNew, payload)
		uc.publishBookingCreated(ctx, &models.BookingBroadcast{
			BookingPayload: *payload,
			TargetedCount:  0,
			Fallback:       true,
		})
		return
	}

	matched := FilterNearbyDrivers(candidates, pickup, vehicleClass, uc.cfg.Dispatch.BroadcastRadiusKm)
	for _, driver := range matched {
		uc.notifier.SendToDriver(driver.DriverID, constants.EventBookingNew, payload)
	}

	broadcast := &models.BookingBroadcast{
		BookingPayload: *payload,
		TargetedCount:  len(matched),
	}
	uc.notifier.BroadcastAll(constants.EventBookingNewBroadcast, broadcast)
	uc.publishBookingCreated(ctx, broadcast)

	logger.InfoCtx(ctx, "Booking dispatched",
		logger.String("booking_id", payload.ID),
		logger.String("vehicle_class", vehicleClass),
		logger.Int("targeted_count", len(matched)))
}

// publishBookingCreated emits the monitoring event on the bus. Best effort:
// a bus failure never affects the booking outcome.
func (uc *DispatchUC) publishBookingCreated(ctx context.Context, event *models.BookingBroadcast) {
	if err := uc.gw.PublishBookingCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking created event",
			logger.String("booking_id", event.ID),
			logger.Err(err))
	}
}

func buildBookingPayload(booking *models.Booking, identity *models.Identity) *models.BookingPayload {
	return &models.BookingPayload{
		ID:          booking.ID.String(),
		PassengerID: booking.PassengerID,
		Passenger: models.PassengerInfo{
			ID:    identity.ID,
			Name:  identity.Name,
			Phone: identity.Phone,
			Email: identity.Email,
		},
		VehicleType:   booking.VehicleClass,
		Pickup:        booking.Pickup,
		Dropoff:       booking.Dropoff,
		DistanceKm:    booking.DistanceKm,
		FareEstimated: booking.FareEstimated,
		FareBreakdown: booking.FareBreakdown,
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
	}
}
