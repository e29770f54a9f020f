package repository

import (
	"context"
	"fmt"

	"github.com/ridewave/dispatch/internal/pkg/models"
)

// CreateBooking persists a requested booking with its fare snapshot.
func (r *DispatchRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, passenger_id, passenger_name, vehicle_class,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			distance_km, fare_estimated, fare_base, fare_distance_cost,
			fare_time_cost, fare_waiting_cost, fare_surge_multiplier,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.PassengerID,
		booking.PassengerName,
		booking.VehicleClass,
		booking.Pickup.Latitude,
		booking.Pickup.Longitude,
		booking.Dropoff.Latitude,
		booking.Dropoff.Longitude,
		booking.DistanceKm,
		booking.FareEstimated,
		booking.FareBreakdown.Base,
		booking.FareBreakdown.DistanceCost,
		booking.FareBreakdown.TimeCost,
		booking.FareBreakdown.WaitingCost,
		booking.FareBreakdown.SurgeMultiplier,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}
