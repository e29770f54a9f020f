package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ridewave/dispatch/internal/pkg/models"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:            uuid.New(),
		PassengerID:   "passenger-1",
		PassengerName: "Jane Doe",
		VehicleClass:  "mini",
		Pickup:        models.Coordinate{Latitude: -6.2, Longitude: 106.8},
		Dropoff:       models.Coordinate{Latitude: -6.25, Longitude: 106.85},
		DistanceKm:    7.8,
		FareEstimated: 9.8,
		FareBreakdown: models.FareBreakdown{
			Base:            2,
			DistanceCost:    7.8,
			SurgeMultiplier: 1,
		},
		Status:    models.BookingStatusRequested,
		CreatedAt: time.Now(),
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		booking := sampleBooking()
		mock.ExpectExec("^INSERT INTO bookings").
			WithArgs(
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
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CreateBooking(context.Background(), booking)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^INSERT INTO bookings").
			WillReturnError(errors.New("disk full"))

		err := repo.CreateBooking(context.Background(), sampleBooking())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert booking")
	})
}

func TestFindAvailableDrivers_EmptyPool(t *testing.T) {
	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM drivers").
		WithArgs("mini").
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_class", "is_available"}))

	candidates, err := repo.FindAvailableDrivers(context.Background(), "mini")
	assert.NoError(t, err)
	assert.Empty(t, candidates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableDrivers_QueryError(t *testing.T) {
	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM drivers").
		WithArgs("mini").
		WillReturnError(errors.New("connection reset"))

	candidates, err := repo.FindAvailableDrivers(context.Background(), "mini")
	assert.Error(t, err)
	assert.Nil(t, candidates)
	assert.Contains(t, err.Error(), "failed to query driver pool")
}
