package dispatch

import (
	"context"

	"github.com/ridewave/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridewave/dispatch/services/dispatch DispatchRepo

// DispatchRepo represents the dispatch persistence interface
type DispatchRepo interface {
	// CreateBooking persists an accepted booking record.
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// FindActivePricingRule returns the active rule with the most recent
	// update for a vehicle class, or nil when none exists.
	FindActivePricingRule(ctx context.Context, vehicleClass string) (*models.PricingRule, error)

	// UpsertPricingRule creates or replaces the rule for a vehicle class.
	UpsertPricingRule(ctx context.Context, rule *models.PricingRule) error

	// FindAvailableDrivers returns the candidate pool for a vehicle class
	// with last known positions attached where present.
	FindAvailableDrivers(ctx context.Context, vehicleClass string) ([]*models.DriverCandidate, error)

	// UpdateDriverPosition refreshes a driver's last known position cache.
	UpdateDriverPosition(ctx context.Context, driverID string, position models.Coordinate) error
}
