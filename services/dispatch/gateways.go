package dispatch

import (
	"context"

	"github.com/ridewave/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridewave/dispatch/services/dispatch DispatchGW

// DispatchGW defines the dispatch gateway interface for the message bus
type DispatchGW interface {
	// PublishBookingCreated emits the dashboard/monitoring event for an
	// accepted booking.
	PublishBookingCreated(ctx context.Context, event *models.BookingBroadcast) error

	// PublishPricingUpdated emits a pricing rule change for other
	// dispatch instances to relay.
	PublishPricingUpdated(ctx context.Context, rule *models.PricingRule) error
}
