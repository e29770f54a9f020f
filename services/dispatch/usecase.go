package dispatch

import (
	"context"
	"encoding/json"

	"github.com/ridewave/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridewave/dispatch/services/dispatch DispatchUC

// DispatchUC represents the dispatch usecase interface
type DispatchUC interface {
	// CreateBooking runs the full request->match->notify flow for one
	// booking request and returns the payload to acknowledge with.
	CreateBooking(ctx context.Context, identity *models.Identity, req *models.BookingRequest) (*models.BookingPayload, error)

	// Relay passthroughs
	RelayDriverPosition(ctx context.Context, payload json.RawMessage)
	RelayPricingUpdate(ctx context.Context, payload json.RawMessage)

	// Pricing administration
	UpsertPricingRule(ctx context.Context, rule *models.PricingRule) error
	GetActivePricingRule(ctx context.Context, vehicleClass string) (*models.PricingRule, error)
}
