package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// PublishBookingCreated emits the aggregate booking event for dashboards and
// other consumers. Publishes are retried with backoff, the bus drops nothing
// silently on transient hiccups.
func (g *DispatchGW) PublishBookingCreated(ctx context.Context, event *models.BookingBroadcast) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.nats.Publish(constants.SubjectBookingCreated, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	logger.InfoCtx(ctx, "Published booking created event",
		logger.String("booking_id", event.ID),
		logger.Int("targeted_count", event.TargetedCount))
	return nil
}

// PublishPricingUpdated emits a pricing rule change so peer dispatch
// instances can relay it to their connected clients.
func (g *DispatchGW) PublishPricingUpdated(ctx context.Context, rule *models.PricingRule) error {
	data, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("failed to marshal pricing rule: %w", err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.nats.Publish(constants.SubjectPricingUpdated, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish pricing update: %w", err)
	}

	logger.InfoCtx(ctx, "Published pricing update event",
		logger.String("vehicle_class", rule.VehicleClass))
	return nil
}
