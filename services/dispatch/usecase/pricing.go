package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// UpsertPricingRule stores a pricing rule, notifies connected clients and
// publishes the change on the bus for other instances.
func (uc *DispatchUC) UpsertPricingRule(ctx context.Context, rule *models.PricingRule) error {
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	if rule.SurgeMultiplier == 0 {
		rule.SurgeMultiplier = 1
	}
	now := time.Now()
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now

	if err := uc.repo.UpsertPricingRule(ctx, rule); err != nil {
		return err
	}

	uc.notifier.BroadcastAll(constants.EventPricingUpdate, rule)

	if err := uc.gw.PublishPricingUpdated(ctx, rule); err != nil {
		logger.WarnCtx(ctx, "Failed to publish pricing update",
			logger.String("vehicle_class", rule.VehicleClass),
			logger.Err(err))
	}

	return nil
}

// GetActivePricingRule returns the current rule for a vehicle class, or nil
// when no active rule exists.
func (uc *DispatchUC) GetActivePricingRule(ctx context.Context, vehicleClass string) (*models.PricingRule, error) {
	return uc.repo.FindActivePricingRule(ctx, vehicleClass)
}
