package usecase

import (
	"context"

	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/internal/utils"
)

// defaultPricingRule is the documented fallback tariff, applied when a class
// has no active rule or the rule lookup fails. Substitution is logged, never
// silent.
var defaultPricingRule = models.PricingRule{
	BaseFare:         2,
	PerKm:            1,
	PerMinute:        0,
	PerWaitingMinute: 0,
	SurgeMultiplier:  1,
}

// EstimateFare computes the fare breakdown for a trip between two points.
// Time and waiting costs are zero by construction: nothing has been driven
// or waited yet at estimation time. The estimate never fails; pricing lookup
// faults degrade to the default rule.
func (uc *DispatchUC) EstimateFare(ctx context.Context, pickup, dropoff models.Coordinate, vehicleClass string) (models.FareBreakdown, float64) {
	distanceKm := utils.CalculateDistance(pickup, dropoff)

	rule, err := uc.repo.FindActivePricingRule(ctx, vehicleClass)
	if err != nil {
		logger.WarnCtx(ctx, "Pricing rule lookup failed, using default rule",
			logger.String("vehicle_class", vehicleClass),
			logger.Err(err))
		rule = nil
	}
	if rule == nil {
		r := defaultPricingRule
		r.VehicleClass = vehicleClass
		rule = &r
	}

	return models.FareBreakdown{
		Base:            rule.BaseFare,
		DistanceCost:    distanceKm * rule.PerKm,
		TimeCost:        0,
		WaitingCost:     0,
		SurgeMultiplier: rule.SurgeMultiplier,
	}, distanceKm
}
