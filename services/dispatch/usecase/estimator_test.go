package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEstimateFare_UsesActiveRule(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	repo.EXPECT().FindActivePricingRule(gomock.Any(), "mini").Return(&models.PricingRule{
		VehicleClass:    "mini",
		BaseFare:        2,
		PerKm:           1,
		SurgeMultiplier: 1,
		IsActive:        true,
	}, nil)

	pickup := models.Coordinate{Latitude: 0, Longitude: 0}
	dropoff := models.Coordinate{Latitude: 0, Longitude: 0.045} // ~5 km

	breakdown, distanceKm := uc.EstimateFare(context.Background(), pickup, dropoff, "mini")

	assert.InDelta(t, 5.0, distanceKm, 0.05)
	assert.Equal(t, 2.0, breakdown.Base)
	assert.InDelta(t, 5.0, breakdown.DistanceCost, 0.05)
	assert.Zero(t, breakdown.TimeCost)
	assert.Zero(t, breakdown.WaitingCost)
	assert.InDelta(t, 7.0, breakdown.Total(), 0.1)
}

func TestEstimateFare_NoActiveRuleUsesDefault(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	repo.EXPECT().FindActivePricingRule(gomock.Any(), "luxury").Return(nil, nil)

	pickup := models.Coordinate{Latitude: 0, Longitude: 0}
	dropoff := models.Coordinate{Latitude: 0, Longitude: 0.09} // ~10 km

	breakdown, _ := uc.EstimateFare(context.Background(), pickup, dropoff, "luxury")

	assert.Equal(t, 2.0, breakdown.Base)
	assert.Equal(t, 1.0, breakdown.SurgeMultiplier)
	assert.InDelta(t, 10.0, breakdown.DistanceCost, 0.1)
}

func TestEstimateFare_LookupFailureUsesDefault(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	repo.EXPECT().FindActivePricingRule(gomock.Any(), "mini").Return(nil, errors.New("db unavailable"))

	pickup := models.Coordinate{Latitude: 0, Longitude: 0}
	dropoff := models.Coordinate{Latitude: 0, Longitude: 0.045}

	breakdown, _ := uc.EstimateFare(context.Background(), pickup, dropoff, "mini")

	assert.Equal(t, 2.0, breakdown.Base)
	assert.Equal(t, 1.0, breakdown.SurgeMultiplier)
}

func TestEstimateFare_SurgeApplied(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	repo.EXPECT().FindActivePricingRule(gomock.Any(), "mini").Return(&models.PricingRule{
		VehicleClass:    "mini",
		BaseFare:        3,
		PerKm:           2,
		SurgeMultiplier: 1.5,
		IsActive:        true,
	}, nil)

	pickup := models.Coordinate{Latitude: 0, Longitude: 0}
	dropoff := models.Coordinate{Latitude: 0, Longitude: 0.045}

	breakdown, _ := uc.EstimateFare(context.Background(), pickup, dropoff, "mini")

	assert.InDelta(t, (3+10.0)*1.5, breakdown.Total(), 0.2)
}

func TestEstimateFare_TotalNeverBelowBase(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	repo.EXPECT().FindActivePricingRule(gomock.Any(), "mini").Return(nil, nil).AnyTimes()

	pairs := []struct{ a, b models.Coordinate }{
		{models.Coordinate{Latitude: 0, Longitude: 0}, models.Coordinate{Latitude: 0, Longitude: 0}},
		{models.Coordinate{Latitude: -6.2, Longitude: 106.8}, models.Coordinate{Latitude: -6.3, Longitude: 106.9}},
		{models.Coordinate{Latitude: 89, Longitude: 179}, models.Coordinate{Latitude: -89, Longitude: -179}},
		{models.Coordinate{Latitude: 45, Longitude: 0}, models.Coordinate{Latitude: 45, Longitude: 0.0001}},
	}
	for _, pair := range pairs {
		breakdown, _ := uc.EstimateFare(context.Background(), pair.a, pair.b, "mini")
		assert.GreaterOrEqual(t, breakdown.Total(), breakdown.Base)
	}
}
