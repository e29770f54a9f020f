package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertPricingRule_FillsDefaultsAndNotifies(t *testing.T) {
	uc, repo, gw, notifier := newTestUC(t)

	rule := &models.PricingRule{
		VehicleClass: "mini",
		BaseFare:     2.5,
		PerKm:        1.2,
		IsActive:     true,
	}

	repo.EXPECT().UpsertPricingRule(gomock.Any(), rule).Return(nil)
	notifier.EXPECT().BroadcastAll(constants.EventPricingUpdate, rule)
	gw.EXPECT().PublishPricingUpdated(gomock.Any(), rule).Return(nil)

	err := uc.UpsertPricingRule(context.Background(), rule)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rule.ID)
	assert.Equal(t, 1.0, rule.SurgeMultiplier)
	assert.False(t, rule.UpdatedAt.IsZero())
	assert.False(t, rule.CreatedAt.IsZero())
}

func TestUpsertPricingRule_StoreFailureSkipsNotification(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	rule := &models.PricingRule{VehicleClass: "mini"}
	repo.EXPECT().UpsertPricingRule(gomock.Any(), rule).Return(errors.New("constraint violation"))

	err := uc.UpsertPricingRule(context.Background(), rule)
	assert.Error(t, err)
}

func TestUpsertPricingRule_BusFailureIsNotFatal(t *testing.T) {
	uc, repo, gw, notifier := newTestUC(t)

	rule := &models.PricingRule{VehicleClass: "mini", SurgeMultiplier: 1.3}
	repo.EXPECT().UpsertPricingRule(gomock.Any(), rule).Return(nil)
	notifier.EXPECT().BroadcastAll(constants.EventPricingUpdate, rule)
	gw.EXPECT().PublishPricingUpdated(gomock.Any(), rule).Return(errors.New("nats down"))

	assert.NoError(t, uc.UpsertPricingRule(context.Background(), rule))
	assert.Equal(t, 1.3, rule.SurgeMultiplier)
}

func TestGetActivePricingRule_Passthrough(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	want := &models.PricingRule{VehicleClass: "mini", BaseFare: 2}
	repo.EXPECT().FindActivePricingRule(gomock.Any(), "mini").Return(want, nil)

	got, err := uc.GetActivePricingRule(context.Background(), "mini")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
