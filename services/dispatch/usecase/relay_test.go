package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestRelayDriverPosition_BroadcastsVerbatim(t *testing.T) {
	uc, repo, _, notifier := newTestUC(t)

	payload := json.RawMessage(`{"driverId":"d1","latitude":-6.2,"longitude":106.8}`)

	notifier.EXPECT().BroadcastAll(constants.EventDriverPosition, payload)
	repo.EXPECT().UpdateDriverPosition(gomock.Any(), "d1", models.Coordinate{Latitude: -6.2, Longitude: 106.8}).Return(nil)

	uc.RelayDriverPosition(context.Background(), payload)
}

func TestRelayDriverPosition_UnparseablePayloadStillRelayed(t *testing.T) {
	uc, _, _, notifier := newTestUC(t)

	payload := json.RawMessage(`"free-form position ping"`)
	notifier.EXPECT().BroadcastAll(constants.EventDriverPosition, payload)

	// No repository expectation: a payload without coordinates is relayed
	// without touching the cache.
	uc.RelayDriverPosition(context.Background(), payload)
}

func TestRelayDriverPosition_MissingCoordinateSkipsCache(t *testing.T) {
	uc, _, _, notifier := newTestUC(t)

	payload := json.RawMessage(`{"driverId":"d1","latitude":-6.2}`)
	notifier.EXPECT().BroadcastAll(constants.EventDriverPosition, payload)

	uc.RelayDriverPosition(context.Background(), payload)
}

func TestRelayDriverPosition_CacheFailureDoesNotBlock(t *testing.T) {
	uc, repo, _, notifier := newTestUC(t)

	payload := json.RawMessage(`{"driverId":"d1","latitude":-6.2,"longitude":106.8}`)
	notifier.EXPECT().BroadcastAll(constants.EventDriverPosition, payload)
	repo.EXPECT().UpdateDriverPosition(gomock.Any(), "d1", gomock.Any()).Return(errors.New("redis down"))

	assert.NotPanics(t, func() {
		uc.RelayDriverPosition(context.Background(), payload)
	})
}

func TestRelayPricingUpdate_BroadcastsVerbatim(t *testing.T) {
	uc, _, _, notifier := newTestUC(t)

	payload := json.RawMessage(`{"vehicle_class":"mini","surge_multiplier":2}`)
	notifier.EXPECT().BroadcastAll(constants.EventPricingUpdate, payload)

	uc.RelayPricingUpdate(context.Background(), payload)
}
