package usecase

import (
	"testing"

	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id, class string, available bool, position *models.Coordinate) *models.DriverCandidate {
	return &models.DriverCandidate{
		DriverID:     id,
		VehicleClass: class,
		Available:    available,
		Position:     position,
	}
}

func TestFilterNearbyDrivers_RadiusScenario(t *testing.T) {
	reference := models.Coordinate{Latitude: 0, Longitude: 0}
	near := candidate("d-near", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.027}) // ~3 km
	far := candidate("d-far", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.072})   // ~8 km

	matched := FilterNearbyDrivers([]*models.DriverCandidate{near, far}, reference, "mini", 5)

	require.Len(t, matched, 1)
	assert.Equal(t, "d-near", matched[0].DriverID)
}

func TestFilterNearbyDrivers_ExcludesUnavailable(t *testing.T) {
	reference := models.Coordinate{Latitude: 0, Longitude: 0}
	pos := &models.Coordinate{Latitude: 0, Longitude: 0.01}

	matched := FilterNearbyDrivers([]*models.DriverCandidate{
		candidate("d1", "mini", false, pos),
	}, reference, "mini", 5)

	assert.Empty(t, matched)
}

func TestFilterNearbyDrivers_ExcludesWrongClass(t *testing.T) {
	reference := models.Coordinate{Latitude: 0, Longitude: 0}
	pos := &models.Coordinate{Latitude: 0, Longitude: 0.01}

	matched := FilterNearbyDrivers([]*models.DriverCandidate{
		candidate("d1", "sedan", true, pos),
	}, reference, "mini", 5)

	assert.Empty(t, matched)
}

func TestFilterNearbyDrivers_ExcludesUnknownPosition(t *testing.T) {
	reference := models.Coordinate{Latitude: 0, Longitude: 0}

	// A driver with no reported position must never match, even though the
	// reference itself would be "zero distance" from a zero value.
	matched := FilterNearbyDrivers([]*models.DriverCandidate{
		candidate("d1", "mini", true, nil),
	}, reference, "mini", 5)

	assert.Empty(t, matched)
}

func TestFilterNearbyDrivers_MonotonicInRadius(t *testing.T) {
	reference := models.Coordinate{Latitude: 0, Longitude: 0}
	pool := []*models.DriverCandidate{
		candidate("d1", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.01}),
		candidate("d2", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.03}),
		candidate("d3", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.06}),
		candidate("d4", "mini", true, &models.Coordinate{Latitude: 0.05, Longitude: 0.05}),
	}

	previous := map[string]bool{}
	for _, radius := range []float64{1, 3, 5, 8, 12} {
		matched := FilterNearbyDrivers(pool, reference, "mini", radius)

		current := map[string]bool{}
		for _, d := range matched {
			current[d.DriverID] = true
		}
		for id := range previous {
			assert.True(t, current[id], "radius increase removed driver %s", id)
		}
		previous = current
	}
}

func TestFilterNearbyDrivers_Deterministic(t *testing.T) {
	reference := models.Coordinate{Latitude: 0, Longitude: 0}
	pool := []*models.DriverCandidate{
		candidate("d1", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.01}),
		candidate("d2", "mini", true, &models.Coordinate{Latitude: 0, Longitude: 0.02}),
	}

	first := FilterNearbyDrivers(pool, reference, "mini", 5)
	second := FilterNearbyDrivers(pool, reference, "mini", 5)
	assert.Equal(t, first, second)
}

func TestFilterNearbyDrivers_EmptyPool(t *testing.T) {
	matched := FilterNearbyDrivers(nil, models.Coordinate{Latitude: 0, Longitude: 0}, "mini", 5)
	assert.Empty(t, matched)
}
