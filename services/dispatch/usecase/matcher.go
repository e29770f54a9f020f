package usecase

import (
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/internal/utils"
)

// FilterNearbyDrivers reduces a candidate pool to drivers that are
// available, serve the requested vehicle class, have a known position, and
// are within radiusKm of the reference point. Candidates without a position
// are excluded, never treated as zero-distance. Result order follows input
// order; callers must not depend on it.
func FilterNearbyDrivers(candidates []*models.DriverCandidate, reference models.Coordinate, vehicleClass string, radiusKm float64) []*models.DriverCandidate {
	matched := make([]*models.DriverCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Available || candidate.VehicleClass != vehicleClass || candidate.Position == nil {
			continue
		}
		if utils.CalculateDistance(*candidate.Position, reference) <= radiusKm {
			matched = append(matched, candidate)
		}
	}
	return matched
}
