package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/internal/utils"
)

// FindAvailableDrivers loads the available driver pool for a vehicle class
// and merges in last known positions from the Redis GEO set. Drivers without
// a cached position come back with a nil Position.
func (r *DispatchRepo) FindAvailableDrivers(ctx context.Context, vehicleClass string) ([]*models.DriverCandidate, error) {
	query := `
		SELECT id, vehicle_class, is_available
		FROM drivers
		WHERE vehicle_class = $1 AND is_available = true
	`

	rows, err := r.db.QueryContext(ctx, query, vehicleClass)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver pool: %w", err)
	}
	defer rows.Close()

	var candidates []*models.DriverCandidate
	for rows.Next() {
		var candidate models.DriverCandidate
		if err := rows.Scan(&candidate.DriverID, &candidate.VehicleClass, &candidate.Available); err != nil {
			return nil, fmt.Errorf("failed to scan driver row: %w", err)
		}
		candidates = append(candidates, &candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate driver pool: %w", err)
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	members := make([]string, len(candidates))
	for i, candidate := range candidates {
		members[i] = candidate.DriverID
	}

	positions, err := r.redis.GeoPos(ctx, constants.KeyDriverGeo, members...)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver positions: %w", err)
	}

	for i, pos := range positions {
		if pos == nil {
			continue
		}
		candidates[i].Position = &models.Coordinate{
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}
	}

	return candidates, nil
}

// UpdateDriverPosition refreshes the GEO set entry and the per-driver
// position hash used by downstream consumers.
func (r *DispatchRepo) UpdateDriverPosition(ctx context.Context, driverID string, position models.Coordinate) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, position.Longitude, position.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to update driver geo set: %w", err)
	}

	key := constants.KeyDriverPositionPrefix + driverID
	fields := map[string]interface{}{
		"latitude":   position.Latitude,
		"longitude":  position.Longitude,
		"geohash":    utils.EncodeLocation(position),
		"updated_at": time.Now().Unix(),
	}
	if err := r.redis.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to update driver position hash: %w", err)
	}

	return nil
}
