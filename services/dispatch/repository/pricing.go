package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ridewave/dispatch/internal/pkg/models"
)

// FindActivePricingRule returns the current rule for a vehicle class: the
// active rule with the most recent update. A missing rule is not an error,
// the caller falls back to the default tariff.
func (r *DispatchRepo) FindActivePricingRule(ctx context.Context, vehicleClass string) (*models.PricingRule, error) {
	query := `
		SELECT id, vehicle_class, base_fare, per_km, per_minute,
			per_waiting_minute, surge_multiplier, is_active, created_at, updated_at
		FROM pricing_rules
		WHERE vehicle_class = $1 AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var rule models.PricingRule
	err := r.db.QueryRowContext(ctx, query, vehicleClass).Scan(
		&rule.ID,
		&rule.VehicleClass,
		&rule.BaseFare,
		&rule.PerKm,
		&rule.PerMinute,
		&rule.PerWaitingMinute,
		&rule.SurgeMultiplier,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pricing rule: %w", err)
	}

	return &rule, nil
}

// UpsertPricingRule inserts or replaces the tariff for a vehicle class.
func (r *DispatchRepo) UpsertPricingRule(ctx context.Context, rule *models.PricingRule) error {
	query := `
		INSERT INTO pricing_rules (id, vehicle_class, base_fare, per_km, per_minute,
			per_waiting_minute, surge_multiplier, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (vehicle_class) DO UPDATE SET
			base_fare = EXCLUDED.base_fare,
			per_km = EXCLUDED.per_km,
			per_minute = EXCLUDED.per_minute,
			per_waiting_minute = EXCLUDED.per_waiting_minute,
			surge_multiplier = EXCLUDED.surge_multiplier,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		rule.ID,
		rule.VehicleClass,
		rule.BaseFare,
		rule.PerKm,
		rule.PerMinute,
		rule.PerWaitingMinute,
		rule.SurgeMultiplier,
		rule.IsActive,
		rule.CreatedAt,
		rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert pricing rule: %w", err)
	}

	return nil
}
