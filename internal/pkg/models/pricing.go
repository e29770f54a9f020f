package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingRule defines the tariff for one vehicle class. Exactly one rule is
// current per class: the active rule with the most recent update.
type PricingRule struct {
	ID               uuid.UUID `json:"id" db:"id"`
	VehicleClass     string    `json:"vehicle_class" db:"vehicle_class"`
	BaseFare         float64   `json:"base_fare" db:"base_fare"`
	PerKm            float64   `json:"per_km" db:"per_km"`
	PerMinute        float64   `json:"per_minute" db:"per_minute"`
	PerWaitingMinute float64   `json:"per_waiting_minute" db:"per_waiting_minute"`
	SurgeMultiplier  float64   `json:"surge_multiplier" db:"surge_multiplier"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// FareBreakdown is the itemized fare estimate for a booking. Time and
// waiting costs are always zero at estimation time: no trip has started yet.
type FareBreakdown struct {
	Base            float64 `json:"base"`
	DistanceCost    float64 `json:"distanceCost"`
	TimeCost        float64 `json:"timeCost"`
	WaitingCost     float64 `json:"waitingCost"`
	SurgeMultiplier float64 `json:"surgeMultiplier"`
}

// Total returns the surge-adjusted sum of all fare components.
func (f FareBreakdown) Total() float64 {
	return (f.Base + f.DistanceCost + f.TimeCost + f.WaitingCost) * f.SurgeMultiplier
}
