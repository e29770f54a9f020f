package models

import "time"

// DriverCandidate is one entry of the driver pool considered for matching.
// Position is nil when the driver has never reported a location; such
// candidates are excluded from matching, never treated as zero-distance.
type DriverCandidate struct {
	DriverID     string      `json:"driver_id" db:"id"`
	VehicleClass string      `json:"vehicle_class" db:"vehicle_class"`
	Available    bool        `json:"available" db:"is_available"`
	Position     *Coordinate `json:"position,omitempty"`
}

// DriverPositionUpdate is the parseable subset of a driver:position relay
// payload, used to refresh the position cache.
type DriverPositionUpdate struct {
	DriverID  string    `json:"driverId"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
