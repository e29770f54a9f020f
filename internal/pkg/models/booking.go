package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingStatusRequested = "requested"
)

// BookingRequest is a validated booking request ready for dispatch.
type BookingRequest struct {
	Pickup       Coordinate `json:"pickup"`
	Dropoff      Coordinate `json:"dropoff"`
	VehicleClass string     `json:"vehicle_class"`
}

// Booking is the persisted booking record created for an accepted request.
type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	PassengerID   string        `json:"passenger_id" db:"passenger_id"`
	PassengerName string        `json:"passenger_name" db:"passenger_name"`
	VehicleClass  string        `json:"vehicle_class" db:"vehicle_class"`
	Pickup        Coordinate    `json:"pickup"`
	Dropoff       Coordinate    `json:"dropoff"`
	DistanceKm    float64       `json:"distance_km" db:"distance_km"`
	FareEstimated float64       `json:"fare_estimated" db:"fare_estimated"`
	FareBreakdown FareBreakdown `json:"fare_breakdown"`
	Status        string        `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// PassengerInfo is the public subset of a passenger identity carried on
// outbound booking events.
type PassengerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// BookingPayload is the wire representation of a booking sent to matched
// drivers, dashboards and the requester.
type BookingPayload struct {
	ID            string        `json:"id"`
	PassengerID   string        `json:"passengerId"`
	Passenger     PassengerInfo `json:"passenger"`
	VehicleType   string        `json:"vehicleType"`
	Pickup        Coordinate    `json:"pickup"`
	Dropoff       Coordinate    `json:"dropoff"`
	DistanceKm    float64       `json:"distanceKm"`
	FareEstimated float64       `json:"fareEstimated"`
	FareBreakdown FareBreakdown `json:"fareBreakdown"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// BookingBroadcast is the aggregate dashboard event: the booking payload
// plus how many drivers were targeted. Fallback marks deliveries that went
// out as a global broadcast because matching could not be completed.
type BookingBroadcast struct {
	BookingPayload
	TargetedCount int  `json:"targetedCount"`
	Fallback      bool `json:"fallback,omitempty"`
}
