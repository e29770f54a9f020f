package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/ridewave/dispatch/internal/pkg/models"
)

// geohashPrecision gives cells of roughly 5km, matching the dispatch radius
// scale used for the driver position cache.
const geohashPrecision = 5

// CalculateDistance returns the great-circle distance between two points in
// kilometers using the Haversine formula.
func CalculateDistance(a, b models.Coordinate) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// EncodeLocation converts a coordinate to its geohash cell.
func EncodeLocation(c models.Coordinate) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, geohashPrecision)
}
