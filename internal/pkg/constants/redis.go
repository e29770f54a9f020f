package constants

// Redis keys for the driver position cache
const (
	// KeyDriverGeo is the GEO set holding last known driver positions,
	// keyed by driver id.
	KeyDriverGeo = "dispatch:drivers:geo"

	// KeyDriverPositionPrefix prefixes the per-driver hash storing the
	// geohash cell and report timestamp of the last position.
	KeyDriverPositionPrefix = "dispatch:drivers:position:"
)
