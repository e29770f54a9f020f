package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"

	// Booking events
	EventBookingRequest      = "booking_request"
	EventBookingCreated      = "booking_created"
	EventBookingError        = "booking_error"
	EventBookingNew          = "booking:new"
	EventBookingNewBroadcast = "booking:new:broadcast"

	// Relay events
	EventDriverPosition = "driver:position"
	EventPricingUpdate  = "pricing:update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat  = "invalid_format"
	ErrorInvalidRequest = "invalid_request"
	ErrorUnauthorized   = "unauthorized"
	ErrorBookingFailed  = "booking_failed"
	ErrorInternalError  = "internal_error"
)
