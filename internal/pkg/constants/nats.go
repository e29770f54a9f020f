package constants

// NATS subjects published and consumed by the dispatch service
const (
	SubjectBookingCreated = "dispatch.booking.created"
	SubjectPricingUpdated = "dispatch.pricing.updated"
)
