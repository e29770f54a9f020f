package dispatch

import "errors"

// Terminal booking failures surfaced to the requester. Pricing lookup and
// match lookup failures are intentionally absent: both are recovered inside
// the orchestrator (default rule, global fallback broadcast) and never
// surface as errors.
var (
	// ErrUnauthorized means the request identity is missing, invalid, or
	// not a passenger.
	ErrUnauthorized = errors.New("passenger identity required")

	// ErrInvalidRequest means pickup or dropoff coordinates are missing
	// or out of range.
	ErrInvalidRequest = errors.New("pickup and dropoff with valid coordinates are required")

	// ErrPersistence means the booking record could not be stored.
	ErrPersistence = errors.New("failed to persist booking")
)
