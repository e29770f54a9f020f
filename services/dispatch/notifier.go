package dispatch

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/ridewave/dispatch/services/dispatch Notifier

// Notifier is the outbound event surface of the session registry, injected
// into the usecase so dispatch control flow can emit without owning
// connections.
type Notifier interface {
	// SendToDriver fans an event out to every live connection of one
	// driver; no-op when the driver is offline.
	SendToDriver(driverID string, event string, data interface{})

	// BroadcastAll delivers an event to every live connection.
	BroadcastAll(event string, data interface{})
}
