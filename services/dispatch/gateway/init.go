package gateway

import (
	"github.com/ridewave/dispatch/internal/pkg/models"
	natspkg "github.com/ridewave/dispatch/internal/pkg/nats"
	"github.com/ridewave/dispatch/internal/pkg/retry"
)

// DispatchGW publishes dispatch events on the NATS message bus.
type DispatchGW struct {
	cfg     *models.Config
	nats    *natspkg.Client
	retrier *retry.Retrier
}

// NewDispatchGW creates a new dispatch gateway instance
func NewDispatchGW(cfg *models.Config, natsClient *natspkg.Client) *DispatchGW {
	return &DispatchGW{
		cfg:     cfg,
		nats:    natsClient,
		retrier: retry.NewWithDefaults(),
	}
}
