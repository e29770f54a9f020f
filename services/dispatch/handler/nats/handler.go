package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/ridewave/dispatch/internal/pkg/constants"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	natspkg "github.com/ridewave/dispatch/internal/pkg/nats"
	"github.com/ridewave/dispatch/services/dispatch"
)

// NatsHandler relays bus events from peer dispatch instances to locally
// connected clients.
type NatsHandler struct {
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(
	dispatchUC dispatch.DispatchUC,
	natsClient *natspkg.Client,
) *NatsHandler {
	return &NatsHandler{
		dispatchUC: dispatchUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the bus subjects this instance relays.
func (h *NatsHandler) InitConsumers() error {
	pricingSub, err := h.natsClient.Subscribe(constants.SubjectPricingUpdated, func(msg *nats.Msg) {
		logger.InfoCtx(context.Background(), "Received pricing update event",
			logger.String("data", string(msg.Data)))
		h.dispatchUC.RelayPricingUpdate(context.Background(), msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to pricing update events: %w", err)
	}
	h.subs = append(h.subs, pricingSub)

	return nil
}

// Close drains all subscriptions.
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}
