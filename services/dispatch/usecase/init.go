package usecase

import (
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch usecase
type DispatchUC struct {
	cfg      *models.Config
	repo     dispatch.DispatchRepo
	gw       dispatch.DispatchGW
	notifier dispatch.Notifier
}

// NewDispatchUC creates a new dispatch usecase instance
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.DispatchRepo,
	gw dispatch.DispatchGW,
	notifier dispatch.Notifier,
) *DispatchUC {
	return &DispatchUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		notifier: notifier,
	}
}
