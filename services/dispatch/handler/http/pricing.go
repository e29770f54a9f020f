package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridewave/dispatch/internal/pkg/logger"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"github.com/ridewave/dispatch/internal/utils"
	"github.com/ridewave/dispatch/services/dispatch"
)

// PricingHandler handles HTTP requests for pricing administration
type PricingHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(
	dispatchUC dispatch.DispatchUC,
) *PricingHandler {
	return &PricingHandler{
		dispatchUC: dispatchUC,
	}
}

// UpsertPricingRule handles tariff create/update requests
func (h *PricingHandler) UpsertPricingRule(c echo.Context) error {
	var rule models.PricingRule
	if err := c.Bind(&rule); err != nil {
		logger.Warn("Invalid request payload for pricing rule",
			logger.Err(err),
			logger.String("endpoint", "UpsertPricingRule"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if rule.VehicleClass == "" {
		return utils.BadRequestResponse(c, "vehicle_class is required")
	}

	err := h.dispatchUC.UpsertPricingRule(c.Request().Context(), &rule)
	if err != nil {
		logger.Error("Failed to upsert pricing rule",
			logger.Err(err),
			logger.String("vehicle_class", rule.VehicleClass),
		)
		return utils.InternalServerErrorResponse(c, "Failed to store pricing rule")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pricing rule stored successfully", rule)
}

// GetPricingRule handles tariff retrieval requests
func (h *PricingHandler) GetPricingRule(c echo.Context) error {
	vehicleClass := c.Param("vehicle_class")
	if vehicleClass == "" {
		return utils.BadRequestResponse(c, "Invalid vehicle class")
	}

	rule, err := h.dispatchUC.GetActivePricingRule(c.Request().Context(), vehicleClass)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to retrieve pricing rule")
	}
	if rule == nil {
		return utils.NotFoundResponse(c, "No active pricing rule for vehicle class")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pricing rule retrieved successfully", rule)
}
