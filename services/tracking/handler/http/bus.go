package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/tracking"
)

// BusHandler exposes the collaborator-facing bus reads.
type BusHandler struct {
	locationUC tracking.LocationUseCase
}

// NewBusHandler creates a new bus HTTP handler
func NewBusHandler(locationUC tracking.LocationUseCase) *BusHandler {
	return &BusHandler{locationUC: locationUC}
}

// GetMyBus returns the authenticated driver's bus.
func (h *BusHandler) GetMyBus(c echo.Context) error {
	driverID := fmt.Sprintf("%v", c.Get("user_id"))

	bus, err := h.locationUC.GetBusByDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, tracking.ErrBusNotFound) {
			return utils.NotFoundResponse(c, "No bus registered for this driver")
		}
		logger.Error("Failed to get driver bus",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, 200, "Bus retrieved successfully", bus)
}

// GetRouteBuses returns the buses registered on a route.
func (h *BusHandler) GetRouteBuses(c echo.Context) error {
	routeID := c.Param("routeId")
	if routeID == "" {
		return utils.BadRequestResponse(c, "Route ID is required")
	}

	buses, err := h.locationUC.GetBusesByRoute(c.Request().Context(), routeID)
	if err != nil {
		logger.Error("Failed to list route buses",
			logger.String("route_id", routeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, 200, "Buses retrieved successfully", buses)
}

// GetNearbyBuses serves collaborator services looking for buses close to a
// pickup point. Guarded by the service API key, not a user token.
func (h *BusHandler) GetNearbyBuses(c echo.Context) error {
	routeID := c.QueryParam("routeId")
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	busIDs, err := h.locationUC.NearbyBuses(c.Request().Context(), routeID, lat, lng)
	if err != nil {
		if errors.Is(err, tracking.ErrRouteRequired) || errors.Is(err, tracking.ErrInvalidLocation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to find nearby buses",
			logger.String("route_id", routeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, 200, "Nearby buses retrieved successfully", busIDs)
}

// ListRoutes returns all routes that have registered buses.
func (h *BusHandler) ListRoutes(c echo.Context) error {
	routes, err := h.locationUC.ListRoutes(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list routes", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, 200, "Routes retrieved successfully", routes)
}
