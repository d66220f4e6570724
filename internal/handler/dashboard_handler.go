package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"closet/internal/service"
)

// DashboardHandler handles the stylist dashboard endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard godoc
// @Summary Get the stylist's assigned users sorted by priority
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.DashboardEntry
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	caller, err := currentIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.dashboardService.Dashboard(c.Request().Context(), caller)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
