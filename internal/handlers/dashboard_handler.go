package handlers

import (
	"net/http"

	"fintech-dashboard/internal/dto"
	"fintech-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the composed dashboard view-model.
type DashboardHandler struct {
	controller services.DashboardControllerInterface
}

func NewDashboardHandler(controller services.DashboardControllerInterface) *DashboardHandler {
	return &DashboardHandler{controller: controller}
}

// GetDashboard returns the current snapshot of the dashboard view-model:
// the resolved user id, the aggregated stats, and both sections with their
// loading flags.
//
// Method: GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	snapshot := h.controller.Snapshot()
	return c.JSON(http.StatusOK, dto.NewDashboardResponse(snapshot))
}

// Refresh re-runs the dependent fetches for the resolved user and returns
// the resulting snapshot. This is the manual refresh trigger; there is no
// automatic retry anywhere else.
//
// Method: POST /api/refresh
func (h *DashboardHandler) Refresh(c echo.Context) error {
	h.controller.Refresh()

	snapshot := h.controller.Snapshot()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewDashboardResponse(snapshot),
		Message: "dashboard refreshed",
	})
}
