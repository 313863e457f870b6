package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fintech-dashboard/internal/api"
	"fintech-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	client *api.Client
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(client *api.Client) *HealthCheckHandler {
	return &HealthCheckHandler{client: client}
}

// HealthCheck reports service health, including upstream API reachability.
// The dashboard is useless without its upstream, so an unreachable backend
// is reported as 503.
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	var raw json.RawMessage
	if err := h.client.Get(ctx, "/users", nil, &raw); err != nil {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Upstream banking API unreachable"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
