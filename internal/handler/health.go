package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is the trivial-read probe the health check runs against the
// catalog store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the catalog store is reachable. The
// deployment's orchestrator polls this route on a fixed interval and
// restarts the container after repeated failures.
type HealthHandler struct {
	Store Pinger
}

// Check handles GET /api/v1/health. It answers 200 ok while the store
// responds to a trivial read and 503 degraded otherwise. The probe
// gets its own short deadline so a wedged store cannot hold the health
// route open past the orchestrator's timeout.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
