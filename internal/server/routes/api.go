package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uxdsrini/quick-admin/internal/db"
)

// APIRoutes registers health and debug endpoints.
type APIRoutes struct {
	database *db.Database
}

// NewAPIRoutes wires health/debug endpoints.
func NewAPIRoutes(database *db.Database) *APIRoutes {
	return &APIRoutes{database: database}
}

// RegisterRoutes registers health and debug endpoints.
func (a *APIRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/healthz", a.handleHealth)
	s.GET("/api/debug/db-latency", a.handleDBLatency)
}

func (a *APIRoutes) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *APIRoutes) handleDBLatency(c echo.Context) error {
	return c.JSON(http.StatusOK, a.database.QueryLatencyStatsSnapshot())
}
