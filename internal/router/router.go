// Package router defines how the HTTP routes of the catalog API are
// registered.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/joyal-jij0/shl/internal/handler"
)

// RegisterRoutes mounts the public catalog API under /api/v1. Every
// route is an unauthenticated GET; the service exposes no write
// surface at all.
//
// The response cache applies to the product routes only. The health
// route must run its store probe on every request; a cached "ok"
// would keep reporting a store that has since died.
func RegisterRoutes(e *echo.Echo, catalog *handler.CatalogHandler, health *handler.HealthHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/v1")

	// Liveness probe for load balancers and the deployment's
	// orchestrator. Never cached.
	g.GET("/health", health.Check)

	// Paginated, filterable product listing and single-product lookup.
	g.GET("/products", catalog.ListProducts, cache)
	g.GET("/products/:id", catalog.GetProduct, cache)
}
