// Package handler exposes the HTTP handlers of the catalog API. The
// handlers do protocol adaptation only: parameter extraction, calling
// the catalog service and mapping its errors onto HTTP statuses.
// Internal store faults are logged but never leaked to the caller.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/joyal-jij0/shl/internal/repository"
	"github.com/joyal-jij0/shl/internal/service"
)

// CatalogHandler serves the read-only product routes.
type CatalogHandler struct {
	Catalog *service.CatalogService
}

// ListProducts handles GET /api/v1/products. Filters and pagination
// are validated by the catalog service; a rejected parameter yields
// 400 with the reason, any store fault yields a generic 500.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	res, err := h.Catalog.ListProducts(c.Request().Context(), c.QueryParams())
	if err != nil {
		if errors.Is(err, repository.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "invalid_argument",
				"message": err.Error(),
			})
		}
		log.Printf("list products: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	return c.JSON(http.StatusOK, res)
}

// GetProduct handles GET /api/v1/products/:id. Product identifiers
// are integers; a non-numeric path segment cannot name any row and is
// therefore answered 404 like any other absent identifier.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product_not_found"})
	}
	p, err := h.Catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product_not_found"})
		}
		log.Printf("get product %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	return c.JSON(http.StatusOK, p)
}
