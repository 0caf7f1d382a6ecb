package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/joyal-jij0/shl/internal/handler"
	"github.com/joyal-jij0/shl/internal/model"
	"github.com/joyal-jij0/shl/internal/repository"
	"github.com/joyal-jij0/shl/internal/service"
)

// emptyStore answers every catalog query with an empty dataset.
type emptyStore struct{}

func (emptyStore) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return nil, repository.ErrProductNotFound
}

func (emptyStore) Search(ctx context.Context, f repository.ProductFilters, limit, offset int) ([]model.Product, error) {
	return []model.Product{}, nil
}

func (emptyStore) Count(ctx context.Context, f repository.ProductFilters) (int64, error) {
	return 0, nil
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

// newAPI registers the routes with a marker standing in for the
// response cache, so tests can tell which routes it wraps.
func newAPI() *echo.Echo {
	e := echo.New()
	marker := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-Cache-Wired", "1")
			return next(c)
		}
	}
	RegisterRoutes(e,
		&handler.CatalogHandler{Catalog: service.NewCatalogService(emptyStore{})},
		&handler.HealthHandler{Store: okPinger{}},
		marker,
	)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProductRoutesGoThroughCache(t *testing.T) {
	e := newAPI()

	rec := get(e, "/api/v1/products")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if rec.Header().Get("X-Cache-Wired") != "1" {
		t.Error("cache middleware not applied to the list route")
	}

	rec = get(e, "/api/v1/products/1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("detail status = %d, want 404 on empty store", rec.Code)
	}
	if rec.Header().Get("X-Cache-Wired") != "1" {
		t.Error("cache middleware not applied to the detail route")
	}
}

func TestHealthRouteBypassesCache(t *testing.T) {
	e := newAPI()

	rec := get(e, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	// Health reports live store reachability; a cached "ok" would keep
	// answering for a store that has since died.
	if got := rec.Header().Get("X-Cache-Wired"); got != "" {
		t.Errorf("cache middleware applied to the health route (X-Cache-Wired = %q)", got)
	}
}
