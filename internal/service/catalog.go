// Package service implements the query layer between the HTTP
// handlers and the catalog store. It owns request validation and
// result shaping; the store below it only ever sees well-formed typed
// queries.
package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joyal-jij0/shl/internal/model"
	"github.com/joyal-jij0/shl/internal/repository"
)

// Pagination defaults applied when the request leaves them unset.
const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

// ProductStore is the slice of the repository the catalog service
// needs. Declared here so tests can swap in an in-memory fake instead
// of a real database handle.
type ProductStore interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Search(ctx context.Context, f repository.ProductFilters, limit, offset int) ([]model.Product, error)
	Count(ctx context.Context, f repository.ProductFilters) (int64, error)
}

// ListResult is the shaped response of a product listing: one page of
// items plus the metadata a client needs to page through the rest.
type ListResult struct {
	Items  []model.Product `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// CatalogService validates and executes catalog queries.
type CatalogService struct {
	store ProductStore
}

// NewCatalogService constructs a CatalogService over the given store.
func NewCatalogService(store ProductStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts parses filter and pagination parameters, runs the
// search and wraps it with count metadata. Unknown parameter keys and
// malformed values are rejected with repository.ErrInvalidArgument
// rather than silently ignored, so clients learn about typos instead
// of receiving an unfiltered listing.
func (s *CatalogService) ListProducts(ctx context.Context, params url.Values) (*ListResult, error) {
	filters, limit, offset, err := parseListQuery(params)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Search(ctx, filters, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// GetProduct returns a single product by identifier. The store's
// ErrProductNotFound passes through untouched for the handler to map
// to 404.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.store.GetByID(ctx, id)
}

// parseListQuery translates raw query parameters into typed filters
// and pagination bounds. The recognized filter keys form a closed set
// mirroring the products table columns.
func parseListQuery(params url.Values) (repository.ProductFilters, int, int, error) {
	var f repository.ProductFilters
	limit := DefaultLimit
	offset := DefaultOffset

	for key, vals := range params {
		val := ""
		if len(vals) > 0 {
			val = strings.TrimSpace(vals[0])
		}
		switch key {
		case "name":
			f.Name = val
		case "description":
			f.Description = val
		case "job_levels":
			f.JobLevels = val
		case "languages":
			f.Languages = val
		case "test_type":
			f.TestType = val
		case "remote_testing", "adaptive_irt":
			b, err := parseBool(val)
			if err != nil {
				return f, 0, 0, fmt.Errorf("%w: %s must be a boolean", repository.ErrInvalidArgument, key)
			}
			if key == "remote_testing" {
				f.RemoteTesting = &b
			} else {
				f.AdaptiveIRT = &b
			}
		case "limit":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 || n > repository.MaxSearchLimit {
				return f, 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", repository.ErrInvalidArgument, repository.MaxSearchLimit)
			}
			limit = n
		case "offset":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return f, 0, 0, fmt.Errorf("%w: offset must be a non-negative integer", repository.ErrInvalidArgument)
			}
			offset = n
		default:
			return f, 0, 0, fmt.Errorf("%w: unknown filter %q", repository.ErrInvalidArgument, key)
		}
	}

	return f, limit, offset, nil
}

// parseBool accepts the spellings the API documents for boolean
// filters. strconv.ParseBool is wider (it takes "t", "F", ...) and
// would make the accepted surface accidental.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
