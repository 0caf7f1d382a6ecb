// Package repository contains data access logic for the product
// catalog. This file defines sentinel error values shared across the
// package. Higher layers such as the catalog service and the HTTP
// handlers use them to distinguish failure scenarios: a missing row is
// answered with 404, a rejected filter or pagination bound with 400,
// and anything else is an internal store fault answered with 500.
package repository

import "errors"

// ErrProductNotFound indicates that no product row matches the
// requested identifier.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidArgument indicates that a request was rejected before
// touching the database: an unknown filter key, a malformed filter
// value, or pagination bounds outside the allowed range.
var ErrInvalidArgument = errors.New("invalid argument")
