package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/joyal-jij0/shl/internal/model"
)

// MaxSearchLimit caps the page size of a catalog search to bound
// response bodies and query cost.
const MaxSearchLimit = 100

// productColumns is the column list every product query selects. The
// deployed database file may carry extra columns written by the data
// pipeline (embedding, crawled_at); naming the columns keeps those
// inert.
const productColumns = `id, name, url, remote_testing, adaptive_irt,
		test_type, description, job_levels, languages, assessment_length`

// ProductRepo provides read-only access to the products table. The
// underlying handle is opened in read-only mode, so any number of
// ProductRepo calls may run concurrently without coordination.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo around an open handle.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// GetByID returns the product with the given identifier, or
// ErrProductNotFound if no row matches.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	p, err := scanProduct(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Search returns at most limit matching products, skipping the first
// offset matches. Results are ordered by id ascending so that paging
// through a filter is deterministic and gapless. Bounds outside
// 1..MaxSearchLimit / 0.. are rejected with ErrInvalidArgument.
func (r *ProductRepo) Search(ctx context.Context, f ProductFilters, limit, offset int) ([]model.Product, error) {
	if limit < 1 || limit > MaxSearchLimit || offset < 0 {
		return nil, ErrInvalidArgument
	}

	cond, args := f.whereClause()
	q := `SELECT ` + productColumns + `
		FROM products
		WHERE ` + cond + `
		ORDER BY id ASC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of products matching the filters,
// independent of pagination. Used for the list endpoint's total field.
func (r *ProductRepo) Count(ctx context.Context, f ProductFilters) (int64, error) {
	cond, args := f.whereClause()
	q := `SELECT COUNT(*) FROM products WHERE ` + cond

	var total int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Ping performs the trivial read the health endpoint relies on. It
// succeeds iff the database file is still present and readable.
func (r *ProductRepo) Ping(ctx context.Context) error {
	var one int
	return r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one products row, converting nullable columns into
// pointers so absent attributes drop out of JSON responses.
func scanProduct(s scanner) (*model.Product, error) {
	var (
		p                                  model.Product
		remoteTesting, adaptiveIRT         sql.NullBool
		testType, description              sql.NullString
		jobLevels, languages, assessLength sql.NullString
	)
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.URL,
		&remoteTesting,
		&adaptiveIRT,
		&testType,
		&description,
		&jobLevels,
		&languages,
		&assessLength,
	)
	if err != nil {
		return nil, err
	}
	if remoteTesting.Valid {
		v := remoteTesting.Bool
		p.RemoteTesting = &v
	}
	if adaptiveIRT.Valid {
		v := adaptiveIRT.Bool
		p.AdaptiveIRT = &v
	}
	if testType.Valid {
		p.TestType = &testType.String
	}
	if description.Valid {
		p.Description = &description.String
	}
	if jobLevels.Valid {
		p.JobLevels = &jobLevels.String
	}
	if languages.Valid {
		p.Languages = &languages.String
	}
	if assessLength.Valid {
		p.AssessmentLength = &assessLength.String
	}
	return &p, nil
}
