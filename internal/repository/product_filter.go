package repository

import "strings"

// ProductFilters narrows a catalog search. Every field is optional; the
// zero value matches all products. Substring fields match
// case-insensitively anywhere in the column (job levels, languages and
// test types are stored comma-joined, so substring is the useful
// predicate for lists). TestType matches exactly; the boolean pointers
// match only when set.
type ProductFilters struct {
	Name          string // substring on products.name
	Description   string // substring on products.description
	JobLevels     string // substring on products.job_levels
	Languages     string // substring on products.languages
	TestType      string // equality on products.test_type
	RemoteTesting *bool  // equality on products.remote_testing
	AdaptiveIRT   *bool  // equality on products.adaptive_irt
}

// whereClause renders the filters into a SQL condition and its bind
// arguments. The condition is always non-empty so callers can append
// it after WHERE unconditionally.
func (f ProductFilters) whereClause() (string, []any) {
	where := []string{}
	args := []any{}

	like := func(col, val string) {
		where = append(where, "LOWER("+col+") LIKE ?")
		args = append(args, "%"+strings.ToLower(val)+"%")
	}

	if f.Name != "" {
		like("name", f.Name)
	}
	if f.Description != "" {
		like("description", f.Description)
	}
	if f.JobLevels != "" {
		like("job_levels", f.JobLevels)
	}
	if f.Languages != "" {
		like("languages", f.Languages)
	}
	if f.TestType != "" {
		where = append(where, "test_type = ?")
		args = append(args, f.TestType)
	}
	if f.RemoteTesting != nil {
		where = append(where, "remote_testing = ?")
		args = append(args, *f.RemoteTesting)
	}
	if f.AdaptiveIRT != nil {
		where = append(where, "adaptive_irt = ?")
		args = append(args, *f.AdaptiveIRT)
	}

	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}
