// Package model defines the data structures served by the catalog API.
package model

// Product is a single SHL assessment product as stored in the
// products table. Rows are written by the crawler ahead of deployment
// and are immutable for the life of this process; the struct therefore
// carries no bookkeeping fields.
//
// Fields:
//
//	ID               – primary key identifier.
//	Name             – product title.
//	URL              – canonical catalog page, unique per product.
//	RemoteTesting    – whether the assessment supports remote delivery.
//	AdaptiveIRT      – whether the assessment is adaptive (IRT-based).
//	TestType         – comma-joined test type codes (e.g. "P, A, B").
//	Description      – free-text description.
//	JobLevels        – comma-joined applicable job levels.
//	Languages        – comma-joined available languages.
//	AssessmentLength – human-readable duration text.
//
// The crawler leaves unknown attributes NULL rather than empty, so the
// optional columns map to pointers and drop out of JSON when unset.
type Product struct {
	ID               int64   `json:"id"`                          // products.id
	Name             string  `json:"name"`                        // products.name
	URL              string  `json:"url"`                         // products.url
	RemoteTesting    *bool   `json:"remote_testing,omitempty"`    // products.remote_testing
	AdaptiveIRT      *bool   `json:"adaptive_irt,omitempty"`      // products.adaptive_irt
	TestType         *string `json:"test_type,omitempty"`         // products.test_type
	Description      *string `json:"description,omitempty"`       // products.description
	JobLevels        *string `json:"job_levels,omitempty"`        // products.job_levels
	Languages        *string `json:"languages,omitempty"`         // products.languages
	AssessmentLength *string `json:"assessment_length,omitempty"` // products.assessment_length
}
