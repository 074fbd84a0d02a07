// Package pagination implements offset-based page arithmetic shared by all
// list endpoints.
package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query is embedded in list filters and bound from ?page=&limit=.
type Query struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize applies defaults and clamps the limit.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// Offset returns (page-1)*limit.
func (q Query) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Pages returns ceil(total/limit).
func Pages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Result is a single page of items.
type Result[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// Pages returns the number of pages of r.
func (r Result[T]) Pages() int {
	return Pages(r.Total, r.Limit)
}
