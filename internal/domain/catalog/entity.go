// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/lib/pq"
)

var Categories = []string{"bridal", "party", "festival", "corporate", "other"}

// Service is one offering in the public price list.
type Service struct {
	ID          string         `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	MinPrice    float64        `json:"minPrice" db:"min_price"`
	MaxPrice    float64        `json:"maxPrice" db:"max_price"`
	Duration    string         `json:"duration" db:"duration"`
	Category    string         `json:"category" db:"category"`
	Features    pq.StringArray `json:"features" db:"features"`
	Active      bool           `json:"active" db:"active"`
	Popular     bool           `json:"popular" db:"popular"`
	Image       string         `json:"image" db:"image"`
	SortOrder   int            `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Stats struct {
	Total       int64           `json:"total"`
	Active      int64           `json:"active"`
	Inactive    int64           `json:"inactive"`
	Popular     int64           `json:"popular"`
	AvgMinPrice float64         `json:"avgMinPrice"`
	AvgMaxPrice float64         `json:"avgMaxPrice"`
	ByCategory  []CategoryCount `json:"byCategory"`
}
