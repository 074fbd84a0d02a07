// internal/domain/gallery/entity.go
package gallery

import (
	"time"

	"github.com/lib/pq"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var Categories = []string{"bridal", "arabic", "indo-western", "party", "festival", "minimal", "other"}

type Item struct {
	ID           string         `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Category     string         `json:"category" db:"category"`
	Description  string         `json:"description" db:"description"`
	Tags         pq.StringArray `json:"tags" db:"tags"`
	Featured     bool           `json:"featured" db:"featured"`
	SortOrder    int            `json:"sortOrder" db:"sort_order"`
	Status       string         `json:"status" db:"status"`
	Filename     string         `json:"filename" db:"filename"`
	URL          string         `json:"url" db:"url"`
	ThumbnailURL string         `json:"thumbnailUrl" db:"thumbnail_url"`
	Size         int64          `json:"size" db:"size"`
	MimeType     string         `json:"mimetype" db:"mimetype"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Stats struct {
	Total      int64           `json:"total"`
	Active     int64           `json:"active"`
	Inactive   int64           `json:"inactive"`
	Featured   int64           `json:"featured"`
	TotalSize  int64           `json:"totalSize"`
	ByCategory []CategoryCount `json:"byCategory"`
}
