// internal/domain/blog/entity.go
package blog

import (
	"time"

	"github.com/lib/pq"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

var Categories = []string{"tips", "trends", "bridal", "aftercare", "news", "other"}

type Post struct {
	ID            string         `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Slug          string         `json:"slug" db:"slug"`
	Excerpt       string         `json:"excerpt" db:"excerpt"`
	Content       string         `json:"content" db:"content"`
	ContentFormat string         `json:"contentFormat" db:"content_format"`
	ContentHTML   string         `json:"contentHtml" db:"content_html"`
	Category      string         `json:"category" db:"category"`
	Tags          pq.StringArray `json:"tags" db:"tags"`
	FeaturedImage string         `json:"featuredImage" db:"featured_image"`
	Author        string         `json:"author" db:"author"`
	Published     bool           `json:"published" db:"published"`
	PublishedAt   *time.Time     `json:"publishedAt" db:"published_at"`
	Featured      bool           `json:"featured" db:"featured"`
	Views         int64          `json:"views" db:"views"`
	Likes         int64          `json:"likes" db:"likes"`
	ReadTime      int            `json:"readTime" db:"read_time"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Stats struct {
	Total      int64           `json:"total"`
	Published  int64           `json:"published"`
	Drafts     int64           `json:"drafts"`
	Featured   int64           `json:"featured"`
	TotalViews int64           `json:"totalViews"`
	TotalLikes int64           `json:"totalLikes"`
	ByCategory []CategoryCount `json:"byCategory"`
}
