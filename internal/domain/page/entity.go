// internal/domain/page/entity.go
package page

import (
	"encoding/json"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

var SectionTypes = []string{"hero", "text", "image", "gallery", "services", "testimonials", "faq", "cta", "custom"}

// Section is one block of an editable page. Content is free-form JSON owned
// by the front end.
type Section struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content,omitempty"`
	Order   int             `json:"order"`
	Visible bool            `json:"visible"`
}

type Page struct {
	ID              string    `json:"id" db:"id"`
	Slug            string    `json:"slug" db:"slug"`
	Title           string    `json:"title" db:"title"`
	Sections        []Section `json:"sections" db:"sections"`
	Status          string    `json:"status" db:"status"`
	MetaTitle       string    `json:"metaTitle" db:"meta_title"`
	MetaDescription string    `json:"metaDescription" db:"meta_description"`
	UpdatedBy       *string   `json:"updatedBy" db:"updated_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
