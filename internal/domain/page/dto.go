// internal/domain/page/dto.go
package page

import (
	"encoding/json"

	"mehndi-service/internal/pkg/pagination"
)

type SectionInput struct {
	ID      string          `json:"id" binding:"max=50"`
	Type    string          `json:"type" binding:"required,oneof=hero text image gallery services testimonials faq cta custom"`
	Title   string          `json:"title" binding:"max=200"`
	Content json.RawMessage `json:"content"`
	Order   *int            `json:"order"`
	Visible *bool           `json:"visible"`
}

// UpsertPageRequest replaces the page at a slug, creating it when absent.
type UpsertPageRequest struct {
	Title           string         `json:"title" binding:"max=200"`
	Sections        []SectionInput `json:"sections" binding:"max=50,dive"`
	Status          string         `json:"status" binding:"omitempty,oneof=draft published"`
	MetaTitle       string         `json:"metaTitle" binding:"max=70"`
	MetaDescription string         `json:"metaDescription" binding:"max=160"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published"`
}

type ListFilters struct {
	pagination.Query
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
	Search string `form:"search" binding:"max=100"`
}
