// internal/domain/blog/dto.go
package blog

import "mehndi-service/internal/pkg/pagination"

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,min=3,max=200"`
	Slug          string   `json:"slug" binding:"omitempty,max=220,slug"`
	Excerpt       string   `json:"excerpt" binding:"max=500"`
	Content       string   `json:"content" binding:"required"`
	ContentFormat string   `json:"contentFormat" binding:"omitempty,oneof=html markdown"`
	Category      string   `json:"category" binding:"omitempty,oneof=tips trends bridal aftercare news other"`
	Tags          []string `json:"tags" binding:"max=20,dive,min=1,max=30"`
	FeaturedImage string   `json:"featuredImage" binding:"max=500"`
	Author        string   `json:"author" binding:"max=100"`
	Published     bool     `json:"published"`
	Featured      bool     `json:"featured"`
}

type UpdatePostRequest struct {
	Title         *string   `json:"title" binding:"omitempty,min=3,max=200"`
	Slug          *string   `json:"slug" binding:"omitempty,max=220,slug"`
	Excerpt       *string   `json:"excerpt" binding:"omitempty,max=500"`
	Content       *string   `json:"content" binding:"omitempty,min=1"`
	ContentFormat *string   `json:"contentFormat" binding:"omitempty,oneof=html markdown"`
	Category      *string   `json:"category" binding:"omitempty,oneof=tips trends bridal aftercare news other"`
	Tags          *[]string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=30"`
	FeaturedImage *string   `json:"featuredImage" binding:"omitempty,max=500"`
	Author        *string   `json:"author" binding:"omitempty,max=100"`
	Published     *bool     `json:"published"`
	Featured      *bool     `json:"featured"`
}

// BulkRequest: activate publishes and deactivate unpublishes.
type BulkRequest struct {
	Action string             `json:"action" binding:"required,oneof=delete update activate deactivate"`
	IDs    []string           `json:"ids" binding:"required,min=1,max=100,dive,required"`
	Data   *UpdatePostRequest `json:"data" binding:"required_if=Action update"`
}

type ListFilters struct {
	pagination.Query
	// Published is "true" (the only value honoured for the public), "false" or "all".
	Published string `form:"published" binding:"omitempty,oneof=true false all"`
	Category  string `form:"category" binding:"omitempty,oneof=tips trends bridal aftercare news other"`
	Tag       string `form:"tag" binding:"max=30"`
	Featured  *bool  `form:"featured"`
	Search    string `form:"search" binding:"max=100"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=publishedAt createdAt title views likes"`
	Order     string `form:"order" binding:"omitempty,oneof=asc desc"`
}
