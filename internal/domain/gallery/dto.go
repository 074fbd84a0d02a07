// internal/domain/gallery/dto.go
package gallery

import "mehndi-service/internal/pkg/pagination"

// CreateItemRequest registers an image already uploaded to the gallery
// directory.
type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=100"`
	Category    string   `json:"category" binding:"required,oneof=bridal arabic indo-western party festival minimal other"`
	Description string   `json:"description" binding:"max=500"`
	Tags        []string `json:"tags" binding:"max=20,dive,min=1,max=30"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sortOrder"`
	Status      string   `json:"status" binding:"omitempty,oneof=active inactive"`
	Filename    string   `json:"filename" binding:"required,max=100"`
}

type UpdateItemRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=2,max=100"`
	Category    *string   `json:"category" binding:"omitempty,oneof=bridal arabic indo-western party festival minimal other"`
	Description *string   `json:"description" binding:"omitempty,max=500"`
	Tags        *[]string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=30"`
	Featured    *bool     `json:"featured"`
	SortOrder   *int      `json:"sortOrder"`
	Status      *string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkRequest struct {
	Action string             `json:"action" binding:"required,oneof=delete update activate deactivate"`
	IDs    []string           `json:"ids" binding:"required,min=1,max=100,dive,required"`
	Data   *UpdateItemRequest `json:"data" binding:"required_if=Action update"`
}

type ListFilters struct {
	pagination.Query
	Category string `form:"category" binding:"omitempty,oneof=bridal arabic indo-western party festival minimal other"`
	Featured *bool  `form:"featured"`
	// Status is only honoured for admins; the public sees active items.
	Status string `form:"status" binding:"omitempty,oneof=active inactive all"`
	Search string `form:"search" binding:"max=100"`
	Tag    string `form:"tag" binding:"max=30"`
	SortBy string `form:"sortBy" binding:"omitempty,oneof=sortOrder createdAt title"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}
