// internal/domain/catalog/dto.go
package catalog

import "mehndi-service/internal/pkg/pagination"

type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=100"`
	Description string   `json:"description" binding:"required,min=10,max=1000"`
	MinPrice    float64  `json:"minPrice" binding:"gte=0"`
	MaxPrice    float64  `json:"maxPrice" binding:"required,gtfield=MinPrice"`
	Duration    string   `json:"duration" binding:"max=50"`
	Category    string   `json:"category" binding:"omitempty,oneof=bridal party festival corporate other"`
	Features    []string `json:"features" binding:"max=20,dive,min=1,max=100"`
	Active      *bool    `json:"active"`
	Popular     bool     `json:"popular"`
	Image       string   `json:"image" binding:"max=500"`
	SortOrder   int      `json:"sortOrder"`
}

// UpdateServiceRequest merges onto an existing service. Price bounds are
// re-checked against the merged values.
type UpdateServiceRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=3,max=100"`
	Description *string   `json:"description" binding:"omitempty,min=10,max=1000"`
	MinPrice    *float64  `json:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice    *float64  `json:"maxPrice" binding:"omitempty,gte=0"`
	Duration    *string   `json:"duration" binding:"omitempty,max=50"`
	Category    *string   `json:"category" binding:"omitempty,oneof=bridal party festival corporate other"`
	Features    *[]string `json:"features" binding:"omitempty,max=20,dive,min=1,max=100"`
	Active      *bool     `json:"active"`
	Popular     *bool     `json:"popular"`
	Image       *string   `json:"image" binding:"omitempty,max=500"`
	SortOrder   *int      `json:"sortOrder"`
}

type BulkRequest struct {
	Action string                `json:"action" binding:"required,oneof=delete update activate deactivate"`
	IDs    []string              `json:"ids" binding:"required,min=1,max=100,dive,required"`
	Data   *UpdateServiceRequest `json:"data" binding:"required_if=Action update"`
}

type ListFilters struct {
	pagination.Query
	// Active is "true" (default for the public), "false" or "all".
	Active   string `form:"active" binding:"omitempty,oneof=true false all"`
	Category string `form:"category" binding:"omitempty,oneof=bridal party festival corporate other"`
	Popular  *bool  `form:"popular"`
	Search   string `form:"search" binding:"max=100"`
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=sortOrder createdAt title minPrice"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}
