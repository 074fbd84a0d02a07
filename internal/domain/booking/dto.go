// internal/domain/booking/dto.go
package booking

import (
	"mehndi-service/internal/pkg/pagination"
)

type CreateBookingRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Phone    string `json:"phone" binding:"required,phone"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Service  string `json:"service" binding:"required,oneof='Bridal Mehndi' 'Engagement Mehndi' 'Party Mehndi' 'Arabic Mehndi' 'Indo-Western Mehndi' 'Baby Shower Mehndi' 'Festival Mehndi' 'Corporate Event' 'Other'"`
	Date     string `json:"date" binding:"required,notpast"`
	Time     string `json:"time" binding:"required,hhmm"`
	Guests   int    `json:"guests" binding:"omitempty,min=1,max=500"`
	Location string `json:"location" binding:"max=200"`
	Message  string `json:"message" binding:"max=1000"`
}

// UpdateBookingRequest merges onto an existing booking. The booking
// reference is not part of it and cannot change.
type UpdateBookingRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=50"`
	Phone    *string  `json:"phone" binding:"omitempty,phone"`
	Email    *string  `json:"email" binding:"omitempty,email,max=255"`
	Service  *string  `json:"service" binding:"omitempty,oneof='Bridal Mehndi' 'Engagement Mehndi' 'Party Mehndi' 'Arabic Mehndi' 'Indo-Western Mehndi' 'Baby Shower Mehndi' 'Festival Mehndi' 'Corporate Event' 'Other'"`
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time     *string  `json:"time" binding:"omitempty,hhmm"`
	Guests   *int     `json:"guests" binding:"omitempty,min=1,max=500"`
	Location *string  `json:"location" binding:"omitempty,max=200"`
	Message  *string  `json:"message" binding:"omitempty,max=1000"`
	Status   *string  `json:"status" binding:"omitempty,oneof=Pending Confirmed Completed Cancelled"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Advance  *float64 `json:"advance" binding:"omitempty,gte=0"`
	Notes    *string  `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=Pending Confirmed Completed Cancelled"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}

type BulkRequest struct {
	Action string                `json:"action" binding:"required,oneof=delete update"`
	IDs    []string              `json:"ids" binding:"required,min=1,max=100,dive,required"`
	Data   *UpdateBookingRequest `json:"data" binding:"required_if=Action update"`
}

type ListFilters struct {
	pagination.Query
	Status  string `form:"status" binding:"omitempty,oneof=Pending Confirmed Completed Cancelled"`
	Service string `form:"service"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	From    string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To      string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Search  string `form:"search" binding:"max=100"`
	SortBy  string `form:"sortBy" binding:"omitempty,oneof=createdAt date amount name status"`
	Order   string `form:"order" binding:"omitempty,oneof=asc desc"`
}
