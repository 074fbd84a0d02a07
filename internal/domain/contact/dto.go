// internal/domain/contact/dto.go
package contact

import "mehndi-service/internal/pkg/pagination"

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"omitempty,phone"`
	Service string `json:"service" binding:"max=50"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// UpdateStatusRequest sets the status, records a reply, or both. A reply
// marks the message Replied.
type UpdateStatusRequest struct {
	Status       string  `json:"status" binding:"omitempty,oneof=New Read Replied Closed"`
	ReplyMessage *string `json:"replyMessage" binding:"omitempty,min=1,max=2000"`
}

type ListFilters struct {
	pagination.Query
	Status  string `form:"status" binding:"omitempty,oneof=New Read Replied Closed"`
	Service string `form:"service" binding:"omitempty,oneof=bridal party festival corporate other"`
	Replied *bool  `form:"replied"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Search  string `form:"search" binding:"max=100"`
	SortBy  string `form:"sortBy" binding:"omitempty,oneof=createdAt name status"`
	Order   string `form:"order" binding:"omitempty,oneof=asc desc"`
}
