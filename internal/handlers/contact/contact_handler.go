// internal/handlers/contact/contact_handler.go
package contact

import (
	"net/http"

	"mehndi-service/internal/domain/contact"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/contact"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact stores a message from the public contact form.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.contactService.CreateContact(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to send message", err)
		return
	}

	response.Success(c, http.StatusCreated, "message sent successfully", result)
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	var filters contact.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.contactService.ListContacts(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list contacts", err)
		return
	}

	response.List(c, "contacts retrieved", result)
}

// GetContact marks a new message as read on first open.
func (h *ContactHandler) GetContact(c *gin.Context) {
	result, err := h.contactService.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to get contact", err)
		return
	}

	response.Success(c, http.StatusOK, "contact retrieved", result)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req contact.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update contact", err)
		return
	}

	response.Success(c, http.StatusOK, "contact updated", result)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.contactService.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to delete contact", err)
		return
	}

	response.Success(c, http.StatusOK, "contact deleted successfully", nil)
}

func (h *ContactHandler) GetStats(c *gin.Context) {
	stats, err := h.contactService.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to get contact stats", err)
		return
	}

	response.Success(c, http.StatusOK, "contact stats retrieved", stats)
}
