// internal/handlers/booking/booking_handler.go
package booking

import (
	"net/http"
	"strconv"

	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// ========== Public Endpoints ==========

// CreateBooking accepts a booking request from the website.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create booking", err)
		return
	}

	response.Success(c, http.StatusCreated, "booking created successfully", result)
}

// ========== Admin Endpoints ==========

func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filters booking.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bookingService.ListBookings(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list bookings", err)
		return
	}

	response.List(c, "bookings retrieved", result)
}

// GetBooking accepts either the internal id or the BK- reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	result, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to get booking", err)
		return
	}

	response.Success(c, http.StatusOK, "booking retrieved", result)
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req booking.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bookingService.UpdateBooking(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update booking", err)
		return
	}

	response.Success(c, http.StatusOK, "booking updated successfully", result)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update booking status", err)
		return
	}

	response.Success(c, http.StatusOK, "booking status updated", result)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to delete booking", err)
		return
	}

	response.Success(c, http.StatusOK, "booking deleted successfully", nil)
}

func (h *BookingHandler) GetStats(c *gin.Context) {
	stats, err := h.bookingService.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to get booking stats", err)
		return
	}

	response.Success(c, http.StatusOK, "booking stats retrieved", stats)
}

func (h *BookingHandler) Bulk(c *gin.Context) {
	var req booking.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bookingService.Bulk(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "bulk operation failed", err)
		return
	}

	response.Success(c, http.StatusOK, "bulk operation completed", result)
}

// Invoice streams the booking invoice as a PDF attachment.
func (h *BookingHandler) Invoice(c *gin.Context) {
	pdf, filename, err := h.bookingService.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to generate invoice", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
