// internal/handlers/gallery/gallery_handler.go
package gallery

import (
	"net/http"

	"mehndi-service/internal/domain/gallery"
	"mehndi-service/internal/middleware"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/gallery"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
}

func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

// ========== Public Endpoints ==========

func (h *GalleryHandler) ListItems(c *gin.Context) {
	var filters gallery.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.galleryService.ListItems(c.Request.Context(), &filters, middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to list gallery", err)
		return
	}

	response.List(c, "gallery retrieved", result)
}

func (h *GalleryHandler) GetItem(c *gin.Context) {
	result, err := h.galleryService.GetItem(c.Request.Context(), c.Param("id"), middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to get gallery item", err)
		return
	}

	response.Success(c, http.StatusOK, "gallery item retrieved", result)
}

func (h *GalleryHandler) Categories(c *gin.Context) {
	counts, err := h.galleryService.Categories(c.Request.Context(), middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to get gallery categories", err)
		return
	}

	response.Success(c, http.StatusOK, "gallery categories retrieved", counts)
}

// ========== Admin Endpoints ==========

// CreateItem registers an image already uploaded to the gallery directory.
func (h *GalleryHandler) CreateItem(c *gin.Context) {
	var req gallery.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.galleryService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create gallery item", err)
		return
	}

	response.Success(c, http.StatusCreated, "gallery item created successfully", result)
}

func (h *GalleryHandler) UpdateItem(c *gin.Context) {
	var req gallery.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.galleryService.UpdateItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update gallery item", err)
		return
	}

	response.Success(c, http.StatusOK, "gallery item updated successfully", result)
}

func (h *GalleryHandler) DeleteItem(c *gin.Context) {
	if err := h.galleryService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to delete gallery item", err)
		return
	}

	response.Success(c, http.StatusOK, "gallery item deleted successfully", nil)
}

func (h *GalleryHandler) GetStats(c *gin.Context) {
	stats, err := h.galleryService.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to get gallery stats", err)
		return
	}

	response.Success(c, http.StatusOK, "gallery stats retrieved", stats)
}

func (h *GalleryHandler) Bulk(c *gin.Context) {
	var req gallery.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.galleryService.Bulk(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "bulk operation failed", err)
		return
	}

	response.Success(c, http.StatusOK, "bulk operation completed", result)
}
