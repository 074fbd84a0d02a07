// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"

	"mehndi-service/internal/domain/catalog"
	"mehndi-service/internal/middleware"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ========== Public Endpoints ==========

// ListServices shows active services; admins may ask for inactive ones.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	var filters catalog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.catalogService.ListServices(c.Request.Context(), &filters, middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to list services", err)
		return
	}

	response.List(c, "services retrieved", result)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	result, err := h.catalogService.GetService(c.Request.Context(), c.Param("id"), middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to get service", err)
		return
	}

	response.Success(c, http.StatusOK, "service retrieved", result)
}

// ========== Admin Endpoints ==========

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req catalog.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.catalogService.CreateService(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create service", err)
		return
	}

	response.Success(c, http.StatusCreated, "service created successfully", result)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req catalog.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update service", err)
		return
	}

	response.Success(c, http.StatusOK, "service updated successfully", result)
}

func (h *CatalogHandler) ToggleService(c *gin.Context) {
	result, err := h.catalogService.ToggleService(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to toggle service", err)
		return
	}

	response.Success(c, http.StatusOK, "service status toggled", result)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to delete service", err)
		return
	}

	response.Success(c, http.StatusOK, "service deleted successfully", nil)
}

func (h *CatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.catalogService.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to get service stats", err)
		return
	}

	response.Success(c, http.StatusOK, "service stats retrieved", stats)
}

func (h *CatalogHandler) Bulk(c *gin.Context) {
	var req catalog.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.catalogService.Bulk(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "bulk operation failed", err)
		return
	}

	response.Success(c, http.StatusOK, "bulk operation completed", result)
}
