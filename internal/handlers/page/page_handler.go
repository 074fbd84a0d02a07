// internal/handlers/page/page_handler.go
package page

import (
	"net/http"

	"mehndi-service/internal/domain/page"
	"mehndi-service/internal/middleware"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/page"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
	}
}

// GetPage serves published pages; admins also see drafts.
func (h *PageHandler) GetPage(c *gin.Context) {
	result, err := h.pageService.GetPage(c.Request.Context(), c.Param("slug"), middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to get page", err)
		return
	}

	response.Success(c, http.StatusOK, "page retrieved", result)
}

func (h *PageHandler) ListPages(c *gin.Context) {
	var filters page.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.pageService.ListPages(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list pages", err)
		return
	}

	response.List(c, "pages retrieved", result)
}

// UpsertPage creates or replaces the page at :slug.
func (h *PageHandler) UpsertPage(c *gin.Context) {
	identity := middleware.MustGetIdentity(c)

	var req page.UpsertPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, created, err := h.pageService.UpsertPage(c.Request.Context(), c.Param("slug"), &req, identity.ID)
	if err != nil {
		response.FromError(c, "failed to save page", err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "page created successfully", result)
		return
	}
	response.Success(c, http.StatusOK, "page updated successfully", result)
}

func (h *PageHandler) UpdateStatus(c *gin.Context) {
	identity := middleware.MustGetIdentity(c)

	var req page.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.pageService.SetStatus(c.Request.Context(), c.Param("slug"), req.Status, identity.ID)
	if err != nil {
		response.FromError(c, "failed to update page status", err)
		return
	}

	response.Success(c, http.StatusOK, "page status updated", result)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	if err := h.pageService.DeletePage(c.Request.Context(), c.Param("slug")); err != nil {
		response.FromError(c, "failed to delete page", err)
		return
	}

	response.Success(c, http.StatusOK, "page deleted successfully", nil)
}
