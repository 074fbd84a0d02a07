// internal/handlers/blog/blog_handler.go
package blog

import (
	"net/http"

	"mehndi-service/internal/domain/blog"
	"mehndi-service/internal/middleware"
	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/blog"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ========== Public Endpoints ==========

func (h *BlogHandler) ListPosts(c *gin.Context) {
	var filters blog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.blogService.ListPosts(c.Request.Context(), &filters, middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to list posts", err)
		return
	}

	response.List(c, "posts retrieved", result)
}

// GetPost resolves an id or a slug; public slug reads count a view.
func (h *BlogHandler) GetPost(c *gin.Context) {
	result, err := h.blogService.GetPost(c.Request.Context(), c.Param("id"), middleware.IsAdmin(c))
	if err != nil {
		response.FromError(c, "failed to get post", err)
		return
	}

	response.Success(c, http.StatusOK, "post retrieved", result)
}

func (h *BlogHandler) LikePost(c *gin.Context) {
	likes, err := h.blogService.LikePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to like post", err)
		return
	}

	response.Success(c, http.StatusOK, "post liked", gin.H{"likes": likes})
}

// ========== Admin Endpoints ==========

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req blog.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.blogService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create post", err)
		return
	}

	response.Success(c, http.StatusCreated, "post created successfully", result)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req blog.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.blogService.UpdatePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update post", err)
		return
	}

	response.Success(c, http.StatusOK, "post updated successfully", result)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.blogService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to delete post", err)
		return
	}

	response.Success(c, http.StatusOK, "post deleted successfully", nil)
}

func (h *BlogHandler) GetStats(c *gin.Context) {
	stats, err := h.blogService.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to get blog stats", err)
		return
	}

	response.Success(c, http.StatusOK, "blog stats retrieved", stats)
}

func (h *BlogHandler) Bulk(c *gin.Context) {
	var req blog.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.blogService.Bulk(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "bulk operation failed", err)
		return
	}

	response.Success(c, http.StatusOK, "bulk operation completed", result)
}
