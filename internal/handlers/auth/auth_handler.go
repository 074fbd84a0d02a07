// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"mehndi-service/internal/domain/admin"
	"mehndi-service/internal/middleware"
	"mehndi-service/internal/pkg/response"
	authUsecase "mehndi-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Login ==========

// Login exchanges a username or email and password for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	loginResp, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		h.logger.Warn("login failed",
			zap.String("identifier", req.Identifier()),
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		response.FromError(c, "login failed", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", loginResp)
}

// Logout is stateless; the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	identity := middleware.MustGetIdentity(c)
	h.logger.Info("admin logged out", zap.String("admin_id", identity.ID))
	response.Success(c, http.StatusOK, "logout successful", nil)
}

// ========== Profile ==========

// Me returns the authenticated admin.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.MustGetIdentity(c)

	info, err := h.authService.Me(c.Request.Context(), identity.ID)
	if err != nil {
		response.FromError(c, "failed to load profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", info)
}

// ChangePassword replaces the caller's password after checking the current one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity := middleware.MustGetIdentity(c)

	var req admin.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), identity.ID, &req); err != nil {
		response.FromError(c, "failed to change password", err)
		return
	}

	response.Success(c, http.StatusOK, "password changed successfully", nil)
}

// ========== Admin Management (super admin) ==========

func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req admin.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.authService.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create admin", err)
		return
	}

	response.Success(c, http.StatusCreated, "admin created successfully", info)
}

func (h *AuthHandler) ListAdmins(c *gin.Context) {
	admins, err := h.authService.ListAdmins(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list admins", err)
		return
	}

	response.Success(c, http.StatusOK, "admins retrieved", admins)
}

func (h *AuthHandler) SetAdminStatus(c *gin.Context) {
	identity := middleware.MustGetIdentity(c)

	var req admin.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.authService.SetAdminActive(c.Request.Context(), identity.ID, c.Param("id"), *req.IsActive)
	if err != nil {
		response.FromError(c, "failed to update admin status", err)
		return
	}

	response.Success(c, http.StatusOK, "admin status updated", info)
}
