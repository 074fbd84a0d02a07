package admin

import (
	"strings"
	"time"
)

// LoginRequest accepts either a username or an email as the identifier.
type LoginRequest struct {
	Username string `json:"username" binding:"required_without=Email,max=255"`
	Email    string `json:"email" binding:"required_without=Username,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

func (r LoginRequest) Identifier() string {
	if s := strings.TrimSpace(r.Username); s != "" {
		return s
	}
	return strings.TrimSpace(r.Email)
}

// LoginResponse represents successful login data
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     AdminInfo `json:"admin"`
}

// AdminInfo represents public admin information
type AdminInfo struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
}

// ChangePasswordRequest for authenticated password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72,nefield=CurrentPassword"`
}

// CreateAdminRequest represents the request for creating a new admin
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

type SetStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
