// internal/middleware/auth_middleware.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mehndi-service/internal/domain/admin"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Authenticator resolves a bearer token to the admin it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*admin.Identity, error)
}

type AuthMiddleware struct {
	authService Authenticator
}

func NewAuthMiddleware(authService Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Auth is the base authentication middleware that validates JWT tokens
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing authorization token", xerrors.ErrMissingToken)
			return
		}

		identity, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, xerrors.ErrInactiveAccount):
				response.Unauthorized(c, "account is inactive or no longer exists", xerrors.ErrInactiveAccount)
			case errors.Is(err, xerrors.ErrUnauthorized):
				response.Unauthorized(c, "invalid or expired token", xerrors.ErrInvalidToken)
			default:
				response.FromError(c, "failed to authenticate", err)
			}
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// RequireRole middleware that requires the admin to hold one of the roles.
// MUST be used after Auth() middleware
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Unauthorized(c, "authentication required", xerrors.ErrMissingToken)
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "insufficient permissions", xerrors.ErrForbidden, map[string]interface{}{
			"requiredRoles": roles,
			"role":          identity.Role,
		})
	}
}

// Composed middleware functions that combine Auth + Role checks

// AdminOnly returns middlewares for admin-only routes (Auth + RequireRole)
func (m *AuthMiddleware) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireRole(admin.RoleAdmin, admin.RoleSuperAdmin),
	}
}

// SuperAdminOnly returns middlewares for super admin-only routes (Auth + RequireRole)
func (m *AuthMiddleware) SuperAdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireRole(admin.RoleSuperAdmin),
	}
}

// OptionalAuth attaches the identity when a valid token is present and
// otherwise lets the request through as public.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// extractToken extracts Bearer token from Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	// Fallback to query param, used by invoice downloads opened in a new tab
	return c.Query("token")
}
