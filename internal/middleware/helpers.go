// internal/middleware/helpers.go
package middleware

import (
	"mehndi-service/internal/domain/admin"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func setIdentity(c *gin.Context, identity *admin.Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity returns the authenticated admin, if any.
func GetIdentity(c *gin.Context) (*admin.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*admin.Identity)
	return identity, ok && identity != nil
}

// MustGetIdentity gets the identity from context or panics
func MustGetIdentity(c *gin.Context) *admin.Identity {
	identity, ok := GetIdentity(c)
	if !ok {
		panic("identity not found in context")
	}
	return identity
}

// IsAdmin checks if the caller is an admin or super admin
func IsAdmin(c *gin.Context) bool {
	identity, ok := GetIdentity(c)
	return ok && (identity.Role == admin.RoleAdmin || identity.Role == admin.RoleSuperAdmin)
}
