// internal/middleware/params.go
package middleware

import (
	"mehndi-service/internal/pkg/ids"

	"github.com/gin-gonic/gin"
)

// NormalizeIDParam rewrites an :id path parameter holding an entity id into
// its canonical upper-case form. Slugs and booking references pass through.
func NormalizeIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		for i, p := range c.Params {
			if p.Key == "id" {
				c.Params[i].Value = ids.Normalize(p.Value)
			}
		}
		c.Next()
	}
}
