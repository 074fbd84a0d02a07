// internal/middleware/ratelimit.go
package middleware

import (
	"math"
	"net/http"
	"strconv"

	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ratelimit"
	"mehndi-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit takes one token per request from the caller's bucket. Limiter
// failures let the request through.
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		d, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))

		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			if secs < 0 {
				secs = 0
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			response.Error(c, http.StatusTooManyRequests, "rate limit exceeded, try again later", xerrors.ErrRateLimited,
				map[string]interface{}{"retryAfter": secs})
			return
		}

		c.Next()
	}
}
