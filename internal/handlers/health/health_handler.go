// internal/handlers/health/health_handler.go
package health

import (
	"context"
	"net/http"
	"time"

	"mehndi-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Check pings one dependency.
type Check func(ctx context.Context) error

type HealthHandler struct {
	started  time.Time
	required map[string]Check
	optional map[string]Check
	logger   *zap.Logger
}

// NewHealthHandler reports unhealthy when a required check fails; optional
// checks only mark the service degraded. Failure details are logged, not
// returned.
func NewHealthHandler(required, optional map[string]Check, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		started:  time.Now(),
		required: required,
		optional: optional,
		logger:   logger,
	}
}

type report struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime"`
	Checks map[string]string `json:"checks"`
	Time   time.Time         `json:"time"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	rep := report{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
		Checks: map[string]string{},
		Time:   time.Now().UTC(),
	}

	for name, check := range h.required {
		if err := check(ctx); err != nil {
			h.logger.Error("health check failed", zap.String("dependency", name), zap.Error(err))
			rep.Checks[name] = "down"
			rep.Status = "unhealthy"
			continue
		}
		rep.Checks[name] = "up"
	}
	for name, check := range h.optional {
		if err := check(ctx); err != nil {
			h.logger.Warn("optional health check failed", zap.String("dependency", name), zap.Error(err))
			rep.Checks[name] = "down"
			if rep.Status == "ok" {
				rep.Status = "degraded"
			}
			continue
		}
		rep.Checks[name] = "up"
	}

	if rep.Status == "unhealthy" {
		c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Message: "service unhealthy", Data: rep})
		return
	}
	response.Success(c, http.StatusOK, "service healthy", rep)
}
