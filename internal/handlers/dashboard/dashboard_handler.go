// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"net/http"

	"mehndi-service/internal/pkg/response"
	service "mehndi-service/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	result, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to load dashboard", err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard retrieved", result)
}
