package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lionsacademy/register-backend/internal/response"
	"github.com/lionsacademy/register-backend/internal/service"
)

// DashboardHandler serves the admin landing summary.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
// GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
