package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/backend/internal/service"
)

type DashboardHandler struct {
	dashboardService service.IDashboardService
}

func NewDashboardHandler(dashboardService service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/summary", h.Summary)
	router.GET("/progress", h.Progress)
}

// Summary returns the daily dashboard, defaulting to today.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "failed to build dashboard summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Progress returns the weight and calorie report for a range, defaulting to
// the last 30 days.
func (h *DashboardHandler) Progress(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	from, to, ok := queryRange(c)
	if !ok {
		return
	}

	report, err := h.dashboardService.Progress(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err, "failed to build progress report")
		return
	}

	c.JSON(http.StatusOK, report)
}
