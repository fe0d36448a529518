package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// DashboardHandler serves aggregated indicators.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	s := h.facade.Stats()
	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders:       s.TotalOrders,
		CompletedOrders:   s.CompletedOrders,
		ActiveOrders:      s.ActiveOrders,
		Revenue:           s.Revenue,
		AvgOrderValue:     s.AvgOrderValue,
		CompletionRate:    s.CompletionRate,
		TodayAppointments: s.TodayAppointments,
	})
}

// Chart handles GET /api/dashboard/chart.
func (h *DashboardHandler) Chart(c *gin.Context) {
	points := h.facade.Chart()
	resp := make([]dto.ChartPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, dto.ChartPointResponse{Name: p.Name, Date: p.Date, Orders: p.Orders, Revenue: p.Revenue})
	}
	c.JSON(http.StatusOK, resp)
}
