package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// ReferenceHandler serves lookup data for forms and filters.
type ReferenceHandler struct {
	facade ReferenceFacade
}

// NewReferenceHandler constructs ReferenceHandler.
func NewReferenceHandler(facade ReferenceFacade) *ReferenceHandler {
	return &ReferenceHandler{facade: facade}
}

// Services handles GET /api/reference/services.
func (h *ReferenceHandler) Services(c *gin.Context) {
	services := h.facade.Services()
	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Clients handles GET /api/reference/clients.
func (h *ReferenceHandler) Clients(c *gin.Context) {
	clients := h.facade.Clients()
	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		resp = append(resp, dto.ClientResponse{
			ID:        cl.ID,
			Name:      cl.Name,
			Phone:     cl.Phone,
			Email:     cl.Email,
			CarModel:  cl.CarModel,
			CarNumber: cl.CarNumber,
			CreatedAt: cl.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Statuses handles GET /api/reference/statuses.
func (h *ReferenceHandler) Statuses(c *gin.Context) {
	statuses := h.facade.Statuses()
	resp := make([]dto.StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		resp = append(resp, dto.StatusResponse{Value: string(s.Value), Label: s.Label})
	}
	c.JSON(http.StatusOK, resp)
}

const pingTimeout = 3 * time.Second

// Ping handles GET /ping by checking the backing store.
func Ping(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		if err := checker.HealthCheck(ctx); err != nil {
			_ = c.Error(err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	}
}
