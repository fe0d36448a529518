package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// OrderHandler manages order list and order form endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, toOrderListResponse(h.facade.OrdersView()))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Param("id"))
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), toOrderDraft(req))
	if err != nil {
		respondError(c, err, true)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.OrderDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), toOrderDraft(req))
	if err != nil {
		respondError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, false)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles PUT /api/orders/query/search.
func (h *OrderHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderListResponse(h.facade.SearchOrders(req.Query)))
}

// FilterStatus handles PUT /api/orders/query/status.
func (h *OrderHandler) FilterStatus(c *gin.Context) {
	var req dto.StatusFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.facade.FilterOrders(req.Status)
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toOrderListResponse(view))
}

// Sort handles PUT /api/orders/query/sort.
func (h *OrderHandler) Sort(c *gin.Context) {
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.facade.SortOrders(req.Field)
	if err != nil {
		respondError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, toOrderListResponse(view))
}

// ToggleSort handles POST /api/orders/query/sort/toggle.
func (h *OrderHandler) ToggleSort(c *gin.Context) {
	c.JSON(http.StatusOK, toOrderListResponse(h.facade.ToggleOrderSort()))
}

func toOrderDraft(req dto.OrderDraftRequest) model.OrderDraft {
	return model.OrderDraft{
		ClientID:      req.ClientID,
		ServiceIDs:    req.ServiceIDs,
		ScheduledDate: req.ScheduledDate,
		Status:        model.OrderStatus(req.Status),
		Notes:         req.Notes,
	}
}

func toServiceResponse(s model.Service) dto.ServiceResponse {
	return dto.ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price, Duration: s.Duration}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	services := make([]dto.ServiceResponse, 0, len(order.Services))
	for _, s := range order.Services {
		services = append(services, toServiceResponse(s))
	}
	return dto.OrderResponse{
		ID:            order.ID,
		ClientID:      order.ClientID,
		ClientName:    order.ClientName,
		ClientPhone:   order.ClientPhone,
		CarModel:      order.CarModel,
		CarNumber:     order.CarNumber,
		Services:      services,
		TotalPrice:    order.TotalPrice,
		Status:        string(order.Status),
		ScheduledDate: order.ScheduledDate,
		CreatedAt:     order.CreatedAt,
		Notes:         order.Notes,
	}
}

func toOrderListResponse(view catalog.View) dto.OrderListResponse {
	orders := make([]dto.OrderResponse, 0, len(view.Orders))
	for _, o := range view.Orders {
		orders = append(orders, toOrderResponse(o))
	}
	return dto.OrderListResponse{
		Orders: orders,
		Query: dto.QueryResponse{
			Search:       view.Query.Search,
			StatusFilter: string(view.Query.StatusFilter),
			SortBy:       string(view.Query.SortBy),
			SortOrder:    string(view.Query.SortOrder),
		},
		Total:    view.Total,
		Filtered: view.Filtered,
	}
}
