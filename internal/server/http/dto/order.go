package dto

import "time"

// ServiceResponse describes a catalog service.
type ServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration int    `json:"duration"`
}

// OrderResponse describes a work order.
type OrderResponse struct {
	ID            string            `json:"id"`
	ClientID      string            `json:"clientId"`
	ClientName    string            `json:"clientName"`
	ClientPhone   string            `json:"clientPhone"`
	CarModel      string            `json:"carModel"`
	CarNumber     string            `json:"carNumber"`
	Services      []ServiceResponse `json:"services"`
	TotalPrice    int64             `json:"totalPrice"`
	Status        string            `json:"status"`
	ScheduledDate time.Time         `json:"scheduledDate"`
	CreatedAt     time.Time         `json:"createdAt"`
	Notes         string            `json:"notes,omitempty"`
}

// QueryResponse is the current search, filter and sort state.
type QueryResponse struct {
	Search       string `json:"searchQuery"`
	StatusFilter string `json:"statusFilter"`
	SortBy       string `json:"sortBy"`
	SortOrder    string `json:"sortOrder"`
}

// OrderListResponse is the derived order list with its query state.
type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Query    QueryResponse   `json:"query"`
	Total    int             `json:"total"`
	Filtered int             `json:"filtered"`
}

// OrderDraftRequest is the order form payload.
type OrderDraftRequest struct {
	ClientID      string    `json:"clientId"`
	ServiceIDs    []string  `json:"serviceIds"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type StatusFilterRequest struct {
	Status string `json:"status"`
}

type SortRequest struct {
	Field string `json:"field"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
