package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
)

// OrderStatus describes work order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every known status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ParseOrderStatus validates raw status value.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.TrimSpace(raw))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, raw)
	}
	return status, nil
}

// Valid reports whether status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Label returns human readable status name.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusInProgress:
		return "In progress"
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// StatusOption pairs a status with its display label.
type StatusOption struct {
	Value OrderStatus
	Label string
}

const orderIDPrefix = "ORD-"

// FormatOrderID renders sequence number as ORD-NNNNNN.
func FormatOrderID(seq int) string {
	return fmt.Sprintf("%s%06d", orderIDPrefix, seq)
}

// OrderSequence extracts numeric part of an order identifier.
func OrderSequence(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, orderIDPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Order is a service-shop work order. Client fields are a snapshot taken at creation time.
type Order struct {
	ID            string
	ClientID      string
	ClientName    string
	ClientPhone   string
	CarModel      string
	CarNumber     string
	Services      []Service
	TotalPrice    int64
	Status        OrderStatus
	ScheduledDate time.Time
	CreatedAt     time.Time
	Notes         string
}

// TotalPrice sums prices of the given services.
func TotalPrice(services []Service) int64 {
	var total int64
	for _, s := range services {
		total += s.Price
	}
	return total
}

// TotalDuration sums durations of the given services.
func TotalDuration(services []Service) time.Duration {
	var total time.Duration
	for _, s := range services {
		total += s.DurationTime()
	}
	return total
}

// Clone returns a copy that does not share the services slice.
func (o Order) Clone() Order {
	o.Services = append([]Service(nil), o.Services...)
	return o
}
