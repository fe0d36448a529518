package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/schedule"
)

// OrderFacade encapsulates order list and order form operations exposed via HTTP.
type OrderFacade interface {
	OrdersView() catalog.View
	Order(id string) (model.Order, error)
	SearchOrders(q string) catalog.View
	FilterOrders(status string) (catalog.View, error)
	SortOrders(field string) (catalog.View, error)
	ToggleOrderSort() catalog.View
	CreateOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error)
	UpdateOrder(ctx context.Context, id string, draft model.OrderDraft) (model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// CalendarFacade provides appointment scheduling operations.
type CalendarFacade interface {
	Appointments(from, to time.Time) ([]model.CalendarAppointment, error)
	Appointment(id string) (model.CalendarAppointment, error)
	Week(date time.Time) schedule.WeekView
	Day(date time.Time) []model.CalendarAppointment
	CreateAppointment(ctx context.Context, draft model.AppointmentDraft) (model.CalendarAppointment, error)
	UpdateAppointment(ctx context.Context, id string, draft model.AppointmentDraft) (model.CalendarAppointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	MoveAppointment(ctx context.Context, id string, start time.Time) (model.CalendarAppointment, error)
	RelocateAppointment(ctx context.Context, id string, weekStart time.Time, slot string) (model.CalendarAppointment, error)
	ScheduleOrder(ctx context.Context, orderID string, start time.Time) (model.CalendarAppointment, error)
	SelectedDate() time.Time
	SetSelectedDate(date time.Time) error
}

type DashboardFacade interface {
	Stats() model.DashboardStats
	Chart() []model.ChartPoint
}

type ReferenceFacade interface {
	Services() []model.Service
	Clients() []model.Client
	Statuses() []model.StatusOption
}

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	OrderFacade
	CalendarFacade
	DashboardFacade
	ReferenceFacade
	HealthChecker
}
