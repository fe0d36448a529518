package app

import (
	"context"
	"time"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
	"github.com/polkiloo/autoservice/internal/schedule"
	"github.com/polkiloo/autoservice/internal/usecase"
)

type ShopFacade struct {
	orders    *usecase.OrderUseCase
	calendar  *usecase.CalendarUseCase
	dashboard *usecase.DashboardUseCase
	reference *usecase.ReferenceUseCase
	storage   repository.Factory
	loc       *time.Location
}

func NewShopFacade(orders *usecase.OrderUseCase, calendar *usecase.CalendarUseCase, dashboard *usecase.DashboardUseCase, reference *usecase.ReferenceUseCase, storage repository.Factory, scheduler *schedule.Scheduler) *ShopFacade {
	return &ShopFacade{
		orders:    orders,
		calendar:  calendar,
		dashboard: dashboard,
		reference: reference,
		storage:   storage,
		loc:       scheduler.Grid().Location,
	}
}

func (f *ShopFacade) now() time.Time {
	if f.loc == nil {
		return clock()
	}
	return clock().In(f.loc)
}

func (f *ShopFacade) OrdersView() catalog.View {
	return f.orders.View()
}

func (f *ShopFacade) Order(id string) (model.Order, error) {
	return f.orders.Get(id)
}

func (f *ShopFacade) SearchOrders(q string) catalog.View {
	return f.orders.Search(q)
}

func (f *ShopFacade) FilterOrders(status string) (catalog.View, error) {
	return f.orders.FilterStatus(status)
}

func (f *ShopFacade) SortOrders(field string) (catalog.View, error) {
	return f.orders.SortBy(field)
}

func (f *ShopFacade) ToggleOrderSort() catalog.View {
	return f.orders.ToggleSortOrder()
}

func (f *ShopFacade) CreateOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	return f.orders.Create(ctx, draft)
}

func (f *ShopFacade) UpdateOrder(ctx context.Context, id string, draft model.OrderDraft) (model.Order, error) {
	return f.orders.Update(ctx, id, draft)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *ShopFacade) Appointments(from, to time.Time) ([]model.CalendarAppointment, error) {
	return f.calendar.Appointments(from, to)
}

func (f *ShopFacade) Appointment(id string) (model.CalendarAppointment, error) {
	return f.calendar.Get(id)
}

// Week falls back to the selected date when date is zero.
func (f *ShopFacade) Week(date time.Time) schedule.WeekView {
	if date.IsZero() {
		date = f.calendar.SelectedDate()
	}
	return f.calendar.Week(date)
}

// Day falls back to the selected date when date is zero.
func (f *ShopFacade) Day(date time.Time) []model.CalendarAppointment {
	if date.IsZero() {
		date = f.calendar.SelectedDate()
	}
	return f.calendar.Day(date)
}

func (f *ShopFacade) CreateAppointment(ctx context.Context, draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	return f.calendar.Create(ctx, draft)
}

func (f *ShopFacade) UpdateAppointment(ctx context.Context, id string, draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	return f.calendar.Update(ctx, id, draft)
}

func (f *ShopFacade) DeleteAppointment(ctx context.Context, id string) error {
	return f.calendar.Delete(ctx, id)
}

func (f *ShopFacade) MoveAppointment(ctx context.Context, id string, start time.Time) (model.CalendarAppointment, error) {
	return f.calendar.Move(ctx, id, start)
}

func (f *ShopFacade) RelocateAppointment(ctx context.Context, id string, weekStart time.Time, slot string) (model.CalendarAppointment, error) {
	return f.calendar.Relocate(ctx, id, weekStart, slot)
}

func (f *ShopFacade) ScheduleOrder(ctx context.Context, orderID string, start time.Time) (model.CalendarAppointment, error) {
	return f.calendar.ScheduleOrder(ctx, orderID, start)
}

func (f *ShopFacade) SelectedDate() time.Time {
	return f.calendar.SelectedDate()
}

func (f *ShopFacade) SetSelectedDate(date time.Time) error {
	return f.calendar.SetSelectedDate(date)
}

func (f *ShopFacade) Stats() model.DashboardStats {
	return f.dashboard.Stats(f.now())
}

func (f *ShopFacade) Chart() []model.ChartPoint {
	return f.dashboard.Chart(f.now())
}

func (f *ShopFacade) Services() []model.Service {
	return f.reference.Services()
}

func (f *ShopFacade) Clients() []model.Client {
	return f.reference.Clients()
}

func (f *ShopFacade) Statuses() []model.StatusOption {
	return f.reference.Statuses()
}

// HealthCheck reports whether the backing store answers.
func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}
