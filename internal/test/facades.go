package test

import (
	"context"
	"time"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/schedule"
)

// ShopFacadeStub provides controllable behaviour for HTTP handlers.
// Nil Fn fields fall back to fixed data; query arguments are recorded.
type ShopFacadeStub struct {
	View     catalog.View
	QueryErr error

	OrderFn       func(string) (model.Order, error)
	CreateOrderFn func(context.Context, model.OrderDraft) (model.Order, error)
	UpdateOrderFn func(context.Context, string, model.OrderDraft) (model.Order, error)
	DeleteOrderFn func(context.Context, string) error

	AppointmentsFn      func(time.Time, time.Time) ([]model.CalendarAppointment, error)
	AppointmentFn       func(string) (model.CalendarAppointment, error)
	CreateAppointmentFn func(context.Context, model.AppointmentDraft) (model.CalendarAppointment, error)
	UpdateAppointmentFn func(context.Context, string, model.AppointmentDraft) (model.CalendarAppointment, error)
	DeleteAppointmentFn func(context.Context, string) error
	MoveFn              func(context.Context, string, time.Time) (model.CalendarAppointment, error)
	RelocateFn          func(context.Context, string, time.Time, string) (model.CalendarAppointment, error)
	ScheduleFn          func(context.Context, string, time.Time) (model.CalendarAppointment, error)
	WeekView            schedule.WeekView
	DayList             []model.CalendarAppointment
	Selected            time.Time
	SelectErr           error

	StatsValue  model.DashboardStats
	ChartPoints []model.ChartPoint

	ServiceList []model.Service
	ClientList  []model.Client
	StatusList  []model.StatusOption

	HealthErr error

	LastSearch string
	LastFilter string
	LastSort   string
	Toggled    int
	LastDate   time.Time
}

func (s *ShopFacadeStub) OrdersView() catalog.View { return s.View }

func (s *ShopFacadeStub) Order(id string) (model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(id)
	}
	return model.Order{ID: id}, nil
}

func (s *ShopFacadeStub) SearchOrders(q string) catalog.View {
	s.LastSearch = q
	return s.View
}

func (s *ShopFacadeStub) FilterOrders(status string) (catalog.View, error) {
	s.LastFilter = status
	return s.View, s.QueryErr
}

func (s *ShopFacadeStub) SortOrders(field string) (catalog.View, error) {
	s.LastSort = field
	return s.View, s.QueryErr
}

func (s *ShopFacadeStub) ToggleOrderSort() catalog.View {
	s.Toggled++
	return s.View
}

func (s *ShopFacadeStub) CreateOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, draft)
	}
	return model.Order{ID: "ORD-000001", ClientID: draft.ClientID, Status: model.OrderStatusPending}, nil
}

func (s *ShopFacadeStub) UpdateOrder(ctx context.Context, id string, draft model.OrderDraft) (model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, draft)
	}
	return model.Order{ID: id, ClientID: draft.ClientID, Status: draft.Status}, nil
}

func (s *ShopFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

func (s *ShopFacadeStub) Appointments(from, to time.Time) ([]model.CalendarAppointment, error) {
	if s.AppointmentsFn != nil {
		return s.AppointmentsFn(from, to)
	}
	return s.DayList, nil
}

func (s *ShopFacadeStub) Appointment(id string) (model.CalendarAppointment, error) {
	if s.AppointmentFn != nil {
		return s.AppointmentFn(id)
	}
	return model.CalendarAppointment{ID: id}, nil
}

func (s *ShopFacadeStub) Week(date time.Time) schedule.WeekView {
	s.LastDate = date
	return s.WeekView
}

func (s *ShopFacadeStub) Day(date time.Time) []model.CalendarAppointment {
	s.LastDate = date
	return s.DayList
}

func (s *ShopFacadeStub) CreateAppointment(ctx context.Context, draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	if s.CreateAppointmentFn != nil {
		return s.CreateAppointmentFn(ctx, draft)
	}
	return model.CalendarAppointment{ID: "APT-1", StartTime: draft.StartTime, EndTime: draft.EndTime}, nil
}

func (s *ShopFacadeStub) UpdateAppointment(ctx context.Context, id string, draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	if s.UpdateAppointmentFn != nil {
		return s.UpdateAppointmentFn(ctx, id, draft)
	}
	return model.CalendarAppointment{ID: id, StartTime: draft.StartTime, EndTime: draft.EndTime}, nil
}

func (s *ShopFacadeStub) DeleteAppointment(ctx context.Context, id string) error {
	if s.DeleteAppointmentFn != nil {
		return s.DeleteAppointmentFn(ctx, id)
	}
	return nil
}

func (s *ShopFacadeStub) MoveAppointment(ctx context.Context, id string, start time.Time) (model.CalendarAppointment, error) {
	if s.MoveFn != nil {
		return s.MoveFn(ctx, id, start)
	}
	return model.CalendarAppointment{ID: id, StartTime: start, EndTime: start.Add(time.Hour)}, nil
}

func (s *ShopFacadeStub) RelocateAppointment(ctx context.Context, id string, weekStart time.Time, slot string) (model.CalendarAppointment, error) {
	if s.RelocateFn != nil {
		return s.RelocateFn(ctx, id, weekStart, slot)
	}
	return model.CalendarAppointment{ID: id, StartTime: weekStart}, nil
}

func (s *ShopFacadeStub) ScheduleOrder(ctx context.Context, orderID string, start time.Time) (model.CalendarAppointment, error) {
	if s.ScheduleFn != nil {
		return s.ScheduleFn(ctx, orderID, start)
	}
	return model.CalendarAppointment{ID: "APT-1", OrderID: orderID, StartTime: start, EndTime: start.Add(time.Hour)}, nil
}

func (s *ShopFacadeStub) SelectedDate() time.Time { return s.Selected }

func (s *ShopFacadeStub) SetSelectedDate(date time.Time) error {
	if s.SelectErr != nil {
		return s.SelectErr
	}
	s.Selected = date
	return nil
}

func (s *ShopFacadeStub) Stats() model.DashboardStats { return s.StatsValue }

func (s *ShopFacadeStub) Chart() []model.ChartPoint { return s.ChartPoints }

func (s *ShopFacadeStub) Services() []model.Service { return s.ServiceList }

func (s *ShopFacadeStub) Clients() []model.Client { return s.ClientList }

func (s *ShopFacadeStub) Statuses() []model.StatusOption { return s.StatusList }

func (s *ShopFacadeStub) HealthCheck(context.Context) error { return s.HealthErr }
