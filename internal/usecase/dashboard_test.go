package usecase

import (
	"testing"
	"time"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/schedule"
)

func TestDashboardStats(t *testing.T) {
	orders := catalog.New([]model.Order{
		{ID: "ORD-000001", Status: model.OrderStatusCompleted, TotalPrice: 1000},
		{ID: "ORD-000002", Status: model.OrderStatusCompleted, TotalPrice: 3000},
		{ID: "ORD-000003", Status: model.OrderStatusPending, TotalPrice: 500},
		{ID: "ORD-000004", Status: model.OrderStatusInProgress, TotalPrice: 700},
		{ID: "ORD-000005", Status: model.OrderStatusCancelled, TotalPrice: 900},
	})
	scheduler := schedule.NewScheduler(utcGrid(), []model.CalendarAppointment{
		{ID: "APT-1", StartTime: monday.Add(10 * time.Hour), EndTime: monday.Add(11 * time.Hour)},
		{ID: "APT-2", StartTime: monday.Add(17 * time.Hour), EndTime: monday.Add(18 * time.Hour)},
		{ID: "APT-3", StartTime: monday.Add(34 * time.Hour), EndTime: monday.Add(35 * time.Hour)},
	}, monday)

	stats := NewDashboardUseCase(orders, scheduler).Stats(monday.Add(8 * time.Hour))

	want := model.DashboardStats{
		TotalOrders:       5,
		CompletedOrders:   2,
		ActiveOrders:      2,
		Revenue:           4000,
		AvgOrderValue:     2000,
		CompletionRate:    40,
		TodayAppointments: 2,
	}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	stats := NewDashboardUseCase(catalog.New(nil), schedule.NewScheduler(utcGrid(), nil, monday)).Stats(monday)

	if stats != (model.DashboardStats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestDashboardAverageWithoutCompletedOrders(t *testing.T) {
	orders := catalog.New([]model.Order{{ID: "ORD-000001", Status: model.OrderStatusPending, TotalPrice: 1200}})
	stats := NewDashboardUseCase(orders, schedule.NewScheduler(utcGrid(), nil, monday)).Stats(monday)

	if stats.AvgOrderValue != 0 || stats.CompletionRate != 0 || stats.ActiveOrders != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDashboardChart(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	orders := catalog.New([]model.Order{
		{ID: "ORD-000001", Status: model.OrderStatusCompleted, TotalPrice: 1000, ScheduledDate: sunday.Add(-2 * time.Hour)},
		{ID: "ORD-000002", Status: model.OrderStatusPending, TotalPrice: 400, ScheduledDate: sunday.Add(3 * time.Hour)},
		{ID: "ORD-000003", Status: model.OrderStatusCompleted, TotalPrice: 2500, ScheduledDate: monday.Add(9 * time.Hour)},
		{ID: "ORD-000004", Status: model.OrderStatusCompleted, TotalPrice: 9999, ScheduledDate: monday.Add(-time.Hour)},
		{ID: "ORD-000005", Status: model.OrderStatusCompleted, TotalPrice: 9999},
	})

	points := NewDashboardUseCase(orders, schedule.NewScheduler(utcGrid(), nil, monday)).Chart(sunday)

	if len(points) != 7 {
		t.Fatalf("expected seven points, got %d", len(points))
	}
	if points[0].Name != "04 Mar" || points[6].Name != "10 Mar" {
		t.Fatalf("unexpected labels %q..%q", points[0].Name, points[6].Name)
	}
	if points[0].Orders != 1 || points[0].Revenue != 2500 {
		t.Fatalf("unexpected first day: %+v", points[0])
	}
	if points[6].Orders != 2 || points[6].Revenue != 1000 {
		t.Fatalf("expected pending order counted without revenue, got %+v", points[6])
	}
	for _, p := range points[1:6] {
		if p.Orders != 0 || p.Revenue != 0 {
			t.Fatalf("expected empty day, got %+v", p)
		}
	}
}
