package usecase

import (
	"time"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/schedule"
)

const chartDays = 7

// DashboardUseCase aggregates indicators over orders and appointments.
type DashboardUseCase struct {
	orders    *catalog.Engine
	scheduler *schedule.Scheduler
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(orders *catalog.Engine, scheduler *schedule.Scheduler) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, scheduler: scheduler}
}

// Stats computes totals for the whole order history and today's appointment count.
func (u *DashboardUseCase) Stats(now time.Time) model.DashboardStats {
	orders := u.orders.Orders()
	stats := model.DashboardStats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.Revenue += o.TotalPrice
		case model.OrderStatusPending, model.OrderStatusInProgress:
			stats.ActiveOrders++
		}
	}

	stats.AvgOrderValue = float64(stats.Revenue) / float64(max(stats.CompletedOrders, 1))
	if stats.TotalOrders > 0 {
		stats.CompletionRate = float64(stats.CompletedOrders) / float64(stats.TotalOrders) * 100
	}
	stats.TodayAppointments = len(u.scheduler.Day(now))
	return stats
}

// Chart returns one point per day for the last seven days ending today.
// Revenue counts completed orders only.
func (u *DashboardUseCase) Chart(now time.Time) []model.ChartPoint {
	grid := u.scheduler.Grid()
	today := grid.DayStart(now)
	points := make([]model.ChartPoint, chartDays)
	for i := range points {
		y, m, d := today.Date()
		day := time.Date(y, m, d-(chartDays-1-i), 0, 0, 0, 0, today.Location())
		points[i] = model.ChartPoint{Name: day.Format("02 Jan"), Date: day}
	}

	for _, o := range u.orders.Orders() {
		if o.ScheduledDate.IsZero() {
			continue
		}
		for i := range points {
			if !grid.SameDay(o.ScheduledDate, points[i].Date) {
				continue
			}
			points[i].Orders++
			if o.Status == model.OrderStatusCompleted {
				points[i].Revenue += o.TotalPrice
			}
			break
		}
	}
	return points
}
