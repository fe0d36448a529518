package model

import "time"

// DashboardStats aggregates key shop indicators.
type DashboardStats struct {
	TotalOrders       int
	CompletedOrders   int
	ActiveOrders      int
	Revenue           int64
	AvgOrderValue     float64
	CompletionRate    float64
	TodayAppointments int
}

// ChartPoint is one day of the orders/revenue chart.
type ChartPoint struct {
	Name    string
	Date    time.Time
	Orders  int
	Revenue int64
}
