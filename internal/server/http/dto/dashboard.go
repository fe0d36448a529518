package dto

import "time"

type StatsResponse struct {
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	ActiveOrders      int     `json:"activeOrders"`
	Revenue           int64   `json:"revenue"`
	AvgOrderValue     float64 `json:"avgOrderValue"`
	CompletionRate    float64 `json:"completionRate"`
	TodayAppointments int     `json:"todayAppointments"`
}

type ChartPointResponse struct {
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Orders  int       `json:"orders"`
	Revenue int64     `json:"revenue"`
}
