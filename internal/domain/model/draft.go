package model

import "time"

// OrderDraft is the editable part of an order as submitted by the order form.
type OrderDraft struct {
	ClientID      string
	ServiceIDs    []string
	ScheduledDate time.Time
	Status        OrderStatus
	Notes         string
}

// AppointmentDraft is the editable part of a calendar appointment.
type AppointmentDraft struct {
	OrderID    string
	ClientName string
	CarModel   string
	Services   []string
	StartTime  time.Time
	EndTime    time.Time
	Status     OrderStatus
}
