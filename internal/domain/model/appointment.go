package model

import "time"

// CalendarAppointment is a block of shop time. OrderID is informational only.
type CalendarAppointment struct {
	ID         string
	OrderID    string
	ClientName string
	CarModel   string
	Services   []string
	StartTime  time.Time
	EndTime    time.Time
	Status     OrderStatus
}

// Duration returns the length of the appointment.
func (a CalendarAppointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// Clone returns a copy that does not share the services slice.
func (a CalendarAppointment) Clone() CalendarAppointment {
	a.Services = append([]string(nil), a.Services...)
	return a
}
