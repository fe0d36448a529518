package dto

import "time"

// AppointmentResponse describes a calendar appointment.
type AppointmentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId,omitempty"`
	ClientName string    `json:"clientName"`
	CarModel   string    `json:"carModel"`
	Services   []string  `json:"services"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
}

// AppointmentDraftRequest is the appointment form payload.
type AppointmentDraftRequest struct {
	OrderID    string    `json:"orderId"`
	ClientName string    `json:"clientName"`
	CarModel   string    `json:"carModel"`
	Services   []string  `json:"services"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
}

type MoveRequest struct {
	Start time.Time `json:"start"`
}

// RelocateRequest drops an appointment onto a "day-hour" slot.
type RelocateRequest struct {
	WeekStart time.Time `json:"weekStart"`
	Slot      string    `json:"slot"`
}

type ScheduleOrderRequest struct {
	Start time.Time `json:"start"`
}

type SelectedDateRequest struct {
	Date time.Time `json:"date"`
}

type SelectedDateResponse struct {
	Date time.Time `json:"date"`
}

// PlacedAppointmentResponse is an appointment with its grid position.
// Offset and extent are omitted for appointments outside grid hours.
type PlacedAppointmentResponse struct {
	AppointmentResponse
	Placed       bool     `json:"placed"`
	Offset       *float64 `json:"offset,omitempty"`
	Extent       *float64 `json:"extent,omitempty"`
	RenderExtent *float64 `json:"renderExtent,omitempty"`
}

type DayResponse struct {
	Date         time.Time                   `json:"date"`
	Appointments []PlacedAppointmentResponse `json:"appointments"`
}

type WeekResponse struct {
	Start time.Time     `json:"start"`
	Hours []int         `json:"hours"`
	Days  []DayResponse `json:"days"`
}
