package events

import (
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// OrderPayload is the wire form of an order inside an event.
type OrderPayload struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	ClientName    string    `json:"client_name"`
	CarModel      string    `json:"car_model"`
	CarNumber     string    `json:"car_number"`
	ServiceIDs    []string  `json:"service_ids"`
	TotalPrice    int64     `json:"total_price"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewOrderPayload converts order to its event form.
func NewOrderPayload(o model.Order) OrderPayload {
	ids := make([]string, len(o.Services))
	for i, s := range o.Services {
		ids[i] = s.ID
	}
	return OrderPayload{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		CarModel:      o.CarModel,
		CarNumber:     o.CarNumber,
		ServiceIDs:    ids,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		ScheduledDate: o.ScheduledDate,
		CreatedAt:     o.CreatedAt,
	}
}

// AppointmentPayload is the wire form of an appointment inside an event.
type AppointmentPayload struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id,omitempty"`
	Services  []string  `json:"services"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// NewAppointmentPayload converts appointment to its event form.
func NewAppointmentPayload(a model.CalendarAppointment) AppointmentPayload {
	return AppointmentPayload{
		ID:        a.ID,
		OrderID:   a.OrderID,
		Services:  append([]string(nil), a.Services...),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    string(a.Status),
	}
}
