package dynamo

import (
	"fmt"
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

type serviceItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    int64  `dynamodbav:"price"`
	Duration int    `dynamodbav:"duration"`
}

type orderItem struct {
	ID            string        `dynamodbav:"id"`
	ClientID      string        `dynamodbav:"client_id"`
	ClientName    string        `dynamodbav:"client_name"`
	ClientPhone   string        `dynamodbav:"client_phone"`
	CarModel      string        `dynamodbav:"car_model"`
	CarNumber     string        `dynamodbav:"car_number"`
	Services      []serviceItem `dynamodbav:"services"`
	TotalPrice    int64         `dynamodbav:"total_price"`
	Status        string        `dynamodbav:"status"`
	ScheduledDate string        `dynamodbav:"scheduled_date,omitempty"`
	CreatedAt     string        `dynamodbav:"created_at"`
	Notes         string        `dynamodbav:"notes,omitempty"`
}

type appointmentItem struct {
	ID         string   `dynamodbav:"id"`
	OrderID    string   `dynamodbav:"order_id,omitempty"`
	ClientName string   `dynamodbav:"client_name"`
	CarModel   string   `dynamodbav:"car_model"`
	Services   []string `dynamodbav:"services"`
	StartTime  string   `dynamodbav:"start_time"`
	EndTime    string   `dynamodbav:"end_time"`
	Status     string   `dynamodbav:"status"`
}

func toOrderItem(o model.Order) orderItem {
	services := make([]serviceItem, len(o.Services))
	for i, s := range o.Services {
		services[i] = serviceItem(s)
	}
	return orderItem{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		ClientPhone:   o.ClientPhone,
		CarModel:      o.CarModel,
		CarNumber:     o.CarNumber,
		Services:      services,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		ScheduledDate: formatTime(o.ScheduledDate),
		CreatedAt:     formatTime(o.CreatedAt),
		Notes:         o.Notes,
	}
}

func fromOrderItem(it orderItem) (model.Order, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s created_at: %w", it.ID, err)
	}
	scheduled, err := parseTime(it.ScheduledDate)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s scheduled_date: %w", it.ID, err)
	}
	services := make([]model.Service, len(it.Services))
	for i, s := range it.Services {
		services[i] = model.Service(s)
	}
	return model.Order{
		ID:            it.ID,
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		ClientPhone:   it.ClientPhone,
		CarModel:      it.CarModel,
		CarNumber:     it.CarNumber,
		Services:      services,
		TotalPrice:    it.TotalPrice,
		Status:        model.OrderStatus(it.Status),
		ScheduledDate: scheduled,
		CreatedAt:     createdAt,
		Notes:         it.Notes,
	}, nil
}

func toAppointmentItem(a model.CalendarAppointment) appointmentItem {
	services := a.Services
	if services == nil {
		services = []string{}
	}
	return appointmentItem{
		ID:         a.ID,
		OrderID:    a.OrderID,
		ClientName: a.ClientName,
		CarModel:   a.CarModel,
		Services:   services,
		StartTime:  formatTime(a.StartTime),
		EndTime:    formatTime(a.EndTime),
		Status:     string(a.Status),
	}
}

func fromAppointmentItem(it appointmentItem) (model.CalendarAppointment, error) {
	start, err := parseTime(it.StartTime)
	if err != nil {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s start_time: %w", it.ID, err)
	}
	end, err := parseTime(it.EndTime)
	if err != nil {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s end_time: %w", it.ID, err)
	}
	return model.CalendarAppointment{
		ID:         it.ID,
		OrderID:    it.OrderID,
		ClientName: it.ClientName,
		CarModel:   it.CarModel,
		Services:   it.Services,
		StartTime:  start,
		EndTime:    end,
		Status:     model.OrderStatus(it.Status),
	}, nil
}

// Empty string stands for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}
