package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event.
type Type string

const (
	OrderCreated       Type = "order.created"
	OrderUpdated       Type = "order.updated"
	OrderDeleted       Type = "order.deleted"
	AppointmentCreated Type = "appointment.created"
	AppointmentUpdated Type = "appointment.updated"
	AppointmentDeleted Type = "appointment.deleted"
	AppointmentMoved   Type = "appointment.moved"
)

// Event is a change notification emitted after a successful mutation.
type Event struct {
	ID         string          `json:"id"`
	Type       Type            `json:"type"`
	Key        string          `json:"key"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// New builds event with a fresh identifier. Key is the affected entity id.
func New(typ Type, key string, payload any, at time.Time) (Event, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Event{}, fmt.Errorf("marshal %s payload: %w", typ, err)
		}
		raw = data
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Key:        key,
		Payload:    raw,
		OccurredAt: at.UTC(),
	}, nil
}

// Publisher delivers events to an external sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
