package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// AppointmentRepository mirrors calendar appointments into a backing store.
// Save upserts by id and Delete ignores unknown ids.
type AppointmentRepository interface {
	List(ctx context.Context) ([]model.CalendarAppointment, error)
	Save(ctx context.Context, appointment model.CalendarAppointment) error
	SaveAll(ctx context.Context, appointments []model.CalendarAppointment) error
	Delete(ctx context.Context, id string) error
}
