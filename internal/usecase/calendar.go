package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/config"
	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
	"github.com/polkiloo/autoservice/internal/events"
	"github.com/polkiloo/autoservice/internal/schedule"
)

const appointmentIDPrefix = "APT-"

// CalendarUseCase drives the appointment scheduler.
type CalendarUseCase struct {
	notifier

	scheduler *schedule.Scheduler
	orders    *catalog.Engine
	repo      repository.AppointmentRepository
	firstDay  time.Weekday
}

// NewCalendarUseCase constructs CalendarUseCase.
func NewCalendarUseCase(scheduler *schedule.Scheduler, orders *catalog.Engine, repo repository.AppointmentRepository, sink EventSink, cfg *config.Config, logger *slog.Logger) *CalendarUseCase {
	return &CalendarUseCase{
		notifier:  newNotifier(sink, logger),
		scheduler: scheduler,
		orders:    orders,
		repo:      repo,
		firstDay:  cfg.WeekStart,
	}
}

// Appointments lists appointments starting in [from, to). Zero bounds list everything.
func (u *CalendarUseCase) Appointments(from, to time.Time) ([]model.CalendarAppointment, error) {
	if from.IsZero() && to.IsZero() {
		return u.scheduler.Appointments(), nil
	}
	if from.IsZero() || to.IsZero() || !to.After(from) {
		return nil, domainErrors.ErrInvalidTimeRange
	}
	return u.scheduler.Between(from, to), nil
}

// Get returns appointment by id.
func (u *CalendarUseCase) Get(id string) (model.CalendarAppointment, error) {
	apt, ok := u.scheduler.Get(id)
	if !ok {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s: %w", id, domainErrors.ErrNotFound)
	}
	return apt, nil
}

// Week returns the week grid containing date.
func (u *CalendarUseCase) Week(date time.Time) schedule.WeekView {
	return u.scheduler.Week(u.WeekStart(date))
}

// dropWeekStart keeps the caller's week start at local midnight.
// A zero value means the week of the selected date.
func (u *CalendarUseCase) dropWeekStart(weekStart time.Time) time.Time {
	if weekStart.IsZero() {
		return u.WeekStart(u.scheduler.SelectedDate())
	}
	return u.scheduler.Grid().DayStart(weekStart)
}

// WeekStart returns the first day of the week containing date.
func (u *CalendarUseCase) WeekStart(date time.Time) time.Time {
	return schedule.WeekStart(date, u.firstDay, u.scheduler.Grid().Location)
}

// Day returns appointments of the calendar day containing date.
func (u *CalendarUseCase) Day(date time.Time) []model.CalendarAppointment {
	return u.scheduler.Day(date)
}

// Create validates draft and adds a new appointment.
func (u *CalendarUseCase) Create(ctx context.Context, draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	apt, err := buildAppointment(draft)
	if err != nil {
		return model.CalendarAppointment{}, err
	}
	apt.ID = appointmentIDPrefix + uuid.NewString()

	u.scheduler.Add(apt)
	u.saved(ctx, "create appointment", events.AppointmentCreated, apt)
	return apt, nil
}

// Update replaces appointment fields keeping its id.
func (u *CalendarUseCase) Update(ctx context.Context, id string, draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	apt, err := buildAppointment(draft)
	if err != nil {
		return model.CalendarAppointment{}, err
	}
	apt.ID = id

	if !u.scheduler.Update(apt) {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s: %w", id, domainErrors.ErrNotFound)
	}
	u.saved(ctx, "update appointment", events.AppointmentUpdated, apt)
	return apt, nil
}

// Delete removes appointment by id.
func (u *CalendarUseCase) Delete(ctx context.Context, id string) error {
	if !u.scheduler.Delete(id) {
		return fmt.Errorf("appointment %s: %w", id, domainErrors.ErrNotFound)
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.mirrorFailed("delete appointment", id, err)
	}
	u.emit(events.AppointmentDeleted, id, nil)
	return nil
}

// Move shifts appointment to start keeping its duration.
// Moving onto the current start returns the record unchanged and emits nothing.
func (u *CalendarUseCase) Move(ctx context.Context, id string, start time.Time) (model.CalendarAppointment, error) {
	if start.IsZero() {
		return model.CalendarAppointment{}, fmt.Errorf("%w: start is required", domainErrors.ErrInvalidDate)
	}
	before, ok := u.scheduler.Get(id)
	if !ok {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s: %w", id, domainErrors.ErrNotFound)
	}
	moved, ok := u.scheduler.Move(id, start)
	if !ok {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s: %w", id, domainErrors.ErrNotFound)
	}
	if !before.StartTime.Equal(moved.StartTime) {
		u.saved(ctx, "move appointment", events.AppointmentMoved, moved)
	}
	return moved, nil
}

// Relocate drops appointment onto a "day-hour" slot of the week starting at weekStart.
func (u *CalendarUseCase) Relocate(ctx context.Context, id string, weekStart time.Time, slotID string) (model.CalendarAppointment, error) {
	slot, err := schedule.ParseSlot(slotID)
	if err != nil {
		return model.CalendarAppointment{}, err
	}
	if !slot.Valid(u.scheduler.Grid()) {
		return model.CalendarAppointment{}, fmt.Errorf("%w: %s outside calendar grid", domainErrors.ErrInvalidSlot, slot)
	}
	before, ok := u.scheduler.Get(id)
	if !ok {
		return model.CalendarAppointment{}, fmt.Errorf("appointment %s: %w", id, domainErrors.ErrNotFound)
	}

	moved, changed := u.scheduler.Relocate(id, u.dropWeekStart(weekStart), slot)
	if !changed {
		return before, nil
	}
	u.saved(ctx, "relocate appointment", events.AppointmentMoved, moved)
	return moved, nil
}

// ScheduleOrder books a calendar block for an existing order starting at start.
// The block lasts as long as the order's services.
func (u *CalendarUseCase) ScheduleOrder(ctx context.Context, orderID string, start time.Time) (model.CalendarAppointment, error) {
	if start.IsZero() {
		return model.CalendarAppointment{}, fmt.Errorf("%w: start is required", domainErrors.ErrInvalidDate)
	}
	order, ok := u.orders.Get(orderID)
	if !ok {
		return model.CalendarAppointment{}, fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
	}

	duration := model.TotalDuration(order.Services)
	if duration <= 0 {
		duration = time.Hour
	}
	names := make([]string, len(order.Services))
	for i, s := range order.Services {
		names[i] = s.Name
	}

	apt := model.CalendarAppointment{
		ID:         appointmentIDPrefix + uuid.NewString(),
		OrderID:    order.ID,
		ClientName: order.ClientName,
		CarModel:   order.CarModel,
		Services:   names,
		StartTime:  start,
		EndTime:    start.Add(duration),
		Status:     order.Status,
	}
	u.scheduler.Add(apt)
	u.saved(ctx, "schedule order", events.AppointmentCreated, apt)
	return apt, nil
}

// SetSelectedDate focuses the calendar on date.
func (u *CalendarUseCase) SetSelectedDate(date time.Time) error {
	if date.IsZero() {
		return domainErrors.ErrInvalidDate
	}
	u.scheduler.SetSelectedDate(date)
	return nil
}

// SelectedDate returns the focused calendar date.
func (u *CalendarUseCase) SelectedDate() time.Time {
	return u.scheduler.SelectedDate()
}

func (u *CalendarUseCase) saved(ctx context.Context, op string, typ events.Type, apt model.CalendarAppointment) {
	if err := u.repo.Save(ctx, apt); err != nil {
		u.mirrorFailed(op, apt.ID, err)
	}
	u.emit(typ, apt.ID, events.NewAppointmentPayload(apt))
}

func buildAppointment(draft model.AppointmentDraft) (model.CalendarAppointment, error) {
	if draft.StartTime.IsZero() || draft.EndTime.IsZero() {
		return model.CalendarAppointment{}, fmt.Errorf("%w: start and end are required", domainErrors.ErrInvalidDate)
	}
	if !draft.EndTime.After(draft.StartTime) {
		return model.CalendarAppointment{}, domainErrors.ErrInvalidTimeRange
	}
	status := draft.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	if !status.Valid() {
		return model.CalendarAppointment{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}
	return model.CalendarAppointment{
		OrderID:    draft.OrderID,
		ClientName: draft.ClientName,
		CarModel:   draft.CarModel,
		Services:   append([]string(nil), draft.Services...),
		StartTime:  draft.StartTime,
		EndTime:    draft.EndTime,
		Status:     status,
	}, nil
}
