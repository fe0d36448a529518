package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

// Storage keeps orders and appointments in process memory.
// Contents are lost on restart.
type Storage struct {
	mu           sync.RWMutex
	orders       map[string]model.Order
	appointments map[string]model.CalendarAppointment
}

type orderRepository struct {
	storage *Storage
}

type appointmentRepository struct {
	storage *Storage
}

// New creates empty storage.
func New() *Storage {
	return &Storage{
		orders:       make(map[string]model.Order),
		appointments: make(map[string]model.CalendarAppointment),
	}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Appointments() repository.AppointmentRepository {
	return &appointmentRepository{storage: s}
}

// HealthCheck always succeeds.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (s *Storage) Close() {}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	result := make([]model.Order, 0, len(r.storage.orders))
	for _, o := range r.storage.orders {
		result = append(result, o.Clone())
	}
	slices.SortFunc(result, func(a, b model.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *orderRepository) Save(ctx context.Context, order model.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	r.storage.orders[order.ID] = order.Clone()
	return nil
}

func (r *orderRepository) SaveAll(ctx context.Context, orders []model.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for _, o := range orders {
		r.storage.orders[o.ID] = o.Clone()
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	delete(r.storage.orders, id)
	return nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.CalendarAppointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	result := make([]model.CalendarAppointment, 0, len(r.storage.appointments))
	for _, a := range r.storage.appointments {
		result = append(result, a.Clone())
	}
	slices.SortFunc(result, func(a, b model.CalendarAppointment) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *appointmentRepository) Save(ctx context.Context, appointment model.CalendarAppointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	r.storage.appointments[appointment.ID] = appointment.Clone()
	return nil
}

func (r *appointmentRepository) SaveAll(ctx context.Context, appointments []model.CalendarAppointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	for _, a := range appointments {
		r.storage.appointments[a.ID] = a.Clone()
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()
	delete(r.storage.appointments, id)
	return nil
}
