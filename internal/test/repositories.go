package test

import (
	"context"
	"sync"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

// OrderRepositoryStub records writes and serves a fixed list.
type OrderRepositoryStub struct {
	sync.Mutex
	Stored  []model.Order
	Saved   []model.Order
	Deleted []string
	ListErr error
	SaveErr error
	DelErr  error
}

func (s *OrderRepositoryStub) List(context.Context) ([]model.Order, error) {
	s.Lock()
	defer s.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Order(nil), s.Stored...), nil
}

func (s *OrderRepositoryStub) Save(_ context.Context, order model.Order) error {
	s.Lock()
	defer s.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, order)
	return nil
}

func (s *OrderRepositoryStub) SaveAll(_ context.Context, orders []model.Order) error {
	s.Lock()
	defer s.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, orders...)
	return nil
}

func (s *OrderRepositoryStub) Delete(_ context.Context, id string) error {
	s.Lock()
	defer s.Unlock()
	if s.DelErr != nil {
		return s.DelErr
	}
	s.Deleted = append(s.Deleted, id)
	return nil
}

// AppointmentRepositoryStub records writes and serves a fixed list.
type AppointmentRepositoryStub struct {
	sync.Mutex
	Stored  []model.CalendarAppointment
	Saved   []model.CalendarAppointment
	Deleted []string
	ListErr error
	SaveErr error
	DelErr  error
}

func (s *AppointmentRepositoryStub) List(context.Context) ([]model.CalendarAppointment, error) {
	s.Lock()
	defer s.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.CalendarAppointment(nil), s.Stored...), nil
}

func (s *AppointmentRepositoryStub) Save(_ context.Context, apt model.CalendarAppointment) error {
	s.Lock()
	defer s.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, apt)
	return nil
}

func (s *AppointmentRepositoryStub) SaveAll(_ context.Context, apts []model.CalendarAppointment) error {
	s.Lock()
	defer s.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, apts...)
	return nil
}

func (s *AppointmentRepositoryStub) Delete(_ context.Context, id string) error {
	s.Lock()
	defer s.Unlock()
	if s.DelErr != nil {
		return s.DelErr
	}
	s.Deleted = append(s.Deleted, id)
	return nil
}

// FactoryStub bundles repository stubs.
type FactoryStub struct {
	OrderRepo       *OrderRepositoryStub
	AppointmentRepo *AppointmentRepositoryStub
	HealthFn        func(context.Context) error
	Closed          bool
}

// NewFactoryStub creates factory with empty repositories.
func NewFactoryStub() *FactoryStub {
	return &FactoryStub{OrderRepo: &OrderRepositoryStub{}, AppointmentRepo: &AppointmentRepositoryStub{}}
}

func (f *FactoryStub) Orders() repository.OrderRepository { return f.OrderRepo }

func (f *FactoryStub) Appointments() repository.AppointmentRepository { return f.AppointmentRepo }

// HealthCheck delegates to HealthFn when set.
func (f *FactoryStub) HealthCheck(ctx context.Context) error {
	if f.HealthFn != nil {
		return f.HealthFn(ctx)
	}
	return nil
}

func (f *FactoryStub) Close() { f.Closed = true }
