package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

var _ repository.Factory = (*Storage)(nil)

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := New().Orders()
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	older := model.Order{ID: "ORD-000001", CreatedAt: base, Services: []model.Service{{ID: "s1"}}}
	newer := model.Order{ID: "ORD-000002", CreatedAt: base.Add(time.Hour)}
	if err := repo.SaveAll(ctx, []model.Order{older, newer}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	list[1].Services[0].ID = "mutated"
	again, _ := repo.List(ctx)
	if again[1].Services[0].ID != "s1" {
		t.Fatal("expected list to return copies")
	}

	older.Status = model.OrderStatusCompleted
	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 2 || list[1].Status != model.OrderStatusCompleted {
		t.Fatalf("expected upsert, got %+v", list)
	}

	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Fatalf("expected delete of unknown id to succeed, got %v", err)
	}
	if err := repo.Delete(ctx, older.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 1 || list[0].ID != newer.ID {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestAppointmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := New().Appointments()
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	late := model.CalendarAppointment{ID: "APT-0-1", StartTime: base.Add(2 * time.Hour), EndTime: base.Add(3 * time.Hour)}
	early := model.CalendarAppointment{ID: "APT-0-0", StartTime: base, EndTime: base.Add(time.Hour), Services: []string{"Oil change"}}
	if err := repo.Save(ctx, late); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SaveAll(ctx, []model.CalendarAppointment{early}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != early.ID {
		t.Fatalf("expected start order, got %+v", list)
	}

	if err := repo.Delete(ctx, early.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 1 || list[0].ID != late.ID {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New()

	if _, err := s.Orders().List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if err := s.Appointments().Save(ctx, model.CalendarAppointment{ID: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if err := s.HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Close()
}
