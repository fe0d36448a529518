package usecase

import (
	"testing"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/seed"
)

func TestReferenceUseCase(t *testing.T) {
	uc := NewReferenceUseCase(seed.NewReference(fixedNow))

	if got := len(uc.Services()); got != 10 {
		t.Fatalf("expected 10 services, got %d", got)
	}
	if got := len(uc.Clients()); got != 23 {
		t.Fatalf("expected 23 clients, got %d", got)
	}

	statuses := uc.Statuses()
	if len(statuses) != len(model.OrderStatuses) {
		t.Fatalf("expected every status, got %d", len(statuses))
	}
	if statuses[1] != (model.StatusOption{Value: model.OrderStatusInProgress, Label: "In progress"}) {
		t.Fatalf("unexpected option: %+v", statuses[1])
	}
}
