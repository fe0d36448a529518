package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/polkiloo/autoservice/internal/catalog"
	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
	"github.com/polkiloo/autoservice/internal/events"
	"github.com/polkiloo/autoservice/internal/seed"
)

// OrderUseCase turns order list intents and order form drafts into catalog mutations.
type OrderUseCase struct {
	notifier

	engine *catalog.Engine
	ref    *seed.Reference
	repo   repository.OrderRepository

	// createMu keeps id assignment and insertion atomic.
	createMu sync.Mutex
	// lastSeq only grows, so ids of deleted orders are never handed out again.
	lastSeq int
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(engine *catalog.Engine, ref *seed.Reference, repo repository.OrderRepository, sink EventSink, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		notifier: newNotifier(sink, logger),
		engine:   engine,
		ref:      ref,
		repo:     repo,
	}
}

// View returns the current derived order list.
func (u *OrderUseCase) View() catalog.View {
	return u.engine.View()
}

// Get returns order by id.
func (u *OrderUseCase) Get(id string) (model.Order, error) {
	order, ok := u.engine.Get(id)
	if !ok {
		return model.Order{}, fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
	}
	return order, nil
}

// Search replaces the free text query.
func (u *OrderUseCase) Search(q string) catalog.View {
	return u.engine.SetSearchQuery(q)
}

// FilterStatus accepts "all" or a status value.
func (u *OrderUseCase) FilterStatus(raw string) (catalog.View, error) {
	filter, err := model.ParseStatusFilter(raw)
	if err != nil {
		return catalog.View{}, err
	}
	return u.engine.SetStatusFilter(filter), nil
}

// SortBy changes the sort key.
func (u *OrderUseCase) SortBy(raw string) (catalog.View, error) {
	field, err := model.ParseSortField(raw)
	if err != nil {
		return catalog.View{}, err
	}
	return u.engine.SetSortBy(field), nil
}

// ToggleSortOrder flips sort direction.
func (u *OrderUseCase) ToggleSortOrder() catalog.View {
	return u.engine.ToggleSortOrder()
}

// Create validates draft and adds a new order at the front of the list.
func (u *OrderUseCase) Create(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	order, err := u.build(draft)
	if err != nil {
		return model.Order{}, err
	}

	u.createMu.Lock()
	order.ID = u.nextID()
	order.CreatedAt = u.now()
	u.engine.Add(order)
	u.createMu.Unlock()

	if err := u.repo.Save(ctx, order); err != nil {
		u.mirrorFailed("create order", order.ID, err)
	}
	u.emit(events.OrderCreated, order.ID, events.NewOrderPayload(order))
	return order, nil
}

// Update replaces editable fields of an existing order. Id and creation time are kept.
func (u *OrderUseCase) Update(ctx context.Context, id string, draft model.OrderDraft) (model.Order, error) {
	current, ok := u.engine.Get(id)
	if !ok {
		return model.Order{}, fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
	}

	order, err := u.build(draft)
	if err != nil {
		return model.Order{}, err
	}
	order.ID = current.ID
	order.CreatedAt = current.CreatedAt

	if !u.engine.Update(order) {
		return model.Order{}, fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
	}

	if err := u.repo.Save(ctx, order); err != nil {
		u.mirrorFailed("update order", order.ID, err)
	}
	u.emit(events.OrderUpdated, order.ID, events.NewOrderPayload(order))
	return order, nil
}

// Delete removes order by id.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	if !u.engine.Delete(id) {
		return fmt.Errorf("order %s: %w", id, domainErrors.ErrNotFound)
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		u.mirrorFailed("delete order", id, err)
	}
	u.emit(events.OrderDeleted, id, nil)
	return nil
}

// build validates draft and snapshots client and services into an order.
func (u *OrderUseCase) build(draft model.OrderDraft) (model.Order, error) {
	client, ok := u.ref.Client(draft.ClientID)
	if !ok {
		return model.Order{}, fmt.Errorf("%w: %q", domainErrors.ErrUnknownClient, draft.ClientID)
	}
	if len(draft.ServiceIDs) == 0 {
		return model.Order{}, domainErrors.ErrEmptyServices
	}
	services := make([]model.Service, 0, len(draft.ServiceIDs))
	for _, id := range draft.ServiceIDs {
		service, ok := u.ref.Service(id)
		if !ok {
			return model.Order{}, fmt.Errorf("%w: %q", domainErrors.ErrUnknownService, id)
		}
		services = append(services, service)
	}
	if draft.ScheduledDate.IsZero() {
		return model.Order{}, fmt.Errorf("%w: scheduled date is required", domainErrors.ErrInvalidDate)
	}

	status := draft.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	if !status.Valid() {
		return model.Order{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}

	return model.Order{
		ClientID:      client.ID,
		ClientName:    client.Name,
		ClientPhone:   client.Phone,
		CarModel:      client.CarModel,
		CarNumber:     client.CarNumber,
		Services:      services,
		TotalPrice:    model.TotalPrice(services),
		Status:        status,
		ScheduledDate: draft.ScheduledDate,
		Notes:         draft.Notes,
	}, nil
}

// nextID must be called with createMu held.
func (u *OrderUseCase) nextID() string {
	highest := u.lastSeq
	for _, o := range u.engine.Orders() {
		if seq, ok := model.OrderSequence(o.ID); ok && seq > highest {
			highest = seq
		}
	}
	u.lastSeq = highest + 1
	return model.FormatOrderID(u.lastSeq)
}
