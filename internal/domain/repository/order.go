package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// OrderRepository mirrors the order collection into a backing store.
// Save upserts by id and Delete ignores unknown ids.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, order model.Order) error
	SaveAll(ctx context.Context, orders []model.Order) error
	Delete(ctx context.Context, id string) error
}
