package usecase

import (
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/seed"
)

// ReferenceUseCase exposes immutable lookup data for forms and filters.
type ReferenceUseCase struct {
	ref *seed.Reference
}

// NewReferenceUseCase constructs ReferenceUseCase.
func NewReferenceUseCase(ref *seed.Reference) *ReferenceUseCase {
	return &ReferenceUseCase{ref: ref}
}

func (u *ReferenceUseCase) Services() []model.Service {
	return u.ref.Services()
}

func (u *ReferenceUseCase) Clients() []model.Client {
	return u.ref.Clients()
}

// Statuses lists every order status in display order.
func (u *ReferenceUseCase) Statuses() []model.StatusOption {
	options := make([]model.StatusOption, len(model.OrderStatuses))
	for i, s := range model.OrderStatuses {
		options[i] = model.StatusOption{Value: s, Label: s.Label()}
	}
	return options
}
