package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/catalog"
	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
	"github.com/polkiloo/autoservice/internal/metrics"
	"github.com/polkiloo/autoservice/internal/schedule"
	"github.com/polkiloo/autoservice/internal/seed"
)

type bootstrapParams struct {
	fx.In

	Ctx          context.Context
	Config       *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Orders       repository.OrderRepository
	Appointments repository.AppointmentRepository
}

type bootstrapResult struct {
	fx.Out

	Reference *seed.Reference
	Catalog   *catalog.Engine
	Scheduler *schedule.Scheduler
}

// clock is replaced in tests.
var clock = time.Now

func gridFromConfig(cfg *config.Config) schedule.Grid {
	return schedule.Grid{
		StartHour:  cfg.GridStartHour,
		EndHour:    cfg.GridEndHour,
		UnitHeight: cfg.GridUnitHeight,
		MinExtent:  cfg.GridMinExtent,
		Location:   cfg.Location,
	}
}

// bootstrap loads both collections from the repository and builds the containers.
// An empty repository is filled with the generated dataset first.
func bootstrap(p bootstrapParams) (bootstrapResult, error) {
	now := clock()
	if p.Config.Location != nil {
		now = now.In(p.Config.Location)
	}
	ref := seed.NewReference(now)

	orders, appointments, err := load(p.Ctx, p.Orders, p.Appointments)
	if err != nil {
		return bootstrapResult{}, err
	}

	if len(orders) == 0 && len(appointments) == 0 {
		dataset := seed.NewGenerator(ref, p.Config.Seed, p.Config.Location).Generate(now, p.Config.SeedOrders)
		if err := p.Orders.SaveAll(p.Ctx, dataset.Orders); err != nil {
			return bootstrapResult{}, fmt.Errorf("seed orders: %w", err)
		}
		if err := p.Appointments.SaveAll(p.Ctx, dataset.Appointments); err != nil {
			return bootstrapResult{}, fmt.Errorf("seed appointments: %w", err)
		}
		orders, appointments = dataset.Orders, dataset.Appointments
		p.Logger.Info("repository seeded",
			slog.Int("orders", len(orders)),
			slog.Int("appointments", len(appointments)),
			slog.Uint64("seed", p.Config.Seed),
		)
	} else {
		p.Logger.Info("state loaded",
			slog.Int("orders", len(orders)),
			slog.Int("appointments", len(appointments)),
		)
	}

	engine := catalog.New(orders)
	scheduler := schedule.NewScheduler(gridFromConfig(p.Config), appointments, now)

	if err := p.Metrics.TrackCollection("orders", engine.Len); err != nil {
		return bootstrapResult{}, err
	}
	if err := p.Metrics.TrackCollection("appointments", scheduler.Len); err != nil {
		return bootstrapResult{}, err
	}

	return bootstrapResult{Reference: ref, Catalog: engine, Scheduler: scheduler}, nil
}

func load(ctx context.Context, orderRepo repository.OrderRepository, aptRepo repository.AppointmentRepository) ([]model.Order, []model.CalendarAppointment, error) {
	orders, err := orderRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load orders: %w", err)
	}
	appointments, err := aptRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load appointments: %w", err)
	}
	return orders, appointments, nil
}
