package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/config"
	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/repository"
	"github.com/polkiloo/autoservice/internal/storage/dynamo"
	"github.com/polkiloo/autoservice/internal/storage/memory"
	"github.com/polkiloo/autoservice/internal/storage/postgres"
)

// Module wires the configured storage driver and its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.AppointmentRepository { return f.Appointments() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Indirection points for tests.
var (
	openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (repository.Factory, error) {
		return postgres.New(ctx, dsn, logger)
	}
	openDynamo = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.Factory, error) {
		client, err := dynamo.NewClient(ctx, dynamo.ClientOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoEndpoint})
		if err != nil {
			return nil, err
		}
		return dynamo.New(ctx, client, cfg.DynamoTablePrefix, logger)
	}
)

func newFactory(p factoryParams) (repository.Factory, error) {
	var (
		factory repository.Factory
		err     error
	)
	switch p.Config.StorageDriver {
	case config.DriverMemory:
		factory = memory.New()
	case config.DriverPostgres:
		factory, err = openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	case config.DriverDynamoDB:
		factory, err = openDynamo(p.Ctx, p.Config, p.Logger)
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrUnknownDriver, p.Config.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", p.Config.StorageDriver, err)
	}

	p.Logger.Info("storage ready", slog.String("driver", p.Config.StorageDriver))
	return factory, nil
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			factory.Close()
			return nil
		},
	})
}
