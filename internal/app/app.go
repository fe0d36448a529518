package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/events"
	"github.com/polkiloo/autoservice/internal/metrics"
	"github.com/polkiloo/autoservice/internal/usecase"
	"github.com/polkiloo/autoservice/internal/worker"
)

// Module wires application state, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		bootstrap,
		newOutbox,
		func(o *events.Outbox) usecase.EventSink { return o },
		func(o *events.Outbox) worker.Outbox { return o },
		NewShopFacade,
		newHTTPServer,
		newEventRelay,
	),
	fx.Invoke(registerLifecycle),
)

func newOutbox(cfg *config.Config) *events.Outbox {
	return events.NewOutbox(cfg.OutboxCapacity)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type relayParams struct {
	fx.In

	Outbox    worker.Outbox
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Config    *config.Config
	Logger    *slog.Logger
}

func newEventRelay(p relayParams) *worker.EventRelay {
	return worker.NewEventRelay(
		p.Outbox,
		p.Publisher,
		p.Metrics,
		p.Config.RelayInterval,
		p.Config.RelayBatchSize,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Relay      *worker.EventRelay
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting autoservice", slog.String("addr", p.Server.Addr))
			p.Relay.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			p.Relay.Stop()
			if err := p.Relay.Flush(shutdownCtx); err != nil {
				p.Logger.Warn("undelivered events left in outbox", slog.String("error", err.Error()))
			}
			p.Logger.Info("autoservice stopped")
			return nil
		},
	})
}
