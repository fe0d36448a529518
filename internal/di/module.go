package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/adapter/kafka"
	"github.com/polkiloo/autoservice/internal/app"
	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/logger"
	"github.com/polkiloo/autoservice/internal/metrics"
	"github.com/polkiloo/autoservice/internal/server/http/router"
	"github.com/polkiloo/autoservice/internal/storage"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// Module composes the application graph. opts are appended last so tests can replace providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		storage.Module,
		kafka.Module,
		usecase.Module,
		app.Module,
		router.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
