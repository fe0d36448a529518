package kafka

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/config"
	"github.com/polkiloo/autoservice/internal/events"
)

// Module exposes events.Publisher. Without brokers events go to the log.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) events.Publisher {
	if len(p.Config.KafkaBrokers) == 0 {
		p.Logger.Info("kafka brokers not configured, events go to log")
		return events.NewLogPublisher(p.Logger)
	}

	publisher := NewPublisher(p.Config.KafkaBrokers, p.Config.EventsTopic, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
