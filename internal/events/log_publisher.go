package events

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher constructs LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs event at info level.
func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "domain event",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("key", event.Key),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
