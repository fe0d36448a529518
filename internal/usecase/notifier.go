package usecase

import (
	"log/slog"
	"time"

	"github.com/polkiloo/autoservice/internal/events"
)

// EventSink accepts domain events for asynchronous delivery.
type EventSink interface {
	Enqueue(event events.Event)
}

// notifier is shared by use cases that report mutations.
type notifier struct {
	sink   EventSink
	logger *slog.Logger
	now    func() time.Time
}

func newNotifier(sink EventSink, logger *slog.Logger) notifier {
	return notifier{sink: sink, logger: logger, now: time.Now}
}

func (n notifier) emit(typ events.Type, key string, payload any) {
	event, err := events.New(typ, key, payload, n.now())
	if err != nil {
		n.logger.Error("build event failed", slog.String("type", string(typ)), slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	n.sink.Enqueue(event)
}

// mirrorFailed records a repository write that did not go through.
// The in-memory containers stay authoritative.
func (n notifier) mirrorFailed(op, id string, err error) {
	n.logger.Warn("repository mirror failed",
		slog.String("op", op),
		slog.String("id", id),
		slog.String("error", err.Error()),
	)
}
