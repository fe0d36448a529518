package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/autoservice/internal/events"
	"github.com/polkiloo/autoservice/internal/metrics"
)

// Outbox is the queue the relay drains.
type Outbox interface {
	Fetch(limit int) []events.Event
	Requeue(events []events.Event)
	Len() int
	Dropped() uint64
}

// EventRelay moves events from the outbox to the publisher with a pool of workers.
// Failed deliveries are put back and retried on a later tick.
type EventRelay struct {
	outbox    Outbox
	publisher events.Publisher
	metrics   *metrics.Metrics
	interval  time.Duration
	batchSize int
	workers   int
	logger    *slog.Logger

	wg          sync.WaitGroup
	cancel      context.CancelFunc
	mu          sync.Mutex
	lastDropped uint64
}

// NewEventRelay constructs relay worker pool.
func NewEventRelay(outbox Outbox, publisher events.Publisher, m *metrics.Metrics, interval time.Duration, batchSize, workers int, logger *slog.Logger) *EventRelay {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &EventRelay{
		outbox:    outbox,
		publisher: publisher,
		metrics:   m,
		interval:  interval,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger,
	}
}

// Start launches background delivery.
func (r *EventRelay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	jobs := make(chan events.Event, r.batchSize*r.workers)

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx, jobs)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx, jobs)
}

// Stop waits for all workers to finish. Undelivered events stay in the outbox.
func (r *EventRelay) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

// Flush publishes whatever is left in the outbox synchronously.
// It stops at the first failure or when ctx is done.
func (r *EventRelay) Flush(ctx context.Context) error {
	for r.outbox.Len() > 0 {
		batch := r.outbox.Fetch(r.batchSize)
		for i, event := range batch {
			if err := r.publish(ctx, event); err != nil {
				r.outbox.Requeue(batch[i:])
				r.observeOutbox()
				return err
			}
		}
	}
	r.observeOutbox()
	return nil
}

func (r *EventRelay) dispatch(ctx context.Context, jobs chan<- events.Event) {
	defer r.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx, jobs)
		}
	}
}

func (r *EventRelay) fetchAndDispatch(ctx context.Context, jobs chan<- events.Event) {
	defer r.observeOutbox()

	batch := r.outbox.Fetch(r.batchSize)
	for i, event := range batch {
		select {
		case <-ctx.Done():
			r.outbox.Requeue(batch[i:])
			return
		case jobs <- event:
		}
	}
}

func (r *EventRelay) worker(ctx context.Context, jobs <-chan events.Event) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			r.drain(jobs)
			return
		case event, ok := <-jobs:
			if !ok {
				return
			}
			if err := r.publish(ctx, event); err != nil {
				r.outbox.Requeue([]events.Event{event})
			}
		}
	}
}

// drain returns buffered jobs to the outbox once the relay is stopping.
func (r *EventRelay) drain(jobs <-chan events.Event) {
	var pending []events.Event
	for event := range jobs {
		pending = append(pending, event)
	}
	r.outbox.Requeue(pending)
}

func (r *EventRelay) publish(ctx context.Context, event events.Event) error {
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.metrics.EventsFailed.WithLabelValues(string(event.Type)).Inc()
		r.logger.Warn("event delivery failed",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
		return err
	}
	r.metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()
	return nil
}

func (r *EventRelay) observeOutbox() {
	r.metrics.OutboxPending.Set(float64(r.outbox.Len()))

	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := r.outbox.Dropped()
	if dropped > r.lastDropped {
		r.metrics.OutboxDropped.Add(float64(dropped - r.lastDropped))
		r.lastDropped = dropped
	}
}
