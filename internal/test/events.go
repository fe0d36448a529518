package test

import (
	"context"
	"sync"

	"github.com/polkiloo/autoservice/internal/events"
)

// PublisherStub records published events and can fail on demand.
type PublisherStub struct {
	sync.Mutex
	PublishFn func(context.Context, events.Event) error
	Events    []events.Event
	Attempts  int
}

// Publish records event unless PublishFn returns an error.
func (s *PublisherStub) Publish(ctx context.Context, event events.Event) error {
	s.Lock()
	s.Attempts++
	fn := s.PublishFn
	s.Unlock()

	if fn != nil {
		if err := fn(ctx, event); err != nil {
			return err
		}
	}

	s.Lock()
	s.Events = append(s.Events, event)
	s.Unlock()
	return nil
}

// Published returns a copy of recorded events.
func (s *PublisherStub) Published() []events.Event {
	s.Lock()
	defer s.Unlock()
	return append([]events.Event(nil), s.Events...)
}
