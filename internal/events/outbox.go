package events

import "sync"

// Outbox is a bounded FIFO of events awaiting delivery.
// When full, the oldest events are dropped.
type Outbox struct {
	mu       sync.Mutex
	queue    []Event
	capacity int
	dropped  uint64
}

// NewOutbox creates outbox holding at most capacity events.
func NewOutbox(capacity int) *Outbox {
	if capacity <= 0 {
		capacity = 1
	}
	return &Outbox{capacity: capacity}
}

// Enqueue appends event to the tail.
func (o *Outbox) Enqueue(e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.queue = append(o.queue, e)
	o.trimLocked()
}

// Fetch removes and returns up to limit events from the head.
func (o *Outbox) Fetch(limit int) []Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	if limit <= 0 || len(o.queue) == 0 {
		return nil
	}
	n := min(limit, len(o.queue))
	batch := make([]Event, n)
	copy(batch, o.queue[:n])
	o.queue = append(o.queue[:0:0], o.queue[n:]...)
	return batch
}

// Requeue puts undelivered events back at the head in their original order.
func (o *Outbox) Requeue(events []Event) {
	if len(events) == 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.queue = append(append(make([]Event, 0, len(events)+len(o.queue)), events...), o.queue...)
	o.trimLocked()
}

// Len returns number of pending events.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.queue)
}

// Dropped returns number of events discarded due to capacity.
func (o *Outbox) Dropped() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dropped
}

func (o *Outbox) trimLocked() {
	if over := len(o.queue) - o.capacity; over > 0 {
		o.queue = append(o.queue[:0:0], o.queue[over:]...)
		o.dropped += uint64(over)
	}
}
