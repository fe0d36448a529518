package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/polkiloo/autoservice/internal/events"
)

// writeBatchTimeout bounds how long a synchronous write waits for more
// messages. The relay writes one event per call.
const writeBatchTimeout = 10 * time.Millisecond

// messageWriter is the part of kafka.Writer used by Publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends domain events to a Kafka topic keyed by entity id,
// so every change of one order or appointment lands in the same partition.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewPublisher creates publisher writing to topic on the given brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: writeBatchTimeout,
	}
	return &Publisher{writer: writer, topic: topic, logger: logger}
}

// Publish writes event as JSON message.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Key),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event %s to %s: %w", event.ID, p.topic, err)
	}

	p.logger.Debug("event published", slog.String("event_id", event.ID), slog.String("topic", p.topic))
	return nil
}

// Close flushes pending writes and releases connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
