// Package orderevents publishes order status changes to Kafka.
//
// Events are keyed by order ID so every status change of one order lands on
// the same partition and consumers observe the changes in order. The command
// layer treats publishing as best-effort; this adapter only reports the
// error, it never retries.
package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"foodcourt/internal/core/ports"
)

// messageWriter is the slice of kafka.Writer this adapter needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaOrderEventPublisher implements ports.OrderEventPublisher on a Kafka
// topic.
type KafkaOrderEventPublisher struct {
	writer messageWriter
}

// NewKafkaOrderEventPublisher creates a publisher writing to the given
// writer. The writer's topic is configured at construction by the caller.
func NewKafkaOrderEventPublisher(writer messageWriter) *KafkaOrderEventPublisher {
	return &KafkaOrderEventPublisher{writer: writer}
}

// NewWriter builds a kafka.Writer for the order events topic.
func NewWriter(broker string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// orderEventDTO is the published JSON shape of an order status change.
type orderEventDTO struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publish writes the event to the topic, keyed by order ID.
func (p *KafkaOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	dto := orderEventDTO{
		OrderID:    event.OrderID.String(),
		Status:     event.Status,
		OccurredAt: event.OccurredAt,
	}

	value, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(dto.OrderID),
		Value: value,
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}
