// Package kafka publishes order lifecycle events to the order-changed
// topic. Publishing is fire-and-forget: a broker outage must never fail a
// committed state change, so delivery errors are only logged.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// StatusChangedPublisher implements ports.EventPublisher on top of a
// kafka-go writer. Events are buffered in an inbox channel and written by a
// background goroutine so handlers never block on broker I/O.
type StatusChangedPublisher struct {
	writer *kafka.Writer
	inbox  chan kafka.Message
	closed chan struct{}
	logger *slog.Logger
}

// NewStatusChangedPublisher creates a publisher for the given brokers and
// topic. Start must be called before the first publish.
func NewStatusChangedPublisher(brokers []string, topic string, bufferSize int, logger *slog.Logger) *StatusChangedPublisher {
	return &StatusChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:  make(chan kafka.Message, bufferSize),
		closed: make(chan struct{}),
		logger: logger.With("component", "kafka_publisher"),
	}
}

// Start launches the background writer loop. The loop drains the inbox and
// exits after Close.
func (p *StatusChangedPublisher) Start() {
	go func() {
		defer close(p.closed)
		for message := range p.inbox {
			if err := p.writer.WriteMessages(context.Background(), message); err != nil {
				p.logger.Error("failed to publish status change",
					"key", string(message.Key), "error", err)
			}
		}
		if err := p.writer.Close(); err != nil {
			p.logger.Error("failed to close kafka writer", "error", err)
		}
	}()
}

// PublishStatusChanged enqueues a status-changed event. When the inbox is
// full the event is dropped with a log line rather than blocking the
// caller.
func (p *StatusChangedPublisher) PublishStatusChanged(event ports.OrderStatusChangedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal status change event",
			"order_id", event.OrderID, "error", err)
		return
	}

	message := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  event.OccurredAt,
	}

	select {
	case p.inbox <- message:
	default:
		p.logger.Warn("event buffer full, dropping status change",
			"order_id", event.OrderID, "to_status", event.ToStatus)
	}
}

// Close stops accepting events, flushes the remaining buffer, and waits for
// the writer loop to exit.
func (p *StatusChangedPublisher) Close() {
	close(p.inbox)
	<-p.closed
}
