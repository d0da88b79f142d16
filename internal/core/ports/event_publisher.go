package ports

import (
	"time"
)

// OrderStatusChangedEvent is published to the order-changed topic whenever
// a state-changing use case commits. Downstream consumers (analytics, the
// customer portal) react to these; publishing is fire-and-forget and never
// affects the committed state change.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	// PublishStatusChanged enqueues a status-changed event. The call never
	// blocks on broker I/O; delivery errors are logged by the publisher.
	PublishStatusChanged(event OrderStatusChangedEvent)
}
