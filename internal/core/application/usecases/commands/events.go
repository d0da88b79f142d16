package commands

import (
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// publishStatusChange emits an order-changed event after a successful
// commit. It is a no-op when the status did not actually change, so
// idempotent commands do not flood the topic.
func publishStatusChange(publisher ports.EventPublisher, o *order.Order, from order.Status) {
	if from == o.Status() {
		return
	}

	publisher.PublishStatusChanged(ports.OrderStatusChangedEvent{
		OrderID:    o.ID().String(),
		OrderCode:  o.Code(),
		FromStatus: from.String(),
		ToStatus:   o.Status().String(),
		OccurredAt: time.Now().UTC(),
	})
}
