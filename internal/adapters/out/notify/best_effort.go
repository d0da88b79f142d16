package notify

import (
	"context"
	"log/slog"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// BestEffortNotifier wraps a Notifier so relay failures are logged and
// swallowed. A state change that already committed must never surface a
// notification error to its caller.
type BestEffortNotifier struct {
	inner  ports.Notifier
	logger *slog.Logger
}

// NewBestEffortNotifier wraps inner with error-swallowing delivery.
func NewBestEffortNotifier(inner ports.Notifier, logger *slog.Logger) *BestEffortNotifier {
	return &BestEffortNotifier{
		inner:  inner,
		logger: logger.With("component", "notifier"),
	}
}

func (n *BestEffortNotifier) QuoteIssued(ctx context.Context, o *order.Order) error {
	n.log(o, "quote_issued", n.inner.QuoteIssued(ctx, o))
	return nil
}

func (n *BestEffortNotifier) QuoteExpiring(ctx context.Context, o *order.Order) error {
	n.log(o, "quote_expiring", n.inner.QuoteExpiring(ctx, o))
	return nil
}

func (n *BestEffortNotifier) QuoteExpired(ctx context.Context, o *order.Order) error {
	n.log(o, "quote_expired", n.inner.QuoteExpired(ctx, o))
	return nil
}

func (n *BestEffortNotifier) QuoteRenewed(ctx context.Context, o *order.Order) error {
	n.log(o, "quote_renewed", n.inner.QuoteRenewed(ctx, o))
	return nil
}

func (n *BestEffortNotifier) DecisionRecorded(ctx context.Context, o *order.Order, action order.ActionType) error {
	n.log(o, "decision_recorded", n.inner.DecisionRecorded(ctx, o, action))
	return nil
}

func (n *BestEffortNotifier) OrderShipped(ctx context.Context, o *order.Order, trackingNumber string) error {
	n.log(o, "order_shipped", n.inner.OrderShipped(ctx, o, trackingNumber))
	return nil
}

func (n *BestEffortNotifier) log(o *order.Order, event string, err error) {
	if err == nil {
		return
	}
	n.logger.Warn("notification delivery failed",
		"event", event, "order_code", o.Code(), "error", err)
}
