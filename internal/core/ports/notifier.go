package ports

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// Notifier delivers customer and staff notifications over email and SMS.
//
// Delivery is best-effort by contract: callers log a returned error and
// carry on; a failed notification never rolls back or blocks the order
// state change that triggered it. The composition root wraps the concrete
// gateways in a decorator that enforces this.
type Notifier interface {
	// QuoteIssued tells the customer a quote is ready for review.
	QuoteIssued(ctx context.Context, o *order.Order) error

	// QuoteExpiring reminds the customer a quote expires within the
	// reminder window.
	QuoteExpiring(ctx context.Context, o *order.Order) error

	// QuoteExpired tells the customer and staff a quote lapsed and the
	// order was reset to draft.
	QuoteExpired(ctx context.Context, o *order.Order) error

	// QuoteRenewed tells the customer the quote expiry was extended.
	QuoteRenewed(ctx context.Context, o *order.Order) error

	// DecisionRecorded tells staff the customer accepted or rejected.
	DecisionRecorded(ctx context.Context, o *order.Order, action order.ActionType) error

	// OrderShipped sends the customer the tracking number.
	OrderShipped(ctx context.Context, o *order.Order, trackingNumber string) error
}
