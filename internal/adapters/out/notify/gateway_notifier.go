package notify

import (
	"context"
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// Template names known to the messaging relay.
const (
	templateQuoteIssued      = "quote_issued"
	templateQuoteExpiring    = "quote_expiring"
	templateQuoteExpired     = "quote_expired"
	templateQuoteRenewed     = "quote_renewed"
	templateDecisionRecorded = "decision_recorded"
	templateOrderShipped     = "order_shipped"
)

// GatewayNotifier implements the Notifier port on top of the email and SMS
// relay clients. Quote lifecycle messages go out by email; the expiring
// reminder and the shipped confirmation additionally go by SMS because
// both are time-sensitive for the customer.
type GatewayNotifier struct {
	email channel
	sms   channel
}

// NewGatewayNotifier creates a notifier using the given relay channels.
func NewGatewayNotifier(email, sms channel) *GatewayNotifier {
	return &GatewayNotifier{
		email: email,
		sms:   sms,
	}
}

// QuoteIssued tells the customer a quote is ready for review.
func (n *GatewayNotifier) QuoteIssued(ctx context.Context, o *order.Order) error {
	return n.email.Send(ctx, Message{
		OrderCode: o.Code(),
		Template:  templateQuoteIssued,
		Params:    quoteParams(o),
	})
}

// QuoteExpiring reminds the customer a quote expires soon.
func (n *GatewayNotifier) QuoteExpiring(ctx context.Context, o *order.Order) error {
	message := Message{
		OrderCode: o.Code(),
		Template:  templateQuoteExpiring,
		Params:    quoteParams(o),
	}
	return errors.Join(
		n.email.Send(ctx, message),
		n.sms.Send(ctx, message),
	)
}

// QuoteExpired tells the customer and staff a quote lapsed.
func (n *GatewayNotifier) QuoteExpired(ctx context.Context, o *order.Order) error {
	return n.email.Send(ctx, Message{
		OrderCode: o.Code(),
		Template:  templateQuoteExpired,
	})
}

// QuoteRenewed tells the customer the quote expiry was extended.
func (n *GatewayNotifier) QuoteRenewed(ctx context.Context, o *order.Order) error {
	return n.email.Send(ctx, Message{
		OrderCode: o.Code(),
		Template:  templateQuoteRenewed,
		Params:    quoteParams(o),
	})
}

// DecisionRecorded tells staff the customer accepted or rejected.
func (n *GatewayNotifier) DecisionRecorded(ctx context.Context, o *order.Order, action order.ActionType) error {
	return n.email.Send(ctx, Message{
		OrderCode: o.Code(),
		Template:  templateDecisionRecorded,
		Params: map[string]string{
			"decision": action.String(),
		},
	})
}

// OrderShipped sends the customer the tracking number.
func (n *GatewayNotifier) OrderShipped(ctx context.Context, o *order.Order, trackingNumber string) error {
	message := Message{
		OrderCode: o.Code(),
		Template:  templateOrderShipped,
		Params: map[string]string{
			"tracking_number": trackingNumber,
		},
	}
	return errors.Join(
		n.email.Send(ctx, message),
		n.sms.Send(ctx, message),
	)
}

func quoteParams(o *order.Order) map[string]string {
	params := map[string]string{}
	if expiresAt := o.QuoteExpiresAt(); expiresAt != nil {
		params["expires_at"] = expiresAt.UTC().Format(time.RFC3339)
	}
	return params
}
