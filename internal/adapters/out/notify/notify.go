// Package notify delivers customer and staff notifications through the
// internal messaging relay. The relay resolves recipients from the order
// code, so this package only carries the template name and its parameters.
package notify

import "context"

// Message is one notification handed to a relay channel.
type Message struct {
	OrderCode string            `json:"order_code"`
	Template  string            `json:"template"`
	Params    map[string]string `json:"params,omitempty"`
}

// channel is a single delivery transport (email or SMS relay).
type channel interface {
	Send(ctx context.Context, message Message) error
}
