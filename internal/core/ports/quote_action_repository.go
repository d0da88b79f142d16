package ports

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// QuoteActionRepository defines the persistence contract for the append-only
// quote action log.
type QuoteActionRepository interface {
	// Add appends a quote action record. Actions are never updated or
	// deleted.
	Add(ctx context.Context, action *order.QuoteAction) error

	// GetAllForOrder retrieves the action history for an order, newest
	// first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.QuoteAction, error)

	// GetLatestRenewal retrieves the most recent renewal action for an
	// order, or an ObjectNotFoundError when no renewal exists. Backs the
	// 24-hour renewal cooldown.
	GetLatestRenewal(ctx context.Context, orderID kernel.UUID) (*order.QuoteAction, error)
}
