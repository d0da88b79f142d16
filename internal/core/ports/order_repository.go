package ports

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is guarded by
	// the aggregate's version token: if the stored row carries a different
	// version the update fails with a VersionIsInvalidError and no data is
	// written. On success the aggregate's version is advanced.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInQuotedStatus retrieves every order currently holding an
	// outstanding quote. The expiration sweep partitions these by their
	// expiry timestamps.
	GetAllInQuotedStatus(ctx context.Context) ([]*order.Order, error)
}
