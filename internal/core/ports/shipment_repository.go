package ports

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for carrier shipments.
type ShipmentRepository interface {
	// Add persists a new shipment record.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes (currently only voiding) to a shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetLiveByOrder retrieves the order's non-voided shipment, or an
	// ObjectNotFoundError when none exists. An order has at most one live
	// shipment.
	GetLiveByOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)
}
