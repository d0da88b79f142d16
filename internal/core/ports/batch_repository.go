package ports

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for production batches.
type BatchRepository interface {
	// Add persists a new batch with its workflow steps.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists step and status changes to an existing batch.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetAllForOrder retrieves all batches for a sales order ordered by
	// priority.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*batch.Batch, error)
}
