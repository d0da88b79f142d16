package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary spanning the order,
// quote action, batch, and shipment repositories. Client code manages the
// transaction lifecycle explicitly: Begin, repository operations, then
// Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// QuoteActionRepository returns a QuoteActionRepository bound to the
	// current transaction.
	QuoteActionRepository() QuoteActionRepository

	// BatchRepository returns a BatchRepository bound to the current
	// transaction.
	BatchRepository() BatchRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository
}
