package commands

import (
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrPlannedQtyIsInvalid = errors.New("planned quantity must be greater than 0")
	ErrStepsAreRequired    = errors.New("at least one workflow step is required")
)

// CreateBatchCommand represents a request to open a production batch for a
// queued order. Creating the order's first batch also moves the order into
// production.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID      kernel.UUID
	orderID      kernel.UUID
	plannedQty   int
	priority     int
	plannedStart *time.Time
	stepNames    []string

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to open a production batch.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	orderID kernel.UUID,
	plannedQty int,
	priority int,
	plannedStart *time.Time,
	stepNames []string,
) (CreateBatchCommand, error) {
	batchCommand := CreateBatchCommand{
		guard:        guard.NewConstructorGuard(),
		priority:     priority,
		plannedStart: plannedStart,
	}

	if err := errors.Join(
		batchCommand.setBatchID(batchID),
		batchCommand.setOrderID(orderID),
		batchCommand.setPlannedQty(plannedQty),
		batchCommand.setStepNames(stepNames),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the new batch.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OrderID returns the order the batch produces.
func (c CreateBatchCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PlannedQty returns the planned production quantity.
func (c CreateBatchCommand) PlannedQty() int {
	return c.plannedQty
}

// Priority returns the queue priority index (lower runs first).
func (c CreateBatchCommand) Priority() int {
	return c.priority
}

// PlannedStart returns the planned start time, or nil.
func (c CreateBatchCommand) PlannedStart() *time.Time {
	return c.plannedStart
}

// StepNames returns the ordered workflow step names.
func (c CreateBatchCommand) StepNames() []string {
	return c.stepNames
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateBatchCommand) setPlannedQty(qty int) error {
	if qty <= 0 {
		return ErrPlannedQtyIsInvalid
	}

	c.plannedQty = qty
	return nil
}

func (c *CreateBatchCommand) setStepNames(names []string) error {
	if len(names) == 0 {
		return ErrStepsAreRequired
	}

	c.stepNames = names
	return nil
}
