package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrVoidLabelCommandIsNotConstructed = errors.New(
	"VoidLabelCommand must be created via NewVoidLabelCommand constructor",
)

// VoidLabelCommand represents a request to void the live shipping label of
// an order.
type VoidLabelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVoidLabelCommand creates a command to void an order's live label.
func NewVoidLabelCommand(orderID kernel.UUID) (VoidLabelCommand, error) {
	voidCommand := VoidLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := voidCommand.setOrderID(orderID); err != nil {
		return VoidLabelCommand{}, err
	}

	return voidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VoidLabelCommand) Validate() error {
	return c.guard.Validate(ErrVoidLabelCommandIsNotConstructed)
}

// OrderID returns the order whose label is voided.
func (c VoidLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *VoidLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
