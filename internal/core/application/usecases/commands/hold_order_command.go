package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrHoldOrderCommandIsNotConstructed = errors.New(
		"HoldOrderCommand must be created via NewHoldOrderCommand constructor",
	)
	ErrHoldTargetIsInvalid = errors.New("hold target must be one of the hold statuses")
)

// HoldOrderCommand represents staff parking an order in one of the hold
// states.
type HoldOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewHoldOrderCommand creates a command to put an order on hold. The
// target names which hold bucket applies: customer, internal, or
// materials.
func NewHoldOrderCommand(orderID kernel.UUID, target order.Status) (HoldOrderCommand, error) {
	holdCommand := HoldOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		holdCommand.setOrderID(orderID),
		holdCommand.setTarget(target),
	); err != nil {
		return HoldOrderCommand{}, err
	}

	return holdCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldOrderCommand) Validate() error {
	return c.guard.Validate(ErrHoldOrderCommandIsNotConstructed)
}

// OrderID returns the order to hold.
func (c HoldOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the hold status to park the order in.
func (c HoldOrderCommand) Target() order.Status {
	return c.target
}

func (c *HoldOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *HoldOrderCommand) setTarget(target order.Status) error {
	if !target.IsOnHold() {
		return ErrHoldTargetIsInvalid
	}

	c.target = target
	return nil
}
