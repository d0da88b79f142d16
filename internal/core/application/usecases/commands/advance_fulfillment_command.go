package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrAdvanceFulfillmentCommandIsNotConstructed = errors.New(
	"AdvanceFulfillmentCommand must be created via NewAdvanceFulfillmentCommand constructor",
)

// AdvanceFulfillmentCommand represents staff moving an order one step
// along the fulfillment pipeline between production and the final payment
// gate.
type AdvanceFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceFulfillmentCommand creates a command to advance fulfillment.
func NewAdvanceFulfillmentCommand(orderID kernel.UUID) (AdvanceFulfillmentCommand, error) {
	advanceCommand := AdvanceFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setOrderID(orderID); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AdvanceFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
