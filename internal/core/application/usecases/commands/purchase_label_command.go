package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrPurchaseLabelCommandIsNotConstructed = errors.New(
	"PurchaseLabelCommand must be created via NewPurchaseLabelCommand constructor",
)

// PurchaseLabelCommand represents a request to buy a carrier shipping
// label for a ready-to-ship order. Address and parcel completeness are
// checked here, before any carrier call.
type PurchaseLabelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address shipment.Address
	parcel  shipment.Parcel

	guard guard.ConstructorGuard
}

// NewPurchaseLabelCommand creates a command to purchase a shipping label.
func NewPurchaseLabelCommand(
	orderID kernel.UUID,
	address shipment.Address,
	parcel shipment.Parcel,
) (PurchaseLabelCommand, error) {
	labelCommand := PurchaseLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		labelCommand.setOrderID(orderID),
		labelCommand.setAddress(address),
		labelCommand.setParcel(parcel),
	); err != nil {
		return PurchaseLabelCommand{}, err
	}

	return labelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurchaseLabelCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseLabelCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c PurchaseLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the validated shipping destination.
func (c PurchaseLabelCommand) Address() shipment.Address {
	return c.address
}

// Parcel returns the validated package dimensions and weight.
func (c PurchaseLabelCommand) Parcel() shipment.Parcel {
	return c.parcel
}

func (c *PurchaseLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PurchaseLabelCommand) setAddress(address shipment.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *PurchaseLabelCommand) setParcel(parcel shipment.Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}

	c.parcel = parcel
	return nil
}
