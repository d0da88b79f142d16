package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentKindIsInvalid = errors.New("payment kind is invalid")
)

// PaymentKind classifies a recorded payment.
type PaymentKind int

const (
	// PaymentUnknown catches uninitialized values.
	PaymentUnknown PaymentKind = iota

	// PaymentDepositPartial is a partial deposit payment; the order stays
	// parked until the deposit settles in full.
	PaymentDepositPartial

	// PaymentDeposit settles the deposit and releases the order into the
	// production queue.
	PaymentDeposit

	// PaymentFinal settles the final invoice and releases the order for
	// shipping.
	PaymentFinal
)

// RecordPaymentCommand represents a payment recorded against an order.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    PaymentKind

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(orderID kernel.UUID, kind PaymentKind) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setKind(kind),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order the payment applies to.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the payment classification.
func (c RecordPaymentCommand) Kind() PaymentKind {
	return c.kind
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setKind(kind PaymentKind) error {
	switch kind {
	case PaymentDepositPartial, PaymentDeposit, PaymentFinal:
		c.kind = kind
		return nil
	default:
		return ErrPaymentKindIsInvalid
	}
}
