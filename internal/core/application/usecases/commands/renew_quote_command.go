package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrRenewQuoteCommandIsNotConstructed = errors.New(
	"RenewQuoteCommand must be created via NewRenewQuoteCommand constructor",
)

// RenewQuoteCommand represents a staff request to extend an outstanding
// quote's expiration. A zero expirationDays applies the order's configured
// validity window.
type RenewQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	expirationDays int
	actorID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRenewQuoteCommand creates a command to renew a quote.
func NewRenewQuoteCommand(
	orderID kernel.UUID,
	expirationDays int,
	actorID *kernel.UUID,
) (RenewQuoteCommand, error) {
	renewCommand := RenewQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		renewCommand.setOrderID(orderID),
		renewCommand.setExpirationDays(expirationDays),
		renewCommand.setActorID(actorID),
	); err != nil {
		return RenewQuoteCommand{}, err
	}

	return renewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RenewQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRenewQuoteCommandIsNotConstructed)
}

// OrderID returns the order whose quote is renewed.
func (c RenewQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExpirationDays returns the requested validity window in days; zero means
// the order's default.
func (c RenewQuoteCommand) ExpirationDays() int {
	return c.expirationDays
}

// ActorID returns the staff member renewing the quote, or nil.
func (c RenewQuoteCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *RenewQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RenewQuoteCommand) setExpirationDays(days int) error {
	if days < 0 {
		return ErrExpirationDaysAreInvalid
	}

	c.expirationDays = days
	return nil
}

func (c *RenewQuoteCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
