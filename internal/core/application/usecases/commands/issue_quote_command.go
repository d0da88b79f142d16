package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrIssueQuoteCommandIsNotConstructed = errors.New(
		"IssueQuoteCommand must be created via NewIssueQuoteCommand constructor",
	)
	ErrExpirationDaysAreInvalid = errors.New("expiration days must not be negative")
)

// IssueQuoteCommand represents a request to quote a draft order. A zero
// expirationDays applies the order's configured validity window.
type IssueQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	expirationDays int

	guard guard.ConstructorGuard
}

// NewIssueQuoteCommand creates a command to quote a draft order.
func NewIssueQuoteCommand(orderID kernel.UUID, expirationDays int) (IssueQuoteCommand, error) {
	quoteCommand := IssueQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quoteCommand.setOrderID(orderID),
		quoteCommand.setExpirationDays(expirationDays),
	); err != nil {
		return IssueQuoteCommand{}, err
	}

	return quoteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueQuoteCommand) Validate() error {
	return c.guard.Validate(ErrIssueQuoteCommandIsNotConstructed)
}

// OrderID returns the order to quote.
func (c IssueQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExpirationDays returns the requested validity window in days; zero means
// the order's default.
func (c IssueQuoteCommand) ExpirationDays() int {
	return c.expirationDays
}

func (c *IssueQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *IssueQuoteCommand) setExpirationDays(days int) error {
	if days < 0 {
		return ErrExpirationDaysAreInvalid
	}

	c.expirationDays = days
	return nil
}
