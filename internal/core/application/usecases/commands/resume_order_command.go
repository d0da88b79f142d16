package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand represents staff releasing an on-hold order back to
// the status it was held from.
type ResumeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume an on-hold order.
func NewResumeOrderCommand(orderID kernel.UUID) (ResumeOrderCommand, error) {
	resumeCommand := ResumeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resumeCommand.setOrderID(orderID); err != nil {
		return ResumeOrderCommand{}, err
	}

	return resumeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// OrderID returns the order to resume.
func (c ResumeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResumeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
