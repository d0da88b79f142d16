package commands

import (
	"errors"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/guard"
)

var (
	ErrRecordCustomerDecisionCommandIsNotConstructed = errors.New(
		"RecordCustomerDecisionCommand must be created via NewRecordCustomerDecisionCommand constructor",
	)
	ErrDecisionIsInvalid = errors.New("decision must be accept or reject")
)

// RecordCustomerDecisionCommand represents a customer accepting or
// rejecting an outstanding quote. The decision lands in the append-only
// quote action log alongside the order state change.
type RecordCustomerDecisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	decision order.ActionType
	notes    string
	actorID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordCustomerDecisionCommand creates a command for a customer quote
// decision. Only accept and reject are valid decisions; actorID may be nil
// when the decision arrives through an unauthenticated customer link.
func NewRecordCustomerDecisionCommand(
	orderID kernel.UUID,
	decision order.ActionType,
	notes string,
	actorID *kernel.UUID,
) (RecordCustomerDecisionCommand, error) {
	decisionCommand := RecordCustomerDecisionCommand{
		guard: guard.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(
		decisionCommand.setOrderID(orderID),
		decisionCommand.setDecision(decision),
		decisionCommand.setActorID(actorID),
	); err != nil {
		return RecordCustomerDecisionCommand{}, err
	}

	return decisionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCustomerDecisionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCustomerDecisionCommandIsNotConstructed)
}

// OrderID returns the order the decision applies to.
func (c RecordCustomerDecisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Decision returns the customer's decision.
func (c RecordCustomerDecisionCommand) Decision() order.ActionType {
	return c.decision
}

// Notes returns the free-form notes attached to the decision.
func (c RecordCustomerDecisionCommand) Notes() string {
	return c.notes
}

// ActorID returns the acting user, or nil.
func (c RecordCustomerDecisionCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *RecordCustomerDecisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordCustomerDecisionCommand) setDecision(decision order.ActionType) error {
	if decision != order.ActionAccept && decision != order.ActionReject {
		return ErrDecisionIsInvalid
	}

	c.decision = decision
	return nil
}

func (c *RecordCustomerDecisionCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
