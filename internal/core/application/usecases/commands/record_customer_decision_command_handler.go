package commands

import (
	"context"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// RecordCustomerDecisionCommandHandler applies a quote accept or reject.
// Acceptance is checked against the quote expiration server-side: a stale
// acceptance fails here no matter what the customer's screen showed.
type RecordCustomerDecisionCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   ports.Notifier
	publisher  ports.EventPublisher
}

// NewRecordCustomerDecisionCommandHandler creates a handler for customer
// quote decisions.
func NewRecordCustomerDecisionCommandHandler(
	uowFactory QuoteUoWFactory,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
) RecordCustomerDecisionCommandHandler {
	return RecordCustomerDecisionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// Handle processes the decision. The order state change and the action log
// entry commit in one transaction; notifications go out after.
func (h *RecordCustomerDecisionCommandHandler) Handle(
	ctx context.Context,
	cmd RecordCustomerDecisionCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	actionRepo := uow.QuoteActionRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	switch cmd.Decision() {
	case order.ActionAccept:
		err = aggregate.Accept(now)
	case order.ActionReject:
		err = aggregate.Reject()
	}
	if err != nil {
		return err
	}

	action, err := order.NewQuoteAction(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.Decision(),
		cmd.Notes(),
		cmd.ActorID(),
		now,
	)
	if err != nil {
		return err
	}

	if err = actionRepo.Add(ctx, action); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.DecisionRecorded(ctx, aggregate, cmd.Decision())
	publishStatusChange(h.publisher, aggregate, from)
	return nil
}
