package commands

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// RecordPaymentCommandHandler applies a payment to an order. Settling the
// deposit is the only way a deposit-carrying order leaves DepositDue for
// the production queue.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment command.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	switch cmd.Kind() {
	case PaymentDepositPartial:
		err = aggregate.RecordDepositPartial()
	case PaymentDeposit:
		err = aggregate.RecordDepositPaid()
	case PaymentFinal:
		err = aggregate.RecordFinalPaid()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(h.publisher, aggregate, from)
	return nil
}
