package commands

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// HoldOrderCommandHandler parks an order in a hold state. The aggregate
// remembers where it was held from so a resume restores it exactly.
type HoldOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewHoldOrderCommandHandler creates a handler for holding orders.
func NewHoldOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) HoldOrderCommandHandler {
	return HoldOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the hold command.
func (h *HoldOrderCommandHandler) Handle(ctx context.Context, cmd HoldOrderCommand) error {
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
	if err = aggregate.Hold(cmd.Target()); err != nil {
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
