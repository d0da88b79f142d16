package commands

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// AdvanceFulfillmentCommandHandler moves an order one hop along the fixed
// fulfillment chain. Hops cannot be skipped; each advance is one hop.
type AdvanceFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAdvanceFulfillmentCommandHandler creates a handler for fulfillment
// advances.
func NewAdvanceFulfillmentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) AdvanceFulfillmentCommandHandler {
	return AdvanceFulfillmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the advance command.
func (h *AdvanceFulfillmentCommandHandler) Handle(ctx context.Context, cmd AdvanceFulfillmentCommand) error {
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
	if err = aggregate.AdvanceFulfillment(); err != nil {
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
