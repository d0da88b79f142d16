package commands

import (
	"context"
	"errors"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// VoidLabelCommandHandler voids an order's live shipping label and, when
// the order already shipped, reverts it to ready-to-ship. A carrier that
// reports the label as already voided is treated as success: the goal is a
// dead label, and it is dead.
type VoidLabelCommandHandler struct {
	uowFactory ShipmentUoWFactory
	carrier    ports.CarrierClient
	publisher  ports.EventPublisher
}

// NewVoidLabelCommandHandler creates a handler for label voids.
func NewVoidLabelCommandHandler(
	uowFactory ShipmentUoWFactory,
	carrier ports.CarrierClient,
	publisher ports.EventPublisher,
) VoidLabelCommandHandler {
	return VoidLabelCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		publisher:  publisher,
	}
}

// Handle processes the void command.
func (h *VoidLabelCommandHandler) Handle(ctx context.Context, cmd VoidLabelCommand) error {
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
	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	live, err := shipmentRepo.GetLiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.carrier.VoidLabel(ctx, live.TrackingNumber()); err != nil &&
		!errors.Is(err, ports.ErrLabelAlreadyVoided) {
		return err
	}

	if err = live.Void(time.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, live); err != nil {
		return err
	}

	from := aggregate.Status()
	if aggregate.Status() == order.Shipped {
		if err = aggregate.RevertShipment(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(h.publisher, aggregate, from)
	return nil
}
