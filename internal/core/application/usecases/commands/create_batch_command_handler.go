package commands

import (
	"context"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// CreateBatchCommandHandler opens a production batch for an order. The
// first batch pulls the order out of the queue into production; further
// batches attach to an order already in production.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
func NewCreateBatchCommandHandler(
	uowFactory BatchUoWFactory,
	publisher ports.EventPublisher,
) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the batch creation command.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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
	batchRepo := uow.BatchRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if aggregate.Status() != order.InProduction {
		if err = aggregate.StartProduction(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	newBatch, err := batch.NewBatch(
		cmd.BatchID(),
		cmd.OrderID(),
		cmd.PlannedQty(),
		cmd.Priority(),
		cmd.PlannedStart(),
		cmd.StepNames(),
	)
	if err != nil {
		return err
	}

	if err = batchRepo.Add(ctx, newBatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(h.publisher, aggregate, from)
	return nil
}
