package commands

import (
	"context"
	"time"
)

// StartBatchStepCommandHandler starts one workflow step of a batch. The
// aggregate rejects the start when any other step of the same batch is in
// progress, whichever terminal the request came from.
type StartBatchStepCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewStartBatchStepCommandHandler creates a handler for starting workflow
// steps.
func NewStartBatchStepCommandHandler(uowFactory BatchUoWFactory) StartBatchStepCommandHandler {
	return StartBatchStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the step start command.
func (h *StartBatchStepCommandHandler) Handle(ctx context.Context, cmd StartBatchStepCommand) error {
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

	batchRepo := uow.BatchRepository()
	aggregate, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = aggregate.StartStep(cmd.StepIndex(), time.Now()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
