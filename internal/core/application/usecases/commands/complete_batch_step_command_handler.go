package commands

import (
	"context"
	"time"
)

// CompleteBatchStepCommandHandler finishes one workflow step of a batch.
// When the last step completes the batch is done.
type CompleteBatchStepCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCompleteBatchStepCommandHandler creates a handler for completing
// workflow steps.
func NewCompleteBatchStepCommandHandler(uowFactory BatchUoWFactory) CompleteBatchStepCommandHandler {
	return CompleteBatchStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the step completion command.
func (h *CompleteBatchStepCommandHandler) Handle(ctx context.Context, cmd CompleteBatchStepCommand) error {
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

	if err = aggregate.CompleteStep(cmd.StepIndex(), time.Now()); err != nil {
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
