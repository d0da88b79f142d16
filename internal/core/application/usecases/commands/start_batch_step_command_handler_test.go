package commands_test

import (
	"testing"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func queuedBatch(t *testing.T) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), 500, 1, nil,
		[]string{"mixing", "filling", "labeling"})
	require.NoError(t, err)
	return b
}

func TestStartBatchStepCommandHandler_Handle_StartsStepAndBatch(t *testing.T) {
	ctx := t.Context()
	testBatch := queuedBatch(t)

	cmd, err := commands.NewStartBatchStepCommand(testBatch.ID(), 0)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, testBatch.ID()).Return(testBatch, nil).Once(),
		batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.Batch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartBatchStepCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, batch.WIP, testBatch.Status())
	assert.Equal(t, 0, testBatch.ActiveStep())
	assert.Equal(t, batch.StepWIP, testBatch.Steps()[0].Status())
	assert.NotNil(t, testBatch.ActualStart())
}

func TestStartBatchStepCommandHandler_Handle_SecondActiveStepFails(t *testing.T) {
	ctx := t.Context()
	testBatch := queuedBatch(t)
	require.NoError(t, testBatch.StartStep(0, time.Now()))

	cmd, err := commands.NewStartBatchStepCommand(testBatch.ID(), 1)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, testBatch.ID()).Return(testBatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartBatchStepCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, batch.ErrStepAlreadyActive)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewStartBatchStepCommand_NegativeIndex(t *testing.T) {
	_, err := commands.NewStartBatchStepCommand(kernel.NewUUID(), -1)
	require.Error(t, err)
}
