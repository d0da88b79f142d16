package commands_test

import (
	"testing"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHoldOrderCommandHandler_Handle_ParksOrderAndRemembersOrigin(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.InProduction, nil, nil)

	cmd, err := commands.NewHoldOrderCommand(testOrder.ID(), order.OnHoldMaterials)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.AnythingOfType("ports.OrderStatusChangedEvent")).Once()

	handler := commands.NewHoldOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OnHoldMaterials, testOrder.Status())
	assert.Equal(t, order.InProduction, testOrder.HeldFrom())

	event := publisher.Calls[0].Arguments[0].(ports.OrderStatusChangedEvent)
	assert.Equal(t, order.InProduction.String(), event.FromStatus)
	assert.Equal(t, order.OnHoldMaterials.String(), event.ToStatus)
}

func TestHoldOrderCommandHandler_Handle_AlreadyOnHoldFails(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.OnHoldCustomer, nil, nil)

	cmd, err := commands.NewHoldOrderCommand(testOrder.ID(), order.OnHoldInternal)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewHoldOrderCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewHoldOrderCommand_NonHoldTarget(t *testing.T) {
	_, err := commands.NewHoldOrderCommand(kernel.NewUUID(), order.InQueue)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrHoldTargetIsInvalid)
}
