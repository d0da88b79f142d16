package commands_test

import (
	"testing"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CancelsNonTerminalOrder(t *testing.T) {
	testCases := []struct {
		name string
		from order.Status
	}{
		{"draft", order.Draft},
		{"quoted", order.Quoted},
		{"in production", order.InProduction},
		{"on hold", order.OnHoldCustomer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			testOrder := restoreOrderInStatus(t, tc.from, nil, nil)

			cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
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

			handler := commands.NewCancelOrderCommandHandler(factory, publisher)
			err = handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, testOrder.Status())

			event := publisher.Calls[0].Arguments[0].(ports.OrderStatusChangedEvent)
			assert.Equal(t, tc.from.String(), event.FromStatus)
			assert.Equal(t, order.Cancelled.String(), event.ToStatus)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_TerminalOrderFails(t *testing.T) {
	testCases := []struct {
		name string
		from order.Status
	}{
		{"shipped", order.Shipped},
		{"cancelled", order.Cancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			testOrder := restoreOrderInStatus(t, tc.from, nil, nil)

			cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
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

			handler := commands.NewCancelOrderCommandHandler(factory, new(MockEventPublisher))
			err = handler.Handle(ctx, cmd)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}
