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

func TestIssueQuoteCommandHandler_Handle_QuotesDraftOrder(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.Draft, nil, nil)

	cmd, err := commands.NewIssueQuoteCommand(testOrder.ID(), 14)
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

	notifier := new(MockNotifier)
	notifier.On("QuoteIssued", ctx, testOrder).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.AnythingOfType("ports.OrderStatusChangedEvent")).Once()

	handler := commands.NewIssueQuoteCommandHandler(factory, notifier, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Quoted, testOrder.Status())
	require.NotNil(t, testOrder.QuoteExpiresAt())
	assert.Equal(t, 14, testOrder.QuoteExpirationDays())

	event := publisher.Calls[0].Arguments[0].(ports.OrderStatusChangedEvent)
	assert.Equal(t, order.Draft.String(), event.FromStatus)
	assert.Equal(t, order.Quoted.String(), event.ToStatus)

	notifier.AssertExpectations(t)
}

func TestIssueQuoteCommandHandler_Handle_ZeroDaysUsesOrderDefault(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.Draft, nil, nil)

	cmd, err := commands.NewIssueQuoteCommand(testOrder.ID(), 0)
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

	notifier := new(MockNotifier)
	notifier.On("QuoteIssued", ctx, testOrder).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.Anything).Once()

	handler := commands.NewIssueQuoteCommandHandler(factory, notifier, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.DefaultQuoteExpirationDays, testOrder.QuoteExpirationDays())
}

func TestIssueQuoteCommandHandler_Handle_NonDraftOrderFails(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.InQueue, nil, nil)

	cmd, err := commands.NewIssueQuoteCommand(testOrder.ID(), 0)
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

	notifier := new(MockNotifier)
	publisher := new(MockEventPublisher)

	handler := commands.NewIssueQuoteCommandHandler(factory, notifier, publisher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "QuoteIssued", mock.Anything, mock.Anything)
}

func TestNewIssueQuoteCommand_NegativeDays(t *testing.T) {
	_, err := commands.NewIssueQuoteCommand(kernel.NewUUID(), -1)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrExpirationDaysAreInvalid)
}
