package commands_test

import (
	"testing"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAddress() shipment.Address {
	return shipment.Address{
		Name:       "Dana Fields",
		Line1:      "88 Harbor Way",
		City:       "Oakland",
		State:      "CA",
		PostalCode: "94607",
		Country:    "US",
	}
}

func testParcel() shipment.Parcel {
	return shipment.Parcel{LengthCm: 40, WidthCm: 30, HeightCm: 20, WeightG: 4500}
}

func TestPurchaseLabelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.ReadyToShip, nil, nil)

	cmd, err := commands.NewPurchaseLabelCommand(testOrder.ID(), testAddress(), testParcel())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	carrier := new(MockCarrierClient)

	label := ports.LabelInfo{TrackingNumber: "1Z999", Carrier: "ups", LabelURL: "https://labels/1Z999.pdf"}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		carrier.On("PurchaseLabel", ctx, "ORD-1", testAddress(), testParcel()).
			Return(label, nil).
			Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderShipped", ctx, testOrder, "1Z999").Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.AnythingOfType("ports.OrderStatusChangedEvent")).Once()

	handler := commands.NewPurchaseLabelCommandHandler(factory, carrier, notifier, publisher)
	label, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "1Z999", label.TrackingNumber)
	assert.Equal(t, order.Shipped, testOrder.Status())

	added := shipmentRepo.Calls[0].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, "1Z999", added.TrackingNumber())
	assert.Equal(t, testOrder.ID(), added.OrderID())
	assert.False(t, added.IsVoided())

	carrier.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPurchaseLabelCommandHandler_Handle_CarrierFailureLeavesOrderUntouched(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.ReadyToShip, nil, nil)

	cmd, err := commands.NewPurchaseLabelCommand(testOrder.ID(), testAddress(), testParcel())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	carrier := new(MockCarrierClient)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		carrier.On("PurchaseLabel", ctx, "ORD-1", testAddress(), testParcel()).
			Return(ports.LabelInfo{}, errs.NewUpstreamFailureError("carrier", assert.AnError)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurchaseLabelCommandHandler(
		factory, carrier, new(MockNotifier), new(MockEventPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
	assert.Equal(t, order.ReadyToShip, testOrder.Status())
	shipmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPurchaseLabelCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()
	testOrder := restoreOrderInStatus(t, order.InProduction, nil, nil)

	cmd, err := commands.NewPurchaseLabelCommand(testOrder.ID(), testAddress(), testParcel())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	carrier := new(MockCarrierClient)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurchaseLabelCommandHandler(
		factory, carrier, new(MockNotifier), new(MockEventPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	// Ineligible orders never reach the carrier.
	carrier.AssertNotCalled(t, "PurchaseLabel",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewPurchaseLabelCommand_IncompleteAddress(t *testing.T) {
	addr := testAddress()
	addr.PostalCode = ""
	_, err := commands.NewPurchaseLabelCommand(
		restoreOrderInStatus(t, order.ReadyToShip, nil, nil).ID(), addr, testParcel())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
