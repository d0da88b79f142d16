package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/batch"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInQuotedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockQuoteActionRepository struct{ mock.Mock }

func (m *MockQuoteActionRepository) Add(ctx context.Context, a *order.QuoteAction) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockQuoteActionRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.QuoteAction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.QuoteAction), args.Error(1)
}

func (m *MockQuoteActionRepository) GetLatestRenewal(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.QuoteAction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.QuoteAction), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

func (m *MockBatchRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*batch.Batch, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*batch.Batch), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetLiveByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) QuoteActionRepository() ports.QuoteActionRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteActionRepository)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) QuoteIssued(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) QuoteExpiring(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) QuoteExpired(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) QuoteRenewed(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) DecisionRecorded(ctx context.Context, o *order.Order, a order.ActionType) error {
	args := m.Called(ctx, o, a)
	return args.Error(0)
}

func (m *MockNotifier) OrderShipped(ctx context.Context, o *order.Order, trackingNumber string) error {
	args := m.Called(ctx, o, trackingNumber)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(event ports.OrderStatusChangedEvent) {
	m.Called(event)
}

type MockCarrierClient struct{ mock.Mock }

func (m *MockCarrierClient) PurchaseLabel(
	ctx context.Context,
	orderRef string,
	addr shipment.Address,
	parcel shipment.Parcel,
) (ports.LabelInfo, error) {
	args := m.Called(ctx, orderRef, addr, parcel)
	return args.Get(0).(ports.LabelInfo), args.Error(1)
}

func (m *MockCarrierClient) VoidLabel(ctx context.Context, trackingNumber string) error {
	args := m.Called(ctx, trackingNumber)
	return args.Error(0)
}

func testLines(t *testing.T) []order.Line {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(2500)
	require.NoError(t, err)
	line, err := order.NewLine("protein kit", 10, price)
	require.NoError(t, err)
	return []order.Line{line}
}

func restoreOrderInStatus(
	t *testing.T,
	status order.Status,
	expiresAt *time.Time,
	reminderSentAt *time.Time,
) *order.Order {
	t.Helper()
	heldFrom := order.Unknown
	if status.IsOnHold() {
		heldFrom = order.InQueue
	}
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-1", nil, false,
		testLines(t),
		false, 0, order.DepositUnpaid,
		expiresAt, 30, reminderSentAt,
		status, heldFrom, 1,
	)
	require.NoError(t, err)
	return o
}
