package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/postgres/orderrepo"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises GormOrderRepository against
// a real PostgreSQL instance, including the optimistic locking path.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.Equal(int64(1), testOrder.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsLinesAndQuote() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1002")
	now := time.Now().UTC().Truncate(time.Second)
	suite.Require().NoError(testOrder.IssueQuote(now, 14))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("ORD-1002", retrieved.Code())
	suite.Equal(order.Quoted, retrieved.Status())
	suite.Require().NotNil(retrieved.QuoteExpiresAt())
	suite.Equal(now.Add(14*24*time.Hour), retrieved.QuoteExpiresAt().UTC())

	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal("lip balm 5g", retrieved.Lines()[0].Product())
	suite.Equal(500, retrieved.Lines()[0].Quantity())
	suite.Equal(kernel.Money(120), retrieved.Lines()[0].UnitPrice())
	suite.Equal(testOrder.Subtotal(), retrieved.Subtotal())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndBumpsVersion() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1003")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.IssueQuote(time.Now().UTC(), 0))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Equal(int64(2), testOrder.Version())

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Quoted, retrieved.Status())
	suite.Equal(int64(2), retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1004")
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two writers load the same version of the row.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.IssueQuote(time.Now().UTC(), 0))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.IssueQuote(time.Now().UTC(), 0))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)

	// The winning write is what the row holds.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(first.Version(), retrieved.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInQuotedStatus_ReturnsOnlyQuotedOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	draft := suite.createTestOrder("ORD-2001")
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	quoted1 := suite.createTestOrder("ORD-2002")
	suite.Require().NoError(quoted1.IssueQuote(time.Now().UTC(), 0))
	suite.Require().NoError(suite.repository.Add(ctx, quoted1))

	quoted2 := suite.createTestOrder("ORD-2003")
	suite.Require().NoError(quoted2.IssueQuote(time.Now().UTC(), 0))
	suite.Require().NoError(suite.repository.Add(ctx, quoted2))

	quotedOrders, err := suite.repository.GetAllInQuotedStatus(ctx)
	suite.Require().NoError(err)

	suite.Len(quotedOrders, 2)
	for _, o := range quotedOrders {
		suite.Equal(order.Quoted, o.Status())
		suite.NotNil(o.QuoteExpiresAt())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInQuotedStatus_NoQuotedOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("ORD-2004")))

	quotedOrders, err := suite.repository.GetAllInQuotedStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(quotedOrders)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a two-line draft order with a required deposit.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(code string) *order.Order {
	lineA, err := order.NewLine("lip balm 5g", 500, kernel.Money(120))
	suite.Require().NoError(err)
	lineB, err := order.NewLine("face cream 50ml", 200, kernel.Money(850))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), code, nil, false,
		[]order.Line{lineA, lineB}, true, kernel.Money(50000))
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
