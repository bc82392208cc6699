package exceptionrepo_test

import (
	"context"
	"testing"
	"time"

	"orderstatus/internal/adapters/out/postgres/exceptionrepo"
	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"

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

// ExceptionRepositoryIntegrationTestSuite provides integration tests for
// ExceptionRepository using PostgreSQL containers to verify database
// persistence behavior.
type ExceptionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *exceptionrepo.GormExceptionRepository
	tracker    *MockAggregateTracker
}

func (suite *ExceptionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&exceptionrepo.ExceptionDTO{}))
}

func (suite *ExceptionRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_exceptions").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = exceptionrepo.NewGormExceptionRepository(suite.db, suite.tracker)
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestAdd_ValidException_Success() {
	ctx := context.Background()

	aggregate := suite.createVendorRejection(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertExceptionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestAdd_NotConstructedException_Error() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &exception.DeliveryException{})
	suite.Require().ErrorIs(err, exception.ErrDeliveryExceptionIsNotConstructed)

	suite.assertExceptionCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestGetAllByOrder_RoundTripsAllFields() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	original := suite.createVendorRejection(orderID)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	exceptions, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(exceptions, 1)

	retrieved := exceptions[0]
	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(orderID, retrieved.OrderID())
	suite.Equal(exception.Rejected, retrieved.Kind())
	suite.Equal("Order was rejected by the vendor", retrieved.Message())
	suite.False(retrieved.Resolved())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestGetAllByOrder_ReturnsOldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first := suite.createVendorRejection(orderID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Insertion timestamps order the listing, so keep them apart.
	time.Sleep(10 * time.Millisecond)

	second := suite.createLateDelivery(orderID)
	suite.tracker.On("TrackAggregate", second.ID(), second).Once()
	suite.Require().NoError(suite.repository.Add(ctx, second))

	exceptions, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(exceptions, 2)

	suite.Equal(first.ID(), exceptions[0].ID())
	suite.Equal(second.ID(), exceptions[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestGetAllByOrder_FiltersOtherOrders() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	mine := suite.createVendorRejection(orderID)
	suite.tracker.On("TrackAggregate", mine.ID(), mine).Once()
	suite.Require().NoError(suite.repository.Add(ctx, mine))

	foreign := suite.createVendorRejection(otherOrderID)
	suite.tracker.On("TrackAggregate", foreign.ID(), foreign).Once()
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	exceptions, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(exceptions, 1)
	suite.Equal(mine.ID(), exceptions[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestGetAllByOrder_NoExceptions_ReturnsEmpty() {
	ctx := context.Background()

	exceptions, err := suite.repository.GetAllByOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(exceptions)
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestGetAllByOrder_InvalidUUID_ReturnsValidationError() {
	ctx := context.Background()

	_, err := suite.repository.GetAllByOrder(ctx, kernel.UUID{})
	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestHasUnresolved_UnresolvedOfKind_ReturnsTrue() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	aggregate := suite.createLateDelivery(orderID)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	has, err := suite.repository.HasUnresolved(ctx, orderID, exception.LateDelivery)
	suite.Require().NoError(err)
	suite.True(has)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestHasUnresolved_OnlyResolved_ReturnsFalse() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	resolved, err := exception.RestoreDeliveryException(
		kernel.NewUUID(), orderID, exception.LateDelivery,
		"Order was not delivered by the expected delivery time", true)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", resolved.ID(), resolved).Once()
	suite.Require().NoError(suite.repository.Add(ctx, resolved))

	has, err := suite.repository.HasUnresolved(ctx, orderID, exception.LateDelivery)
	suite.Require().NoError(err)
	suite.False(has)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestHasUnresolved_DifferentKind_ReturnsFalse() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	aggregate := suite.createVendorRejection(orderID)
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	has, err := suite.repository.HasUnresolved(ctx, orderID, exception.LateDelivery)
	suite.Require().NoError(err)
	suite.False(has)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ExceptionRepositoryIntegrationTestSuite) TestHasUnresolved_InvalidKind_ReturnsValidationError() {
	ctx := context.Background()

	_, err := suite.repository.HasUnresolved(ctx, kernel.NewUUID(), exception.Unknown)
	suite.Require().Error(err)
}

// createVendorRejection creates an unresolved rejection exception for the order.
func (suite *ExceptionRepositoryIntegrationTestSuite) createVendorRejection(orderID kernel.UUID) *exception.DeliveryException {
	aggregate, err := exception.NewVendorRejection(kernel.NewUUID(), orderID)
	suite.Require().NoError(err)
	return aggregate
}

// createLateDelivery creates an unresolved late delivery exception for the order.
func (suite *ExceptionRepositoryIntegrationTestSuite) createLateDelivery(orderID kernel.UUID) *exception.DeliveryException {
	aggregate, err := exception.NewLateDelivery(kernel.NewUUID(), orderID)
	suite.Require().NoError(err)
	return aggregate
}

// assertExceptionCount verifies the number of exceptions in the database.
func (suite *ExceptionRepositoryIntegrationTestSuite) assertExceptionCount(expected int) {
	var count int64
	err := suite.db.Model(&exceptionrepo.ExceptionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestExceptionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ExceptionRepositoryIntegrationTestSuite))
}
