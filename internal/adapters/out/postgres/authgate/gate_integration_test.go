package authgate_test

import (
	"context"
	"testing"
	"time"

	"orderstatus/internal/adapters/out/postgres/authgate"
	"orderstatus/internal/adapters/out/postgres/userrepo"
	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AuthorizationGateIntegrationTestSuite provides integration tests for the
// authorization gate using PostgreSQL containers with a seeded requester
// registry.
type AuthorizationGateIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	gate      *authgate.GormAuthorizationGate
}

func (suite *AuthorizationGateIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *AuthorizationGateIntegrationTestSuite) SetupTest() {
	// Clean the registry before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.gate = authgate.NewGormAuthorizationGate(suite.db)
}

func (suite *AuthorizationGateIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuthorizationGateIntegrationTestSuite) TestCheck_UnregisteredRequester_Denied() {
	ctx := context.Background()

	decision, err := suite.gate.Check(ctx, kernel.NewUUID(), access.ActionUpdateToAccepted)
	suite.Require().NoError(err)

	suite.False(decision.IsAllowed())
	suite.Equal("requester is not registered", decision.Reason())
}

func (suite *AuthorizationGateIntegrationTestSuite) TestCheck_PermittedRole_Allowed() {
	testCases := []struct {
		name   string
		role   access.Role
		action access.Action
	}{
		{name: "vendor accepts", role: access.RoleVendor, action: access.ActionUpdateToAccepted},
		{name: "vendor rejects", role: access.RoleVendor, action: access.ActionUpdateToRejected},
		{name: "vendor prepares", role: access.RoleVendor, action: access.ActionUpdateToPreparing},
		{name: "vendor hands over", role: access.RoleVendor, action: access.ActionUpdateToGivenToCourier},
		{name: "courier starts transit", role: access.RoleCourier, action: access.ActionUpdateToInTransit},
		{name: "courier delivers", role: access.RoleCourier, action: access.ActionUpdateToDelivered},
		{name: "customer places order", role: access.RoleCustomer, action: access.ActionCreateOrder},
		{name: "customer reads status", role: access.RoleCustomer, action: access.ActionGetStatus},
		{name: "vendor reads status", role: access.RoleVendor, action: access.ActionGetStatus},
		{name: "courier reads status", role: access.RoleCourier, action: access.ActionGetStatus},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			requesterID := suite.registerRequester(tc.role)

			decision, err := suite.gate.Check(ctx, requesterID, tc.action)
			suite.Require().NoError(err)

			suite.True(decision.IsAllowed())
			suite.Equal(tc.role, decision.Role())
		})
	}
}

func (suite *AuthorizationGateIntegrationTestSuite) TestCheck_ForbiddenRole_Denied() {
	testCases := []struct {
		name   string
		role   access.Role
		action access.Action
		reason string
	}{
		{
			name:   "customer may not accept",
			role:   access.RoleCustomer,
			action: access.ActionUpdateToAccepted,
			reason: "role CUSTOMER is not permitted to perform updateToAccepted",
		},
		{
			name:   "courier may not reject",
			role:   access.RoleCourier,
			action: access.ActionUpdateToRejected,
			reason: "role COURIER is not permitted to perform updateToRejected",
		},
		{
			name:   "vendor may not deliver",
			role:   access.RoleVendor,
			action: access.ActionUpdateToDelivered,
			reason: "role VENDOR is not permitted to perform updateToDelivered",
		},
		{
			name:   "courier may not place orders",
			role:   access.RoleCourier,
			action: access.ActionCreateOrder,
			reason: "role COURIER is not permitted to perform createOrder",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			requesterID := suite.registerRequester(tc.role)

			decision, err := suite.gate.Check(ctx, requesterID, tc.action)
			suite.Require().NoError(err)

			suite.False(decision.IsAllowed())
			suite.Equal(tc.reason, decision.Reason())
		})
	}
}

func (suite *AuthorizationGateIntegrationTestSuite) TestCheck_InvalidRequesterID_ReturnsValidationError() {
	ctx := context.Background()

	_, err := suite.gate.Check(ctx, kernel.UUID{}, access.ActionGetStatus)
	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *AuthorizationGateIntegrationTestSuite) TestCheck_InvalidAction_ReturnsValidationError() {
	ctx := context.Background()

	_, err := suite.gate.Check(ctx, kernel.NewUUID(), access.ActionUnknown)
	suite.Require().Error(err)
}

// registerRequester inserts a requester with the given role straight into
// the registry and returns their identifier.
func (suite *AuthorizationGateIntegrationTestSuite) registerRequester(role access.Role) kernel.UUID {
	id := kernel.NewUUID()
	dto := userrepo.UserDTO{
		ID:   id.Bytes(),
		Name: "Requester " + role.String(),
		Role: int(role),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func TestAuthorizationGateIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizationGateIntegrationTestSuite))
}
