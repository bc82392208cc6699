package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderstatus/internal/core/application/usecases/commands"
	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func overdueOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	courierID := kernel.NewUUID()
	past := time.Now().Add(-10 * time.Minute)
	aggregate, err := order.RestoreOrder(id, kernel.NewUUID(), order.InTransit, 30, &courierID, &past, nil)
	require.NoError(t, err)
	return aggregate
}

func TestFlagOverdueDeliveriesCommandHandler_Handle_FlagsOverdueOrder(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFlagOverdueDeliveriesCommand()

	orderID := kernel.NewUUID()
	late := overdueOrder(t, orderID)

	orderRepo := new(MockOrderRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		orderRepo.On("GetAllInTransitStatus", ctx).Return([]*order.Order{late}, nil).Once(),
		exceptionRepo.On("HasUnresolved", ctx, orderID, exception.LateDelivery).Return(false, nil).Once(),
		exceptionRepo.On("Add", ctx, mock.AnythingOfType("*exception.DeliveryException")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewFlagOverdueDeliveriesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	var recorded *exception.DeliveryException
	for _, call := range exceptionRepo.Calls {
		if call.Method == "Add" {
			recorded = call.Arguments.Get(1).(*exception.DeliveryException)
		}
	}
	require.NotNil(t, recorded)
	assert.Equal(t, orderID, recorded.OrderID())
	assert.Equal(t, exception.LateDelivery, recorded.Kind())
	assert.Equal(t, "Order was not delivered by the expected delivery time", recorded.Message())
	assert.False(t, recorded.Resolved())

	orderRepo.AssertExpectations(t)
	exceptionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFlagOverdueDeliveriesCommandHandler_Handle_SkipsAlreadyFlaggedOrder(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFlagOverdueDeliveriesCommand()

	orderID := kernel.NewUUID()
	late := overdueOrder(t, orderID)

	orderRepo := new(MockOrderRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		orderRepo.On("GetAllInTransitStatus", ctx).Return([]*order.Order{late}, nil).Once(),
		exceptionRepo.On("HasUnresolved", ctx, orderID, exception.LateDelivery).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewFlagOverdueDeliveriesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	exceptionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	exceptionRepo.AssertExpectations(t)
}

func TestFlagOverdueDeliveriesCommandHandler_Handle_IgnoresOrdersWithinPromise(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFlagOverdueDeliveriesCommand()

	onTime := orderInStatus(t, kernel.NewUUID(), order.InTransit)

	orderRepo := new(MockOrderRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		orderRepo.On("GetAllInTransitStatus", ctx).Return([]*order.Order{onTime}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewFlagOverdueDeliveriesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	exceptionRepo.AssertNotCalled(t, "HasUnresolved", mock.Anything, mock.Anything, mock.Anything)
	exceptionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestFlagOverdueDeliveriesCommandHandler_Handle_NoOrdersInTransit(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFlagOverdueDeliveriesCommand()

	orderRepo := new(MockOrderRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		orderRepo.On("GetAllInTransitStatus", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewFlagOverdueDeliveriesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestFlagOverdueDeliveriesCommandHandler_Handle_SweepQueryError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewFlagOverdueDeliveriesCommand()

	orderRepo := new(MockOrderRepository)
	exceptionRepo := new(MockExceptionRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExceptionRepository").Return(exceptionRepo).Once(),
		orderRepo.On("GetAllInTransitStatus", ctx).Return(nil, errors.New("query timeout")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewFlagOverdueDeliveriesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query timeout")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestFlagOverdueDeliveriesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FlagOverdueDeliveriesCommand{} // not constructed properly
	factory := new(MockUoWFactory)

	handler := commands.NewFlagOverdueDeliveriesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrFlagOverdueDeliveriesCommandIsNotConstructed)
}
