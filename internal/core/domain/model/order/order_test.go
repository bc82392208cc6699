package order_test

import (
	"testing"
	"time"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validVendorID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validVendorID)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.VendorID().IsEqual(validVendorID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.PrepTimeMinutes())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.ExpectedDeliveryTime())
		assert.Nil(t, o.ActualDeliveryTime())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validVendorID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid vendor ID", func(t *testing.T) {
		var invalidVendorID kernel.UUID

		o, err := order.NewOrder(validID, invalidVendorID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidVendorID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidVendorID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validVendorID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	expectedTime := time.Now().Add(45 * time.Minute)
	actualTime := time.Now().Add(40 * time.Minute)

	t.Run("should restore pending order without transition payload", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validVendorID, order.Pending, 0, nil, nil, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.PrepTimeMinutes())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.ExpectedDeliveryTime())
		assert.Nil(t, o.ActualDeliveryTime())
	})

	t.Run("should restore in transit order with courier and delivery promise", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validVendorID, order.InTransit, 30, &courierID, &expectedTime, nil)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, 30, o.PrepTimeMinutes())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
		require.NotNil(t, o.ExpectedDeliveryTime())
		assert.True(t, o.ExpectedDeliveryTime().Equal(expectedTime))
		assert.Nil(t, o.ActualDeliveryTime())
	})

	t.Run("should restore delivered order with all fields", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validVendorID, order.Delivered, 30, &courierID, &expectedTime, &actualTime)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ActualDeliveryTime())
		assert.True(t, o.ActualDeliveryTime().Equal(actualTime))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validVendorID, order.Unknown, 0, nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.RestoreOrder(invalidID, validVendorID, order.Pending, 0, nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with invalid courier reference", func(t *testing.T) {
		var invalidCourierID kernel.UUID

		o, err := order.RestoreOrder(validID, validVendorID, order.GivenToCourier, 30, &invalidCourierID, &expectedTime, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with negative preparation time", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, validVendorID, order.Preparing, -5, nil, &expectedTime, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "prepTimeMinutes")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		err := o.Validate()

		require.NoError(t, err)
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()
	vendor1 := kernel.NewUUID()
	vendor2 := kernel.NewUUID()

	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, vendor1)
		o2, _ := order.NewOrder(id1, vendor2) // Different vendor

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, vendor1)
		o2, _ := order.NewOrder(id2, vendor1)

		assert.False(t, o1.IsEqual(o2))
		assert.False(t, o2.IsEqual(o1))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, vendor1)

		assert.False(t, o1.IsEqual(nil))
	})

	t.Run("should handle self comparison", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, vendor1)

		assert.True(t, o1.IsEqual(o1))
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should accept pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		err := o.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should fail to accept already accepted order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.Accept()

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "current status is ACCEPTED, required status is PENDING")
		assert.Equal(t, order.Accepted, o.Status()) // Status unchanged
	})

	t.Run("should fail to accept rejected order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Reject()

		err := o.Accept()

		require.Error(t, err)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Rejected, transitionErr.From)
		assert.Equal(t, order.Pending, transitionErr.Required)
		assert.Equal(t, order.Accepted, transitionErr.Target)
		assert.Equal(t, order.Rejected, o.Status()) // Status unchanged
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("should reject pending order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		err := o.Reject()

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("should fail to reject accepted order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.Reject()

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "invalid status transition to REJECTED")
		assert.Equal(t, order.Accepted, o.Status()) // Status unchanged
	})

	t.Run("should fail to reject already rejected order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Reject()

		err := o.Reject()

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Equal(t, order.Rejected, o.Status())
	})
}

func TestOrder_StartPreparing(t *testing.T) {
	expectedTime := time.Now().Add(45 * time.Minute)

	t.Run("should start preparing accepted order and record the promise", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.StartPreparing(30, expectedTime)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, 30, o.PrepTimeMinutes())
		require.NotNil(t, o.ExpectedDeliveryTime())
		assert.True(t, o.ExpectedDeliveryTime().Equal(expectedTime))
	})

	t.Run("should report status mismatch before payload problems", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		// Pending order with an invalid payload: the state machine answers first.
		err := o.StartPreparing(0, time.Time{})

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "current status is PENDING, required status is ACCEPTED")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail with zero preparation time", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.StartPreparing(0, expectedTime)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		assert.Equal(t, order.Accepted, o.Status()) // Status unchanged
		assert.Equal(t, 0, o.PrepTimeMinutes())
	})

	t.Run("should fail with preparation time above a day", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.StartPreparing(1441, expectedTime)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		assert.Contains(t, err.Error(), "min value is 1, max value is 1440")
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should accept boundary preparation times", func(t *testing.T) {
		for _, minutes := range []int{1, 1440} {
			o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
			_ = o.Accept()

			err := o.StartPreparing(minutes, expectedTime)

			require.NoError(t, err)
			assert.Equal(t, minutes, o.PrepTimeMinutes())
		}
	})

	t.Run("should fail with missing expected delivery time", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.StartPreparing(30, time.Time{})

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "expectedDeliveryTime")
		assert.Equal(t, order.Accepted, o.Status())
		assert.Nil(t, o.ExpectedDeliveryTime())
	})
}

func TestOrder_GiveToCourier(t *testing.T) {
	expectedTime := time.Now().Add(45 * time.Minute)
	courierID := kernel.NewUUID()

	t.Run("should hand preparing order to courier", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)

		err := o.GiveToCourier(courierID)

		require.NoError(t, err)
		assert.Equal(t, order.GivenToCourier, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should fail with invalid courier ID", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)
		var invalidCourierID kernel.UUID

		err := o.GiveToCourier(invalidCourierID)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
		assert.Equal(t, order.Preparing, o.Status()) // Status unchanged
		assert.Nil(t, o.Courier())                   // Courier unchanged
	})

	t.Run("should fail to hand over order that is not preparing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()

		err := o.GiveToCourier(courierID)

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "current status is ACCEPTED, required status is PREPARING")
		assert.Equal(t, order.Accepted, o.Status())
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_StartTransit(t *testing.T) {
	expectedTime := time.Now().Add(45 * time.Minute)
	courierID := kernel.NewUUID()

	t.Run("should mark handed over order as in transit", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)
		_ = o.GiveToCourier(courierID)

		err := o.StartTransit()

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID)) // Courier preserved
	})

	t.Run("should fail to skip the courier handover", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)

		err := o.StartTransit()

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "current status is PREPARING, required status is GIVEN_TO_COURIER")
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	expectedTime := time.Now().Add(45 * time.Minute)
	actualTime := time.Now().Add(40 * time.Minute)
	courierID := kernel.NewUUID()

	t.Run("should deliver order in transit and record the time", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)
		_ = o.GiveToCourier(courierID)
		_ = o.StartTransit()

		err := o.Deliver(actualTime)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.ActualDeliveryTime())
		assert.True(t, o.ActualDeliveryTime().Equal(actualTime))
	})

	t.Run("should report status mismatch before payload problems", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		err := o.Deliver(time.Time{})

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "current status is PENDING, required status is IN_TRANSIT")
	})

	t.Run("should fail with missing actual delivery time", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)
		_ = o.GiveToCourier(courierID)
		_ = o.StartTransit()

		err := o.Deliver(time.Time{})

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Contains(t, err.Error(), "actualDeliveryTime")
		assert.Equal(t, order.InTransit, o.Status()) // Status unchanged
		assert.Nil(t, o.ActualDeliveryTime())
	})

	t.Run("should fail to deliver already delivered order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		_ = o.Accept()
		_ = o.StartPreparing(30, expectedTime)
		_ = o.GiveToCourier(courierID)
		_ = o.StartTransit()
		_ = o.Deliver(actualTime)

		err := o.Deliver(actualTime)

		require.Error(t, err)
		assert.IsType(t, &order.InvalidTransitionError{}, err)
		assert.Contains(t, err.Error(), "current status is DELIVERED, required status is IN_TRANSIT")
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_IsOverdue(t *testing.T) {
	courierID := kernel.NewUUID()
	now := time.Now()
	promise := now.Add(45 * time.Minute)

	inTransitOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.Accept())
		require.NoError(t, o.StartPreparing(30, promise))
		require.NoError(t, o.GiveToCourier(courierID))
		require.NoError(t, o.StartTransit())
		return o
	}

	t.Run("should not be overdue before the promised time", func(t *testing.T) {
		o := inTransitOrder(t)

		assert.False(t, o.IsOverdue(promise.Add(-time.Minute)))
	})

	t.Run("should not be overdue exactly at the promised time", func(t *testing.T) {
		o := inTransitOrder(t)

		assert.False(t, o.IsOverdue(promise))
	})

	t.Run("should be overdue after the promised time", func(t *testing.T) {
		o := inTransitOrder(t)

		assert.True(t, o.IsOverdue(promise.Add(time.Minute)))
	})

	t.Run("should not be overdue once delivered", func(t *testing.T) {
		o := inTransitOrder(t)
		require.NoError(t, o.Deliver(promise.Add(2*time.Hour)))

		assert.False(t, o.IsOverdue(promise.Add(3*time.Hour)))
	})

	t.Run("should not be overdue without a delivery promise", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		assert.False(t, o.IsOverdue(now.Add(24*time.Hour)))
	})
}

func TestOrder_FullWorkflow(t *testing.T) {
	t.Run("should follow complete order lifecycle", func(t *testing.T) {
		// Setup
		orderID := kernel.NewUUID()
		vendorID := kernel.NewUUID()
		courierID := kernel.NewUUID()
		expectedTime := time.Now().Add(45 * time.Minute)
		actualTime := time.Now().Add(42 * time.Minute)

		// Place order
		o, err := order.NewOrder(orderID, vendorID)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())

		// Vendor accepts
		err = o.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())

		// Vendor starts preparing
		err = o.StartPreparing(30, expectedTime)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, 30, o.PrepTimeMinutes())

		// Handover to courier
		err = o.GiveToCourier(courierID)
		require.NoError(t, err)
		assert.Equal(t, order.GivenToCourier, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID))

		// Courier on the way
		err = o.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())

		// Delivered
		err = o.Deliver(actualTime)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())

		// Verify final state
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(orderID))
		assert.True(t, o.VendorID().IsEqual(vendorID))
		assert.True(t, o.Courier().IsEqual(courierID))
		require.NotNil(t, o.ActualDeliveryTime())
		assert.True(t, o.ActualDeliveryTime().Equal(actualTime))
	})

	t.Run("should handle rejection workflow", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())

		err := o.Reject()
		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())
		assert.True(t, o.Status().IsTerminal())

		// No transition leaves the terminal state
		assert.Error(t, o.Accept())
		assert.Error(t, o.StartPreparing(30, time.Now().Add(time.Hour)))
		assert.Error(t, o.StartTransit())
		assert.Equal(t, order.Rejected, o.Status())
	})
}
