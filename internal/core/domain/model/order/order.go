package order

import (
	"errors"
	"time"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Preparation time bounds accepted by the preparing transition, in minutes.
const (
	minPrepTimeMinutes = 1
	maxPrepTimeMinutes = 1440
)

// Order represents a delivery order in the system. It is the aggregate root that
// guards the order lifecycle from placement through vendor acceptance and courier
// handover to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning vendor
//   - Holds exactly one Status value at any instant
//   - Status transitions follow the state machine defined on Status
//   - Transition payload fields (preparation time, courier, delivery times)
//     are only written by their owning transition
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// vendorID is the vendor responsible for accepting and preparing the order
	vendorID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// prepTimeMinutes is the vendor's declared preparation time (0 until preparing)
	prepTimeMinutes int

	// courierID is the courier carrying the order (nil until given to a courier)
	courierID *kernel.UUID

	// expectedDeliveryTime is the promise made when preparation starts (nil before that)
	expectedDeliveryTime *time.Time

	// actualDeliveryTime is recorded by the delivered transition (nil before that)
	actualDeliveryTime *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way to
// place a new order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - vendorID: The vendor that will handle the order (must be valid UUID)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	vendorID := kernel.NewUUID()
//	order, err := NewOrder(orderID, vendorID)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the order starts its
// lifecycle in Pending status with no courier and no delivery times.
func NewOrder(id kernel.UUID, vendorID kernel.UUID) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setVendorID(vendorID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from previously persisted state.
// Unlike NewOrder, which always starts the lifecycle at Pending, this constructor
// restores the order to whatever point of the lifecycle was stored, including
// its courier assignment and delivery times.
//
// Parameters:
//   - id: Unique identifier for the order
//   - vendorID: The owning vendor's identifier
//   - status: The persisted lifecycle status (must be a valid Status)
//   - prepTimeMinutes: Persisted preparation time, 0 when not yet preparing
//   - courierID: Persisted courier assignment, nil when not yet handed over
//   - expectedDeliveryTime: Persisted delivery promise, nil when absent
//   - actualDeliveryTime: Persisted delivery completion time, nil when absent
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if any parameter is invalid
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	status Status,
	prepTimeMinutes int,
	courierID *kernel.UUID,
	expectedDeliveryTime *time.Time,
	actualDeliveryTime *time.Time,
) (*Order, error) {
	order := &Order{
		expectedDeliveryTime: expectedDeliveryTime,
		actualDeliveryTime:   actualDeliveryTime,
		isConstructed:        true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setVendorID(vendorID),
		order.setStatus(status),
		order.setPrepTimeMinutes(prepTimeMinutes),
		order.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the identifier of the vendor handling the order.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PrepTimeMinutes returns the vendor's declared preparation time.
// Returns 0 until the order reaches Preparing.
func (o *Order) PrepTimeMinutes() int {
	return o.prepTimeMinutes
}

// Courier returns the identifier of the courier carrying the order.
// Returns nil until the order has been given to a courier.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// ExpectedDeliveryTime returns the delivery promise recorded when preparation
// started. Returns nil until the order reaches Preparing.
func (o *Order) ExpectedDeliveryTime() *time.Time {
	return o.expectedDeliveryTime
}

// ActualDeliveryTime returns the completion time recorded by the delivered
// transition. Returns nil until the order reaches Delivered.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

// Accept moves the order from Pending to Accepted.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not Pending
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves the order from Pending to Rejected, the terminal refusal state.
// Recording the matching delivery exception is the caller's responsibility and
// must happen atomically with persisting this transition.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not Pending
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPreparing moves the order from Accepted to Preparing and records the
// vendor's preparation promise.
//
// The status precondition is checked before the payload so that a payload
// problem on an order in the wrong state still reports the state problem.
//
// Parameters:
//   - prepTimeMinutes: declared preparation time, between 1 and 1440 minutes
//   - expectedDeliveryTime: the promised delivery time, must be set
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not Accepted
//   - errs.ValueIsOutOfRangeError / errs.ValueIsRequiredError for bad payload
func (o *Order) StartPreparing(prepTimeMinutes int, expectedDeliveryTime time.Time) error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	if prepTimeMinutes < minPrepTimeMinutes || prepTimeMinutes > maxPrepTimeMinutes {
		return errs.NewValueIsOutOfRangeError("prepTimeMinutes", prepTimeMinutes, minPrepTimeMinutes, maxPrepTimeMinutes)
	}
	if expectedDeliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryTime")
	}

	o.status = newStatus
	o.prepTimeMinutes = prepTimeMinutes
	deliveryTime := expectedDeliveryTime
	o.expectedDeliveryTime = &deliveryTime
	return nil
}

// GiveToCourier moves the order from Preparing to GivenToCourier and records
// the courier taking it.
//
// Parameters:
//   - courierID: the courier receiving the order (must be valid UUID)
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not Preparing
//   - error if the courier ID is invalid
func (o *Order) GiveToCourier(courierID kernel.UUID) error {
	newStatus, err := o.status.GiveToCourier()
	if err != nil {
		return err
	}

	if err := courierID.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// StartTransit moves the order from GivenToCourier to InTransit.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not GivenToCourier
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver moves the order from InTransit to Delivered, the terminal success
// state, and records when the customer received it.
//
// The status precondition is checked before the payload, matching
// StartPreparing.
//
// Parameters:
//   - actualDeliveryTime: when the order was handed to the customer, must be set
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not InTransit
//   - errs.ValueIsRequiredError if the delivery time is missing
func (o *Order) Deliver(actualDeliveryTime time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if actualDeliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("actualDeliveryTime")
	}

	o.status = newStatus
	deliveryTime := actualDeliveryTime
	o.actualDeliveryTime = &deliveryTime
	return nil
}

// IsOverdue reports whether the order is in transit past its promised
// delivery time. Orders without a recorded promise are never overdue.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.status == InTransit &&
		o.expectedDeliveryTime != nil &&
		now.After(*o.expectedDeliveryTime)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setVendorID validates and sets the owning vendor.
// This is a private method used only during construction.
func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

// setStatus validates and sets the persisted status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setPrepTimeMinutes validates and sets the persisted preparation time.
// Zero is allowed because orders before Preparing have no declared time.
// This is a private method used only during restoration.
func (o *Order) setPrepTimeMinutes(prepTimeMinutes int) error {
	if prepTimeMinutes != 0 && (prepTimeMinutes < minPrepTimeMinutes || prepTimeMinutes > maxPrepTimeMinutes) {
		return errs.NewValueIsOutOfRangeError("prepTimeMinutes", prepTimeMinutes, minPrepTimeMinutes, maxPrepTimeMinutes)
	}
	o.prepTimeMinutes = prepTimeMinutes
	return nil
}

// setCourierID validates and sets the persisted courier assignment, if any.
// This is a private method used only during restoration.
func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		o.courierID = nil
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	o.courierID = courierID
	return nil
}
