package exception

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/errs"
)

var (
	// ErrDeliveryExceptionIsNotConstructed is returned when using an improperly
	// initialized DeliveryException.
	ErrDeliveryExceptionIsNotConstructed = errors.New("DeliveryException must be created via NewDeliveryException or RestoreDeliveryException constructor")
	// ErrMessageIsRequired is returned when attempting to create an exception without a message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
)

// Exception messages for the automatically recorded kinds.
const (
	vendorRejectionMessage = "Order was rejected by the vendor"
	lateDeliveryMessage    = "Order was not delivered by the expected delivery time"
)

// DeliveryException records that something went wrong with an order. An
// exception is attached to exactly one order and stays unresolved until
// support staff deal with it.
//
// DeliveryException follows these invariants:
//   - Must reference a valid order
//   - Must carry a valid type and a non-empty message
//   - Starts unresolved when newly recorded
//   - Can only be created through NewDeliveryException or RestoreDeliveryException
type DeliveryException struct {
	// id is the unique identifier for the exception
	id kernel.UUID

	// orderID references the order the exception belongs to
	orderID kernel.UUID

	// kind classifies what went wrong
	kind Type

	// message is the human-readable description
	message string

	// resolved reports whether support staff have dealt with the exception
	resolved bool

	// isConstructed ensures the exception was created via a constructor
	isConstructed bool
}

// NewDeliveryException records a new, unresolved exception for an order.
//
// Parameters:
//   - id: Unique identifier for the exception (must be valid UUID)
//   - orderID: The order the exception belongs to (must be valid UUID)
//   - kind: What went wrong (must be a valid Type)
//   - message: Human-readable description (must be non-empty)
//
// Returns:
//   - *DeliveryException: The created exception if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDeliveryException(id kernel.UUID, orderID kernel.UUID, kind Type, message string) (*DeliveryException, error) {
	exception := &DeliveryException{
		resolved:      false,
		isConstructed: true,
	}

	if err := errors.Join(
		exception.setID(id),
		exception.setOrderID(orderID),
		exception.setKind(kind),
		exception.setMessage(message),
	); err != nil {
		return nil, err
	}

	return exception, nil
}

// NewVendorRejection records the exception that accompanies a vendor
// rejecting an order. The message is fixed so rejections read the same
// everywhere.
func NewVendorRejection(id kernel.UUID, orderID kernel.UUID) (*DeliveryException, error) {
	return NewDeliveryException(id, orderID, Rejected, vendorRejectionMessage)
}

// NewLateDelivery records the exception raised when an order stays in
// transit past its expected delivery time.
func NewLateDelivery(id kernel.UUID, orderID kernel.UUID) (*DeliveryException, error) {
	return NewDeliveryException(id, orderID, LateDelivery, lateDeliveryMessage)
}

// RestoreDeliveryException reconstructs a DeliveryException from previously
// persisted state, including its resolution flag.
//
// Returns:
//   - *DeliveryException: Restored exception
//   - error: Validation error if any parameter is invalid
func RestoreDeliveryException(id kernel.UUID, orderID kernel.UUID, kind Type, message string, resolved bool) (*DeliveryException, error) {
	exception := &DeliveryException{
		resolved:      resolved,
		isConstructed: true,
	}

	if err := errors.Join(
		exception.setID(id),
		exception.setOrderID(orderID),
		exception.setKind(kind),
		exception.setMessage(message),
	); err != nil {
		return nil, err
	}

	return exception, nil
}

// Validate ensures the DeliveryException was created through a constructor.
//
// Returns:
//   - nil if the exception is valid
//   - ErrDeliveryExceptionIsNotConstructed otherwise
func (e *DeliveryException) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrDeliveryExceptionIsNotConstructed
	}

	return nil
}

// IsEqual compares two exceptions by their unique identifiers.
func (e *DeliveryException) IsEqual(other *DeliveryException) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the exception's unique identifier.
func (e *DeliveryException) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the exception belongs to.
func (e *DeliveryException) OrderID() kernel.UUID {
	return e.orderID
}

// Kind returns what went wrong.
func (e *DeliveryException) Kind() Type {
	return e.kind
}

// Message returns the human-readable description.
func (e *DeliveryException) Message() string {
	return e.message
}

// Resolved reports whether support staff have dealt with the exception.
func (e *DeliveryException) Resolved() bool {
	return e.resolved
}

// setID validates and sets the exception's unique identifier.
// This is a private method used only during construction.
func (e *DeliveryException) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

// setOrderID validates and sets the owning order reference.
// This is a private method used only during construction.
func (e *DeliveryException) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

// setKind validates and sets the exception classification.
// This is a private method used only during construction.
func (e *DeliveryException) setKind(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

// setMessage validates and sets the description.
// This is a private method used only during construction.
func (e *DeliveryException) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	e.message = message
	return nil
}
