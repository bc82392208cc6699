package commands

import (
	"errors"
	"time"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand represents a vendor's request to start preparing an
// accepted order, declaring the preparation time and the delivery promise.
//
// The constructor validates only the identifiers. The payload is judged by
// the order aggregate after the status precondition holds, so an order in
// the wrong state reports the state conflict rather than a payload problem.
type PrepareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	requesterID          kernel.UUID
	prepTimeMinutes      int
	expectedDeliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewPrepareOrderCommand creates a command to start preparing an order.
// Validates that both identifiers are valid UUIDs; the preparation payload
// travels through untouched.
func NewPrepareOrderCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	prepTimeMinutes int,
	expectedDeliveryTime time.Time,
) (PrepareOrderCommand, error) {
	command := PrepareOrderCommand{
		prepTimeMinutes:      prepTimeMinutes,
		expectedDeliveryTime: expectedDeliveryTime,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequesterID(requesterID),
	); err != nil {
		return PrepareOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPrepareOrderCommandIsNotConstructed if validation fails.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to prepare.
func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the requester.
func (c PrepareOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// PrepTimeMinutes returns the declared preparation time.
func (c PrepareOrderCommand) PrepTimeMinutes() int {
	return c.prepTimeMinutes
}

// ExpectedDeliveryTime returns the promised delivery time.
func (c PrepareOrderCommand) ExpectedDeliveryTime() time.Time {
	return c.expectedDeliveryTime
}

func (c *PrepareOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PrepareOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
