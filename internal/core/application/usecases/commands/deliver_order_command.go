package commands

import (
	"errors"
	"time"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a courier's report that an order reached
// the customer, carrying the actual delivery time.
//
// The constructor validates only the identifiers. The delivery time is
// judged by the order aggregate after the status precondition holds.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	requesterID        kernel.UUID
	actualDeliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to mark an order as delivered.
// Validates that both identifiers are valid UUIDs; the delivery time
// travels through untouched.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	actualDeliveryTime time.Time,
) (DeliverOrderCommand, error) {
	command := DeliverOrderCommand{
		actualDeliveryTime: actualDeliveryTime,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequesterID(requesterID),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the requester.
func (c DeliverOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// ActualDeliveryTime returns the reported delivery completion time.
func (c DeliverOrderCommand) ActualDeliveryTime() time.Time {
	return c.actualDeliveryTime
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
