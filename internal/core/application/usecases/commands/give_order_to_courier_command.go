package commands

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrGiveOrderToCourierCommandIsNotConstructed = errors.New(
	"GiveOrderToCourierCommand must be created via NewGiveOrderToCourierCommand constructor",
)

// GiveOrderToCourierCommand represents a vendor's request to hand a prepared
// order over to a courier.
type GiveOrderToCourierCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	courierID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGiveOrderToCourierCommand creates a command to hand an order to a courier.
// Validates that all three identifiers are valid UUIDs.
func NewGiveOrderToCourierCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	courierID kernel.UUID,
) (GiveOrderToCourierCommand, error) {
	command := GiveOrderToCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequesterID(requesterID),
		command.setCourierID(courierID),
	); err != nil {
		return GiveOrderToCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGiveOrderToCourierCommandIsNotConstructed if validation fails.
func (c GiveOrderToCourierCommand) Validate() error {
	return c.guard.Validate(ErrGiveOrderToCourierCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to hand over.
func (c GiveOrderToCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the requester.
func (c GiveOrderToCourierCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// CourierID returns the identifier of the courier taking the order.
func (c GiveOrderToCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *GiveOrderToCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *GiveOrderToCourierCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *GiveOrderToCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
