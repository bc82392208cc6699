package commands

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrStartOrderTransitCommandIsNotConstructed = errors.New(
	"StartOrderTransitCommand must be created via NewStartOrderTransitCommand constructor",
)

// StartOrderTransitCommand represents a courier's report that a handed over
// order is now on its way to the customer.
type StartOrderTransitCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderTransitCommand creates a command to mark an order in transit.
// Validates that both identifiers are valid UUIDs.
func NewStartOrderTransitCommand(orderID kernel.UUID, requesterID kernel.UUID) (StartOrderTransitCommand, error) {
	command := StartOrderTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequesterID(requesterID),
	); err != nil {
		return StartOrderTransitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartOrderTransitCommandIsNotConstructed if validation fails.
func (c StartOrderTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderTransitCommandIsNotConstructed)
}

// OrderID returns the identifier of the order in transit.
func (c StartOrderTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the requester.
func (c StartOrderTransitCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *StartOrderTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderTransitCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
