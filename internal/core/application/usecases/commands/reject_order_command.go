package commands

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a vendor's request to reject a pending order.
// A successful rejection records a delivery exception atomically with the
// status change.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject a pending order.
// Validates that both identifiers are valid UUIDs.
func NewRejectOrderCommand(orderID kernel.UUID, requesterID kernel.UUID) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequesterID(requesterID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the requester.
func (c RejectOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
