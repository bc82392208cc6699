package commands

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a vendor's request to accept a pending order.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(orderID, requesterID)
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, gate, publisher, logger)
//	outcome, err := handler.Handle(ctx, cmd)
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a pending order.
// Validates that both identifiers are valid UUIDs.
func NewAcceptOrderCommand(orderID kernel.UUID, requesterID kernel.UUID) (AcceptOrderCommand, error) {
	command := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequesterID(requesterID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the requester.
func (c AcceptOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
