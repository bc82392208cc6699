package commands

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order with a
// vendor. The order starts its life waiting for the vendor's decision.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, vendorID, requesterID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gate)
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created with outcome %s", orderID, outcome.Kind())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	vendorID    kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that all three identifiers are valid UUIDs.
func NewCreateOrderCommand(orderID kernel.UUID, vendorID kernel.UUID, requesterID kernel.UUID) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setRequesterID(requesterID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the identifier of the vendor the order is placed with.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// RequesterID returns the identifier of the requester.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
