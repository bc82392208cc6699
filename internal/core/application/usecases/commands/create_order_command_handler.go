package commands

import (
	"context"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Pending status, waiting for the vendor's decision.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, gate)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), vendorID, requesterID)
//
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// outcome.Kind() reports whether the order was created
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       ports.AuthorizationGate
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and an
// authorization gate to decide who may place orders.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, gate ports.AuthorizationGate) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the order creation command.
// Authorization is checked before anything else; a denied requester learns
// nothing about existing orders. Uses a transaction to ensure the order is
// properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	decision, err := h.gate.Check(ctx, cmd.RequesterID(), access.ActionCreateOrder)
	if err != nil {
		return TransitionOutcome{}, err
	}

	if !decision.IsAllowed() {
		return UnauthorizedOutcome(decision.Reason()), nil
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.VendorID())
	if err != nil {
		return TransitionOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return TransitionOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return TransitionOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionOutcome{}, err
	}

	return SuccessOutcome(aggregate), nil
}
