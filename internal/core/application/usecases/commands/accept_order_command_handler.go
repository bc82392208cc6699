package commands

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// AcceptOrderCommandHandler moves a pending order to accepted.
// Only vendors may accept orders; the authorization gate enforces this
// before any order state is read.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, gate, publisher, logger)
//	cmd, _ := NewAcceptOrderCommand(orderID, requesterID)
//
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("accepting order failed: %w", err)
//	}
//	switch outcome.Kind() {
//	case OutcomeSuccess:
//	    // order is now accepted
//	case OutcomeInvalidPreviousState:
//	    // order was not pending
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	runner     transitionRunner
}

// NewAcceptOrderCommandHandler creates a handler for accepting orders.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		runner:     newTransitionRunner(gate, publisher, logger),
	}
}

// Handle processes the accept command through the shared transition pipeline.
// Requires the order to be in Pending status.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	return h.runner.run(ctx, h.uowFactory.Create(), statusTransition{
		action:      access.ActionUpdateToAccepted,
		requesterID: cmd.RequesterID(),
		orderID:     cmd.OrderID(),
		apply: func(aggregate *order.Order) error {
			return aggregate.Accept()
		},
	})
}
