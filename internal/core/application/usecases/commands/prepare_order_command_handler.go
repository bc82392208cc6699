package commands

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// PrepareOrderCommandHandler moves an accepted order to preparing, recording
// the vendor's preparation time and delivery promise.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	runner     transitionRunner
}

// NewPrepareOrderCommandHandler creates a handler for starting order preparation.
func NewPrepareOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
		runner:     newTransitionRunner(gate, publisher, logger),
	}
}

// Handle processes the prepare command through the shared transition pipeline.
// Requires the order to be in Accepted status; the preparation payload is
// validated by the aggregate only after that precondition holds.
func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	return h.runner.run(ctx, h.uowFactory.Create(), statusTransition{
		action:      access.ActionUpdateToPreparing,
		requesterID: cmd.RequesterID(),
		orderID:     cmd.OrderID(),
		apply: func(aggregate *order.Order) error {
			return aggregate.StartPreparing(cmd.PrepTimeMinutes(), cmd.ExpectedDeliveryTime())
		},
	})
}
