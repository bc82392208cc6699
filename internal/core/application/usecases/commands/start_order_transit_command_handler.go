package commands

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// StartOrderTransitCommandHandler moves a handed over order to in transit.
// Only couriers may report transit.
type StartOrderTransitCommandHandler struct {
	uowFactory OrderUoWFactory
	runner     transitionRunner
}

// NewStartOrderTransitCommandHandler creates a handler for transit reports.
func NewStartOrderTransitCommandHandler(
	uowFactory OrderUoWFactory,
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) StartOrderTransitCommandHandler {
	return StartOrderTransitCommandHandler{
		uowFactory: uowFactory,
		runner:     newTransitionRunner(gate, publisher, logger),
	}
}

// Handle processes the transit command through the shared transition pipeline.
// Requires the order to be in GivenToCourier status.
func (h *StartOrderTransitCommandHandler) Handle(ctx context.Context, cmd StartOrderTransitCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	return h.runner.run(ctx, h.uowFactory.Create(), statusTransition{
		action:      access.ActionUpdateToInTransit,
		requesterID: cmd.RequesterID(),
		orderID:     cmd.OrderID(),
		apply: func(aggregate *order.Order) error {
			return aggregate.StartTransit()
		},
	})
}
