package commands

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// GiveOrderToCourierCommandHandler moves a preparing order to given to
// courier, recording which courier took it.
type GiveOrderToCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	runner     transitionRunner
}

// NewGiveOrderToCourierCommandHandler creates a handler for courier handovers.
func NewGiveOrderToCourierCommandHandler(
	uowFactory OrderUoWFactory,
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) GiveOrderToCourierCommandHandler {
	return GiveOrderToCourierCommandHandler{
		uowFactory: uowFactory,
		runner:     newTransitionRunner(gate, publisher, logger),
	}
}

// Handle processes the handover command through the shared transition pipeline.
// Requires the order to be in Preparing status.
func (h *GiveOrderToCourierCommandHandler) Handle(ctx context.Context, cmd GiveOrderToCourierCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	return h.runner.run(ctx, h.uowFactory.Create(), statusTransition{
		action:      access.ActionUpdateToGivenToCourier,
		requesterID: cmd.RequesterID(),
		orderID:     cmd.OrderID(),
		apply: func(aggregate *order.Order) error {
			return aggregate.GiveToCourier(cmd.CourierID())
		},
	})
}
