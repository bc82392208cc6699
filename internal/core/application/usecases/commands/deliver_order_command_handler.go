package commands

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// DeliverOrderCommandHandler completes an order delivery.
// Only couriers may report completion.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	runner     transitionRunner
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		runner:     newTransitionRunner(gate, publisher, logger),
	}
}

// Handle processes the delivery command through the shared transition
// pipeline. The order's existence is confirmed before loading it, and the
// actual delivery time is judged by the aggregate once the order is known
// to be in transit.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	return h.runner.run(ctx, h.uowFactory.Create(), statusTransition{
		action:            access.ActionUpdateToDelivered,
		requesterID:       cmd.RequesterID(),
		orderID:           cmd.OrderID(),
		verifyExistsFirst: true,
		apply: func(aggregate *order.Order) error {
			return aggregate.Deliver(cmd.ActualDeliveryTime())
		},
	})
}
