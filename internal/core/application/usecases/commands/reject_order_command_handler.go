package commands

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
)

// RejectOrderCommandHandler moves a pending order to rejected and records
// the accompanying delivery exception in the same transaction. Either both
// writes land or neither does.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	runner     transitionRunner
}

// NewRejectOrderCommandHandler creates a handler for rejecting orders.
// Requires a UoWFactory because the rejection spans the order and
// exception repositories.
func NewRejectOrderCommandHandler(
	uowFactory UoWFactory,
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		runner:     newTransitionRunner(gate, publisher, logger),
	}
}

// Handle processes the reject command through the shared transition pipeline.
// Requires the order to be in Pending status. On success the order is
// rejected and an unresolved Rejected exception is stored alongside it.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOutcome{}, err
	}

	uow := h.uowFactory.Create()

	return h.runner.run(ctx, uow, statusTransition{
		action:      access.ActionUpdateToRejected,
		requesterID: cmd.RequesterID(),
		orderID:     cmd.OrderID(),
		apply: func(aggregate *order.Order) error {
			return aggregate.Reject()
		},
		sideEffects: func(ctx context.Context, aggregate *order.Order) error {
			rejection, err := exception.NewVendorRejection(kernel.NewUUID(), aggregate.ID())
			if err != nil {
				return err
			}

			return uow.ExceptionRepository().Add(ctx, rejection)
		},
	})
}
