package commands

import (
	"context"
	"time"

	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"
)

// FlagOverdueDeliveriesCommandHandler records late delivery exceptions for
// orders in transit past their delivery promise. An order is flagged at
// most once: a second sweep finding an unresolved late delivery exception
// for the same order skips it.
//
// Example:
//
//	handler := NewFlagOverdueDeliveriesCommandHandler(uowFactory)
//	cmd := NewFlagOverdueDeliveriesCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("overdue sweep failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type FlagOverdueDeliveriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewFlagOverdueDeliveriesCommandHandler creates a handler for the overdue
// delivery sweep. Requires a UoWFactory coordinating the order and
// exception repositories.
func NewFlagOverdueDeliveriesCommandHandler(uowFactory UoWFactory) FlagOverdueDeliveriesCommandHandler {
	return FlagOverdueDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the overdue delivery sweep.
// Retrieves all orders in transit, checks each against its expected
// delivery time, and records a late delivery exception for overdue orders
// that do not already carry an unresolved one. All updates occur within a
// single transaction.
func (h *FlagOverdueDeliveriesCommandHandler) Handle(ctx context.Context, cmd FlagOverdueDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	exceptionsRepo := uow.ExceptionRepository()

	orders, err := ordersRepo.GetAllInTransitStatus(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, aggregate := range orders {
		if !aggregate.IsOverdue(now) {
			continue
		}

		flagged, flaggedErr := exceptionsRepo.HasUnresolved(ctx, aggregate.ID(), exception.LateDelivery)
		if flaggedErr != nil {
			return flaggedErr
		}

		if flagged {
			continue
		}

		lateDelivery, exceptionErr := exception.NewLateDelivery(kernel.NewUUID(), aggregate.ID())
		if exceptionErr != nil {
			return exceptionErr
		}

		if err = exceptionsRepo.Add(ctx, lateDelivery); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
