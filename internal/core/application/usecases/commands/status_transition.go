package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
	"orderstatus/internal/pkg/errs"
)

// statusTransition describes one status change request the way the shared
// pipeline consumes it. Each transition handler fills in its action, the
// identifiers from its command, the aggregate method to apply, and optional
// extras.
type statusTransition struct {
	// action is what the requester is attempting, for the authorization check.
	action access.Action

	// requesterID identifies who is asking.
	requesterID kernel.UUID

	// orderID identifies the order being transitioned.
	orderID kernel.UUID

	// verifyExistsFirst makes the pipeline probe for the order before
	// loading it. The delivered transition keeps this explicit pre-check.
	verifyExistsFirst bool

	// apply performs the transition on the loaded aggregate. The aggregate
	// checks its status precondition before any payload validation.
	apply func(aggregate *order.Order) error

	// sideEffects runs after the guarded write, inside the same transaction.
	// Used to record the delivery exception that accompanies a rejection.
	sideEffects func(ctx context.Context, aggregate *order.Order) error
}

// transitionRunner executes status transitions through one shared pipeline,
// so every transition resolves authorization, state and persistence in the
// same order:
//
//  1. Authorization gate, before any order state is read. A denied requester
//     cannot distinguish existing orders from missing ones.
//  2. Load the order (optionally preceded by an existence probe).
//  3. Apply the transition on the aggregate: exact previous status first,
//     payload validation second.
//  4. Persist with a compare-and-set guarded by the previously read status,
//     so racing transitions collapse into one winner and clean conflicts.
//  5. Side effects in the same transaction, then commit.
//  6. Publish the status change, best effort, after the commit.
type transitionRunner struct {
	gate      ports.AuthorizationGate
	publisher ports.OrderStatusPublisher
	logger    *slog.Logger
}

// newTransitionRunner wires the collaborators shared by all transition handlers.
func newTransitionRunner(
	gate ports.AuthorizationGate,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) transitionRunner {
	if logger == nil {
		logger = slog.Default()
	}

	return transitionRunner{
		gate:      gate,
		publisher: publisher,
		logger:    logger,
	}
}

// run executes the transition pipeline and reports how it ended.
// The error return carries only storage and collaborator failures; every
// business result, denials and conflicts included, is a TransitionOutcome.
func (r transitionRunner) run(ctx context.Context, uow OrderUoW, t statusTransition) (TransitionOutcome, error) {
	decision, err := r.gate.Check(ctx, t.requesterID, t.action)
	if err != nil {
		return TransitionOutcome{}, err
	}
	if !decision.IsAllowed() {
		return UnauthorizedOutcome(decision.Reason()), nil
	}

	if err = uow.Begin(ctx); err != nil {
		return TransitionOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if t.verifyExistsFirst {
		exists, existsErr := orderRepo.Exists(ctx, t.orderID)
		if existsErr != nil {
			return TransitionOutcome{}, existsErr
		}
		if !exists {
			return NotFoundOutcome(), nil
		}
	}

	aggregate, err := orderRepo.Get(ctx, t.orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return NotFoundOutcome(), nil
		}
		return TransitionOutcome{}, err
	}

	previous := aggregate.Status()

	if err = t.apply(aggregate); err != nil {
		var transitionErr *order.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			return InvalidPreviousStateOutcome(err), nil
		}
		return ValidationFailedOutcome(err), nil
	}

	if err = orderRepo.CompareAndSetStatus(ctx, aggregate, previous); err != nil {
		switch {
		case errors.Is(err, ports.ErrStatusMismatch):
			return InvalidPreviousStateOutcome(err), nil
		case errors.Is(err, errs.ErrObjectNotFound):
			return NotFoundOutcome(), nil
		default:
			return TransitionOutcome{}, err
		}
	}

	if t.sideEffects != nil {
		if err = t.sideEffects(ctx, aggregate); err != nil {
			return TransitionOutcome{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionOutcome{}, err
	}

	r.publishStatusChanged(ctx, aggregate, previous)

	return SuccessOutcome(aggregate), nil
}

// publishStatusChanged emits the post-commit event. Failures are logged and
// swallowed: the transition already committed.
func (r transitionRunner) publishStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) {
	if r.publisher == nil {
		return
	}

	if err := r.publisher.PublishStatusChanged(ctx, aggregate, previous); err != nil {
		r.logger.ErrorContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID().String(),
			"previous_status", previous.String(),
			"new_status", aggregate.Status().String(),
			"error", err)
	}
}
