package commands

import (
	"context"

	"orderstatus/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles user registration.
// Registration is open: it is how customers, vendors and couriers enter
// the system before any of them can act on orders.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Uses a transaction to ensure the user is properly persisted or rolled
// back on error.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	registered, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, registered); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
