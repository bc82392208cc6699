package commands

import (
	"errors"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserNameIsRequired = errors.New("name is required")
)

// RegisterUserCommand represents a request to register a user with a role.
// Registered users are the subjects of all authorization decisions.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	role   access.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// Validates that the identifier, name and role are all usable.
func NewRegisterUserCommand(userID kernel.UUID, name string, role access.Role) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setName(name),
		command.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to register.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name of the user.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Role returns the role the user acts under.
func (c RegisterUserCommand) Role() access.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
