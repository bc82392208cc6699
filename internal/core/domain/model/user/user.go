package user

import (
	"errors"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/errs"
	"orderstatus/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User represents a registered requester: a customer, vendor or courier
// that may call the order API. Every request carries a user's identifier,
// and the user's role decides which order actions are permitted.
//
// Business rules:
//   - User must have a valid UUID, non-empty name, and valid role
//   - The role is fixed at registration
//
// Example usage:
//
//	u, err := NewUser(kernel.NewUUID(), "Pizza Palace", access.RoleVendor)
//	if err != nil {
//	    // Handle construction error
//	}
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the human-readable name of the user
	name string
	// role decides which order actions the user may perform
	role access.Role
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser creates a new User with the specified parameters.
// This is the only way to register a requester.
//
// Parameters:
//   - id: Unique identifier for the user (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - role: The user's role (must be a valid access.Role)
//
// Returns:
//   - *User: The created user if all validations pass
//   - error: Validation error if any parameter is invalid
func NewUser(id kernel.UUID, name string, role access.Role) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from previously persisted state.
//
// Returns:
//   - *User: Restored user
//   - error: Validation error if any parameter is invalid
func RestoreUser(id kernel.UUID, name string, role access.Role) (*User, error) {
	return NewUser(id, name, role)
}

// Validate ensures the User was created through a constructor.
//
// Returns:
//   - nil if the user is valid
//   - ErrUserIsNotConstructed otherwise
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}

	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's human-readable name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() access.Role {
	return u.role
}

// setID validates and sets the user's unique identifier.
// This is a private method used only during construction.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setName validates and sets the user's name.
// This is a private method used only during construction.
func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

// setRole validates and sets the user's role.
// This is a private method used only during construction.
func (u *User) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
