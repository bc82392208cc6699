package ports

import (
	"context"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the requester registry.
type UserRepository interface {
	// Add persists a newly registered user.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
