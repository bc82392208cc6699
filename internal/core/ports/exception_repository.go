package ports

import (
	"context"

	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"
)

// ExceptionRepository defines the persistence contract for delivery exceptions.
type ExceptionRepository interface {
	// Add persists a new delivery exception.
	// The exception must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *exception.DeliveryException) error

	// GetAllByOrder retrieves every exception recorded for an order,
	// oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*exception.DeliveryException, error)

	// HasUnresolved reports whether an order already carries an unresolved
	// exception of the given kind. Used to avoid flagging the same problem
	// twice.
	HasUnresolved(ctx context.Context, orderID kernel.UUID, kind exception.Type) (bool, error)
}
