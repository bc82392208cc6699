package ports

import (
	"context"
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"
)

// ErrStatusMismatch is returned by CompareAndSetStatus when the stored status
// no longer matches the expected previous status. A concurrent transition won
// the race, and the caller reports the conflict instead of overwriting it.
var ErrStatusMismatch = errors.New("stored order status does not match the expected previous status")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities,
// and for persisting status transitions without losing concurrent updates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and transition payload.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStatus retrieves only the current status of an order.
	GetStatus(ctx context.Context, id kernel.UUID) (order.Status, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// CompareAndSetStatus persists the aggregate's state, guarded by the
	// status the caller read before applying the transition. The write only
	// takes effect while the stored status still equals expected.
	// Returns ErrStatusMismatch when a concurrent transition got there first,
	// or a not-found error when the order vanished between read and write.
	CompareAndSetStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// GetAllInTransitStatus retrieves all orders currently in transit.
	// Used by the overdue delivery watchdog.
	GetAllInTransitStatus(ctx context.Context) ([]*order.Order, error)
}
