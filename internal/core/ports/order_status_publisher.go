package ports

import (
	"context"

	"orderstatus/internal/core/domain/model/order"
)

// OrderStatusPublisher broadcasts committed status transitions to interested
// consumers. Publishing happens after the transaction commits and is best
// effort: a failed publish is logged by the caller and never rolls back or
// fails the transition.
type OrderStatusPublisher interface {
	// PublishStatusChanged emits an event describing the transition the
	// aggregate just went through, from previous to its current status.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) error
}
