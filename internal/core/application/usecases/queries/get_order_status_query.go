// Package queries contains read operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return read models instead of aggregates.
package queries

import (
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves the current status of a single order.
// Any registered requester may ask; the answer is the bare status name.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID, requesterID)
//	if err != nil {
//	    return fmt.Errorf("invalid status request: %w", err)
//	}
//
//	handler := NewGetOrderStatusQueryHandler(db, gate)
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order status: %w", err)
//	}
//	fmt.Printf("Order is %s\n", status)
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for an order's current status.
// Validates that both identifiers are valid UUIDs.
func NewGetOrderStatusQuery(orderID kernel.UUID, requesterID kernel.UUID) (GetOrderStatusQuery, error) {
	query := GetOrderStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRequesterID(requesterID),
	); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being asked about.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the identifier of the requester.
func (q GetOrderStatusQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

func (q *GetOrderStatusQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderStatusQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	q.requesterID = requesterID
	return nil
}
