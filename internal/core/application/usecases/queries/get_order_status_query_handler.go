package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
	"orderstatus/internal/pkg/errs"

	"gorm.io/gorm"
)

// NotAuthorizedError reports that the requester may not read order statuses.
// Carries the gate's denial reason.
type NotAuthorizedError struct {
	Reason string
}

// Error returns a description of the denial.
// This method implements the error interface.
func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Reason)
}

// GetOrderStatusQueryHandler answers order status questions straight from
// the database. Reads go through the authorization gate first, so an
// unauthorized requester learns nothing, not even whether the order exists.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db, gate)
//	query, _ := NewGetOrderStatusQuery(orderID, requesterID)
//
//	status, err := handler.Handle(ctx, query)
//	var notAuthorized *NotAuthorizedError
//	switch {
//	case errors.As(err, &notAuthorized):
//	    // deny
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case err != nil:
//	    // storage failure
//	default:
//	    fmt.Println(status)
//	}
type GetOrderStatusQueryHandler struct {
	db   *gorm.DB
	gate ports.AuthorizationGate
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection and the authorization gate.
func NewGetOrderStatusQueryHandler(db *gorm.DB, gate ports.AuthorizationGate) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db, gate: gate}
}

// Handle executes the status query.
// Returns NotAuthorizedError when the gate denies the requester, an
// errs.ObjectNotFoundError when the order does not exist, and otherwise the
// order's current status.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (order.Status, error) {
	if err := query.Validate(); err != nil {
		return order.Unknown, err
	}

	decision, err := h.gate.Check(ctx, query.RequesterID(), access.ActionGetStatus)
	if err != nil {
		return order.Unknown, err
	}

	if !decision.IsAllowed() {
		return order.Unknown, &NotAuthorizedError{Reason: decision.Reason()}
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var rawStatus int
	if err = row.Scan(&rawStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order.Unknown, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return order.Unknown, err
	}

	status := order.Status(rawStatus)
	if err = status.Validate(); err != nil {
		return order.Unknown, err
	}

	return status, nil
}
