// Package order provides domain entities and business logic for order management
// in the delivery system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - InvalidTransitionError: Returned when a transition is requested from the wrong state
//
// Key business rules:
//   - Orders must have a valid unique identifier and owning vendor
//   - Order status follows a defined workflow:
//     Pending -> Accepted -> Preparing -> GivenToCourier -> InTransit -> Delivered
//   - A pending order may instead be rejected, which ends its lifecycle
//   - Every transition requires the exact previous status, never skipping ahead
//   - Rejected and Delivered are terminal, no transition leaves them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
