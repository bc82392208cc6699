package order

import (
	"fmt"

	"orderstatus/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with one required predecessor per transition,
// so orders follow the operational workflow in strict sequence.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Preparing ──> GivenToCourier ──> InTransit ──> Delivered
//	          │
//	          └──> Rejected
//
// Rejected and Delivered are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are waiting for the vendor to accept or reject them.
	Pending

	// Accepted indicates the vendor has taken the order.
	Accepted

	// Rejected indicates the vendor has refused the order.
	// This is a terminal state; a delivery exception is recorded alongside it.
	Rejected

	// Preparing indicates the vendor is preparing the order.
	Preparing

	// GivenToCourier indicates the order has been handed over to a courier.
	GivenToCourier

	// InTransit indicates the courier is on the way to the customer.
	InTransit

	// Delivered indicates the order has reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		Rejected:       "REJECTED",
		Preparing:      "PREPARING",
		GivenToCourier: "GIVEN_TO_COURIER",
		InTransit:      "IN_TRANSIT",
		Delivered:      "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		Rejected:       "REJECTED",
		Preparing:      "PREPARING",
		GivenToCourier: "GIVEN_TO_COURIER",
		InTransit:      "IN_TRANSIT",
		Delivered:      "DELIVERED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Rejected, Preparing, GivenToCourier,
// InTransit, Delivered. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
//
// Returns:
//   - "PENDING", "ACCEPTED", "REJECTED", "PREPARING", "GIVEN_TO_COURIER",
//     "IN_TRANSIT" or "DELIVERED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones. The returned
// name is also the status query response body.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
// Rejected and Delivered are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered
}

// InvalidTransitionError reports a transition requested from a status other
// than the transition's required predecessor. The state machine demands an
// exact match: no skip-ahead and no re-application of an already reached
// status is permitted.
type InvalidTransitionError struct {
	// From is the order's current status.
	From Status
	// Required is the only status the transition may start from.
	Required Status
	// Target is the status the transition would have produced.
	Target Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition to %s: current status is %s, required status is %s",
		e.Target, e.From, e.Required)
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) if the current status is not Pending
//
// This method is used by Order.Accept() to enforce state transitions.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, &InvalidTransitionError{From: s, Required: Pending, Target: Accepted}
	}

	return Accepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) if the current status is not Pending
//
// Rejected is a terminal state. The caller records a delivery exception
// atomically with this transition.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, &InvalidTransitionError{From: s, Required: Pending, Target: Rejected}
	}

	return Rejected, nil
}

// StartPreparing transitions the status to Preparing.
//
// Valid transitions:
//   - Accepted -> Preparing
//
// Returns:
//   - (Preparing, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) if the current status is not Accepted
func (s Status) StartPreparing() (Status, error) {
	if s != Accepted {
		return Unknown, &InvalidTransitionError{From: s, Required: Accepted, Target: Preparing}
	}

	return Preparing, nil
}

// GiveToCourier transitions the status to GivenToCourier.
//
// Valid transitions:
//   - Preparing -> GivenToCourier
//
// Returns:
//   - (GivenToCourier, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) if the current status is not Preparing
func (s Status) GiveToCourier() (Status, error) {
	if s != Preparing {
		return Unknown, &InvalidTransitionError{From: s, Required: Preparing, Target: GivenToCourier}
	}

	return GivenToCourier, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - GivenToCourier -> InTransit
//
// Returns:
//   - (InTransit, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) if the current status is not GivenToCourier
func (s Status) StartTransit() (Status, error) {
	if s != GivenToCourier {
		return Unknown, &InvalidTransitionError{From: s, Required: GivenToCourier, Target: InTransit}
	}

	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) if the current status is not InTransit
//
// Delivered is a terminal state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return Unknown, &InvalidTransitionError{From: s, Required: InTransit, Target: Delivered}
	}

	return Delivered, nil
}
