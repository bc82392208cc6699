package access

import (
	"errors"

	"orderstatus/internal/pkg/errs"
	"orderstatus/internal/pkg/guard"
)

var (
	// ErrDecisionIsNotConstructed is returned when using an improperly initialized Decision.
	ErrDecisionIsNotConstructed = errors.New("Decision must be created via NewAllowedDecision or NewDeniedDecision")
	// ErrReasonIsRequired is returned when a denial carries no explanation.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// Decision is the outcome of an authorization check. It either allows the
// requested action, carrying the requester's role, or denies it, carrying
// the reason for the denial.
//
// Decision is a value object: it is immutable after construction and safe
// to copy. A denied decision never reveals whether the target order exists,
// the check is made purely from the requester's identity and role.
type Decision struct {
	// allowed reports whether the action may proceed
	allowed bool
	// role is the requester's role, set only on allowed decisions
	role Role
	// reason explains the denial, set only on denied decisions
	reason string
	// guard ensures the decision was properly constructed
	guard guard.ConstructorGuard
}

// NewAllowedDecision creates a Decision that permits the action.
//
// Parameters:
//   - role: The requester's validated role
//
// Returns:
//   - Decision: An allowed decision carrying the role
//   - error: Validation error if the role is invalid
func NewAllowedDecision(role Role) (Decision, error) {
	if err := role.Validate(); err != nil {
		return Decision{}, err
	}

	return Decision{
		allowed: true,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewDeniedDecision creates a Decision that refuses the action.
//
// Parameters:
//   - reason: Human-readable explanation for the denial (must be non-empty)
//
// Returns:
//   - Decision: A denied decision carrying the reason
//   - error: ErrReasonIsRequired if the reason is empty
func NewDeniedDecision(reason string) (Decision, error) {
	if reason == "" {
		return Decision{}, ErrReasonIsRequired
	}

	return Decision{
		allowed: false,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Decision was created through a constructor.
//
// Returns:
//   - nil if the decision is valid
//   - ErrDecisionIsNotConstructed for zero-value decisions
func (d Decision) Validate() error {
	return d.guard.Validate(ErrDecisionIsNotConstructed)
}

// IsAllowed reports whether the requested action may proceed.
func (d Decision) IsAllowed() bool {
	return d.allowed
}

// Role returns the requester's role. Only meaningful on allowed decisions.
func (d Decision) Role() Role {
	return d.role
}

// Reason returns the denial explanation. Empty on allowed decisions.
func (d Decision) Reason() string {
	return d.reason
}
