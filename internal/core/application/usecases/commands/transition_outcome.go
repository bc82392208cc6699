package commands

import (
	"orderstatus/internal/core/domain/model/order"
)

// OutcomeKind enumerates the ways a status transition request can end.
// Every transition handler reports exactly one of these; infrastructure
// failures travel separately as errors.
type OutcomeKind int

const (
	// OutcomeUnknown represents an uninitialized outcome.
	OutcomeUnknown OutcomeKind = iota

	// OutcomeSuccess means the transition was applied and persisted.
	OutcomeSuccess

	// OutcomeNotFound means the order does not exist, or vanished between
	// being read and being written.
	OutcomeNotFound

	// OutcomeInvalidPreviousState means the order is not in the status the
	// transition requires, whether observed when applying the transition or
	// detected as a concurrent update during the guarded write.
	OutcomeInvalidPreviousState

	// OutcomeUnauthorized means the requester may not perform the action.
	// Decided before any order state was read.
	OutcomeUnauthorized

	// OutcomeValidationFailed means the transition payload was rejected by
	// the domain, after the status precondition held.
	OutcomeValidationFailed
)

// getOutcomeKindStrings returns a map of OutcomeKind values to their string representations.
func getOutcomeKindStrings() map[OutcomeKind]string {
	return map[OutcomeKind]string{
		OutcomeUnknown:              "UNKNOWN",
		OutcomeSuccess:              "SUCCESS",
		OutcomeNotFound:             "NOT_FOUND",
		OutcomeInvalidPreviousState: "INVALID_PREVIOUS_STATE",
		OutcomeUnauthorized:         "UNAUTHORIZED",
		OutcomeValidationFailed:     "VALIDATION_FAILED",
	}
}

// String returns the canonical name of the outcome kind, "UNKNOWN" for
// invalid values. This method implements the fmt.Stringer interface.
func (k OutcomeKind) String() string {
	if str, ok := getOutcomeKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionOutcome is the result of a status transition request. It is a
// closed set of business results: exactly one kind, with the transitioned
// aggregate on success and a human-readable reason on the failure kinds.
//
// Outcomes deliberately exclude infrastructure failures. A handler returns
// (TransitionOutcome, nil) for every business result, including denials and
// conflicts, and (zero, error) only when storage or a collaborator broke.
type TransitionOutcome struct {
	kind   OutcomeKind
	order  *order.Order
	reason string
}

// SuccessOutcome reports a transition that was applied and persisted.
// The aggregate carries the new status.
func SuccessOutcome(aggregate *order.Order) TransitionOutcome {
	return TransitionOutcome{kind: OutcomeSuccess, order: aggregate}
}

// NotFoundOutcome reports that the order does not exist.
func NotFoundOutcome() TransitionOutcome {
	return TransitionOutcome{kind: OutcomeNotFound, reason: "order not found"}
}

// InvalidPreviousStateOutcome reports that the order was not in the status
// the transition requires. The cause explains which statuses collided.
func InvalidPreviousStateOutcome(cause error) TransitionOutcome {
	return TransitionOutcome{kind: OutcomeInvalidPreviousState, reason: cause.Error()}
}

// UnauthorizedOutcome reports that the requester may not perform the action.
func UnauthorizedOutcome(reason string) TransitionOutcome {
	return TransitionOutcome{kind: OutcomeUnauthorized, reason: reason}
}

// ValidationFailedOutcome reports that the transition payload was rejected.
func ValidationFailedOutcome(cause error) TransitionOutcome {
	return TransitionOutcome{kind: OutcomeValidationFailed, reason: cause.Error()}
}

// Kind returns which way the transition request ended.
func (o TransitionOutcome) Kind() OutcomeKind {
	return o.kind
}

// Order returns the transitioned aggregate. Nil unless Kind is OutcomeSuccess.
func (o TransitionOutcome) Order() *order.Order {
	return o.order
}

// Reason returns the human-readable explanation for failure outcomes.
// Empty on success.
func (o TransitionOutcome) Reason() string {
	return o.reason
}
