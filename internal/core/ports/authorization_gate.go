package ports

import (
	"context"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
)

// AuthorizationGate decides whether a requester may perform an action.
// The check runs before anything else in an order operation and works
// purely from the requester's identity and role, so a denied requester
// never learns whether the order they named exists.
type AuthorizationGate interface {
	// Check resolves the requester and evaluates the access policy.
	//
	// Returns a denied decision for unregistered requesters and for roles
	// the policy does not permit to perform the action. The error return is
	// reserved for infrastructure failures, a denial is not an error.
	Check(ctx context.Context, requesterID kernel.UUID, action access.Action) (access.Decision, error)
}
