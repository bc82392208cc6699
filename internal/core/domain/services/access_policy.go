package services

import (
	"orderstatus/internal/core/domain/model/access"
)

// AccessPolicy is a domain service that decides which roles may perform
// which order actions. The mapping is fixed: it encodes who does what in
// the delivery workflow rather than configurable permissions.
//
// Role assignments:
//   - Vendors drive the kitchen side: accept, reject, prepare and hand over
//   - Couriers drive the road side: transit and delivery
//   - Customers and vendors place orders
//   - Everyone registered may read an order's status
//
// Example usage:
//
//	policy := NewAccessPolicy()
//	if !policy.Permits(access.RoleCourier, access.ActionUpdateToAccepted) {
//	    // courier may not accept orders
//	}
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
//
// Returns:
//   - AccessPolicy: A new instance ready for permission checks
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// getPermittedRoles returns the roles allowed to perform each action.
func getPermittedRoles() map[access.Action][]access.Role {
	return map[access.Action][]access.Role{
		access.ActionUpdateToAccepted:       {access.RoleVendor},
		access.ActionUpdateToRejected:       {access.RoleVendor},
		access.ActionUpdateToPreparing:      {access.RoleVendor},
		access.ActionUpdateToGivenToCourier: {access.RoleVendor},
		access.ActionUpdateToInTransit:      {access.RoleCourier},
		access.ActionUpdateToDelivered:      {access.RoleCourier},
		access.ActionGetStatus:              {access.RoleCustomer, access.RoleVendor, access.RoleCourier},
		access.ActionCreateOrder:            {access.RoleCustomer, access.RoleVendor},
	}
}

// Permits reports whether a requester with the given role may perform the
// given action. Unknown roles and unknown actions are never permitted.
//
// Parameters:
//   - role: The requester's role
//   - action: The operation being attempted
//
// Returns:
//   - bool: true when the role is allowed to perform the action
func (p AccessPolicy) Permits(role access.Role, action access.Action) bool {
	for _, permitted := range getPermittedRoles()[action] {
		if permitted == role {
			return true
		}
	}

	return false
}
