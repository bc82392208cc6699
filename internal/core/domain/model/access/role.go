package access

import (
	"fmt"

	"orderstatus/internal/pkg/errs"
)

// Role identifies what kind of participant a registered requester is.
// Every requester carries exactly one role, and the role determines which
// order actions the requester may perform.
//
// Role is a value object that validates its contents and provides string
// representations for persistence and display.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and tracks their progress.
	RoleCustomer

	// RoleVendor accepts, rejects and prepares orders.
	RoleVendor

	// RoleCourier carries orders and reports transit progress.
	RoleCourier
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleVendor:   "VENDOR",
		RoleCourier:  "COURIER",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "CUSTOMER",
		RoleVendor:   "VENDOR",
		RoleCourier:  "COURIER",
	}
}

// RoleFromString parses the canonical role name into a Role value.
//
// Parameters:
//   - name: "CUSTOMER", "VENDOR" or "COURIER"
//
// Returns:
//   - (Role, nil) for a recognized name
//   - (RoleUnknown, error) for anything else
func RoleFromString(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", name))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: RoleCustomer, RoleVendor, RoleCourier.
// RoleUnknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the role is valid
//   - error with details if the role is invalid
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical name of the role.
//
// Returns:
//   - "CUSTOMER", "VENDOR" or "COURIER" for valid roles
//   - "UNKNOWN" for invalid role values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
