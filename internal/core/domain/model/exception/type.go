package exception

import (
	"fmt"

	"orderstatus/internal/pkg/errs"
)

// Type classifies a delivery exception by what went wrong with the order.
type Type int

const (
	// Unknown represents an invalid or undefined exception type.
	// This value (0) helps catch uninitialized Type values.
	Unknown Type = iota

	// Rejected marks the exception recorded when a vendor refuses an order.
	Rejected

	// LateDelivery marks the exception recorded when an order stays in
	// transit past its expected delivery time.
	LateDelivery

	// Other marks exceptions outside the automatically detected kinds.
	Other
)

// getTypeStrings returns a map of Type values to their string representations.
// All types are included for string conversion.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown:      "UNKNOWN",
		Rejected:     "REJECTED",
		LateDelivery: "LATE_DELIVERY",
		Other:        "OTHER",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
// Only valid types are included to support validation.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		Rejected:     "REJECTED",
		LateDelivery: "LATE_DELIVERY",
		Other:        "OTHER",
	}
}

// Validate checks if the Type value is valid.
//
// Valid types are: Rejected, LateDelivery, Other. Unknown (0) and any
// other values are invalid.
//
// Returns:
//   - nil if the type is valid
//   - error with details if the type is invalid
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("exception type is invalid", fmt.Errorf("%d is not a valid exception type", t))
	}
	return nil
}

// String returns the canonical name of the exception type.
//
// Returns:
//   - "REJECTED", "LATE_DELIVERY" or "OTHER" for valid types
//   - "UNKNOWN" for invalid type values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Type value, including invalid ones.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
