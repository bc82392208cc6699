package access

import (
	"fmt"

	"orderstatus/internal/pkg/errs"
)

// Action names an operation a requester may ask the system to perform on
// an order. Authorization decisions are made per action, before any order
// state is read.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionUpdateToAccepted moves a pending order to accepted.
	ActionUpdateToAccepted

	// ActionUpdateToRejected moves a pending order to rejected.
	ActionUpdateToRejected

	// ActionUpdateToPreparing moves an accepted order to preparing.
	ActionUpdateToPreparing

	// ActionUpdateToGivenToCourier hands a prepared order to a courier.
	ActionUpdateToGivenToCourier

	// ActionUpdateToInTransit marks a handed over order as in transit.
	ActionUpdateToInTransit

	// ActionUpdateToDelivered marks an order in transit as delivered.
	ActionUpdateToDelivered

	// ActionGetStatus reads an order's current status.
	ActionGetStatus

	// ActionCreateOrder places a new order.
	ActionCreateOrder
)

// getActionStrings returns a map of Action values to their string representations.
func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:                "unknown",
		ActionUpdateToAccepted:       "updateToAccepted",
		ActionUpdateToRejected:       "updateToRejected",
		ActionUpdateToPreparing:      "updateToPreparing",
		ActionUpdateToGivenToCourier: "updateToGivenToCourier",
		ActionUpdateToInTransit:      "updateToInTransit",
		ActionUpdateToDelivered:      "updateToDelivered",
		ActionGetStatus:              "getStatus",
		ActionCreateOrder:            "createOrder",
	}
}

// getValidActionStrings returns a map of only valid Action values.
func getValidActionStrings() map[Action]string {
	//nolint:exhaustive // ActionUnknown is intentionally excluded as it's invalid
	return map[Action]string{
		ActionUpdateToAccepted:       "updateToAccepted",
		ActionUpdateToRejected:       "updateToRejected",
		ActionUpdateToPreparing:      "updateToPreparing",
		ActionUpdateToGivenToCourier: "updateToGivenToCourier",
		ActionUpdateToInTransit:      "updateToInTransit",
		ActionUpdateToDelivered:      "updateToDelivered",
		ActionGetStatus:              "getStatus",
		ActionCreateOrder:            "createOrder",
	}
}

// Validate checks if the Action value is valid.
//
// Returns:
//   - nil if the action is valid
//   - error with details if the action is invalid
func (a Action) Validate() error {
	if _, ok := getValidActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns the canonical name of the action, "unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
