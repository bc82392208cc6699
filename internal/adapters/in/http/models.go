package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines the JSON body returned on every failed request.
type Error struct {
	// Code duplicates the HTTP status code for clients that only read bodies.
	Code int32 `json:"code"`

	// Message explains what went wrong.
	Message string `json:"message"`
}

// NewOrder defines the request body for placing an order.
type NewOrder struct {
	// VendorId identifies the vendor that will handle the order.
	VendorId openapi_types.UUID `json:"vendorId"`
}

// NewUser defines the request body for registering a requester.
type NewUser struct {
	// Name is the requester's display name.
	Name string `json:"name"`

	// Role is one of CUSTOMER, VENDOR or COURIER.
	Role string `json:"role"`
}

// CreatedResource defines the response body for resource creation.
type CreatedResource struct {
	// Id is the identifier assigned to the new resource.
	Id openapi_types.UUID `json:"id"`
}

// PrepareOrderRequest defines the payload of the preparing transition.
type PrepareOrderRequest struct {
	// PrepTimeMinutes is the vendor's declared preparation time.
	PrepTimeMinutes int `json:"prepTimeMinutes"`

	// ExpectedDeliveryTime is the delivery promise made to the customer.
	ExpectedDeliveryTime time.Time `json:"expectedDeliveryTime"`
}

// GiveOrderToCourierRequest defines the payload of the handover transition.
type GiveOrderToCourierRequest struct {
	// CourierId identifies the courier taking the order.
	CourierId openapi_types.UUID `json:"courierId"`
}

// DeliverOrderRequest defines the payload of the delivered transition.
type DeliverOrderRequest struct {
	// ActualDeliveryTime is when the customer received the order.
	ActualDeliveryTime time.Time `json:"actualDeliveryTime"`
}
