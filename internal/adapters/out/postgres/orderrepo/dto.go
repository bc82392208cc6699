// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and courier assignment.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VendorID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status               int        `gorm:"type:int;not null;index"`
	PrepTimeMinutes      int        `gorm:"type:int;not null;default:0"`
	CourierID            *uuid.UUID `gorm:"type:uuid;index"`
	ExpectedDeliveryTime *time.Time
	ActualDeliveryTime   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment and delivery times.
func fromDomain(order *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := order.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:                   order.ID().Bytes(),
		VendorID:             order.VendorID().Bytes(),
		Status:               int(order.Status()),
		PrepTimeMinutes:      order.PrepTimeMinutes(),
		CourierID:            courierID,
		ExpectedDeliveryTime: order.ExpectedDeliveryTime(),
		ActualDeliveryTime:   order.ActualDeliveryTime(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, courier assignment
// and delivery times using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		vendorID,
		order.Status(dto.Status),
		dto.PrepTimeMinutes,
		courierID,
		dto.ExpectedDeliveryTime,
		dto.ActualDeliveryTime,
	)
}
