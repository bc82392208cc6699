// Package exceptionrepo provides data transfer objects and mapping functions for
// delivery exception persistence. This package implements the repository pattern
// for the delivery exception aggregate, handling the conversion between domain
// entities and database representations.
package exceptionrepo

import (
	"time"

	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExceptionDTO represents the database structure for persisting delivery exceptions.
// Each row records one problem event tied to an order; the kind and resolved
// columns are indexed together because the overdue watchdog probes for
// unresolved exceptions of a specific kind. CreatedAt is filled by GORM on
// insert and keeps listings in the order the problems were recorded.
type ExceptionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      int       `gorm:"type:int;not null;index:idx_exceptions_kind_resolved"`
	Message   string    `gorm:"type:varchar(512);not null"`
	Resolved  bool      `gorm:"not null;index:idx_exceptions_kind_resolved"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the database table name for delivery exception entities.
// Overrides GORM's default naming convention to use "delivery_exceptions".
func (ExceptionDTO) TableName() string {
	return "delivery_exceptions"
}

// fromDomain converts a delivery exception aggregate to its database representation.
func fromDomain(exception *exception.DeliveryException) ExceptionDTO {
	return ExceptionDTO{
		ID:       exception.ID().Bytes(),
		OrderID:  exception.OrderID().Bytes(),
		Kind:     int(exception.Kind()),
		Message:  exception.Message(),
		Resolved: exception.Resolved(),
	}
}

// toDomain converts a database DTO to a delivery exception aggregate.
func toDomain(dto ExceptionDTO) (*exception.DeliveryException, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return exception.RestoreDeliveryException(id, orderID, exception.Type(dto.Kind), dto.Message, dto.Resolved)
}
