// Package userrepo provides data transfer objects and mapping functions for the
// requester registry. This package implements the repository pattern for the user
// domain aggregate, handling the conversion between domain entities and database
// representations.
package userrepo

import (
	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting registered requesters.
// The role column is what the authorization gate reads when deciding whether a
// requester may perform an action.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Role int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(user *user.User) UserDTO {
	return UserDTO{
		ID:   user.ID().Bytes(),
		Name: user.Name(),
		Role: int(user.Role()),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, access.Role(dto.Role))
}
