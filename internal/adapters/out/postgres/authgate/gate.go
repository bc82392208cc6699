// Package authgate implements the authorization gate against the requester
// registry in PostgreSQL. The gate resolves a requester's role and applies
// the access policy without touching any order state, so a denial reveals
// nothing about the order a requester named.
package authgate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/services"

	"gorm.io/gorm"
)

// GormAuthorizationGate checks requesters against the users table and the
// fixed access policy.
type GormAuthorizationGate struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGormAuthorizationGate creates an authorization gate backed by the
// requester registry.
func NewGormAuthorizationGate(db *gorm.DB) *GormAuthorizationGate {
	return &GormAuthorizationGate{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Check resolves the requester's role and evaluates the access policy.
//
// Unregistered requesters and roles the policy does not permit get a denied
// decision. The error return is reserved for infrastructure failures and
// invalid arguments.
func (g *GormAuthorizationGate) Check(ctx context.Context, requesterID kernel.UUID, action access.Action) (access.Decision, error) {
	if err := requesterID.Validate(); err != nil {
		return access.Decision{}, err
	}
	if err := action.Validate(); err != nil {
		return access.Decision{}, err
	}

	row := g.db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE id = ?
	`, requesterID.Bytes()).Row()

	var rawRole int
	if err := row.Scan(&rawRole); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return access.NewDeniedDecision("requester is not registered")
		}
		return access.Decision{}, err
	}

	role := access.Role(rawRole)
	if err := role.Validate(); err != nil {
		return access.Decision{}, err
	}

	if !g.policy.Permits(role, action) {
		return access.NewDeniedDecision(fmt.Sprintf("role %s is not permitted to perform %s", role, action))
	}

	return access.NewAllowedDecision(role)
}
