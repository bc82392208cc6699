// Package services provides domain services that implement business rules
// spanning multiple domain entities in the delivery system.
//
// The package includes:
//   - AccessPolicy: A domain service mapping requester roles to permitted order actions
//
// Domain services coordinate between aggregates, implementing business logic that
// doesn't naturally belong to a single aggregate root, following Domain-Driven
// Design principles.
package services
