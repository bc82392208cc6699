// Package user provides the User entity, the registry of requesters that
// may call the order API. Authorization resolves a requester's role from
// this registry before any order operation runs.
package user
