// Package access provides the authorization vocabulary for order operations.
//
// The package includes:
//   - Role: The kind of participant a requester is (customer, vendor, courier)
//   - Action: An operation a requester may ask the system to perform
//   - Decision: The outcome of an authorization check
//
// Authorization is evaluated before any order state is read, so a denied
// requester learns nothing about whether the order exists. The role to
// action mapping itself lives in the services package.
package access
