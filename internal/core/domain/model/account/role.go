package account

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role classifies every authenticated actor in the system. It is a closed
// enumeration: authorization decisions go through the predicates below rather
// than ad hoc string comparisons scattered over handlers.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and views their own history.
	RoleCustomer

	// RoleOwner operates a restaurant: accepts orders and drives
	// status transitions for that restaurant's orders.
	RoleOwner

	// RoleDriver delivers orders and reports live location updates.
	RoleDriver
)

// getRoleStrings returns the string representation for every role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleOwner:    "OWNER",
		RoleDriver:   "DRIVER",
	}
}

// getValidRoleStrings returns only the assignable roles, keyed by their wire
// representation.
func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"CUSTOMER": RoleCustomer,
		"OWNER":    RoleOwner,
		"DRIVER":   RoleDriver,
	}
}

// RoleFromString parses the wire representation of a role ("CUSTOMER",
// "OWNER", "DRIVER"). Unrecognized strings fail validation.
func RoleFromString(s string) (Role, error) {
	if role, ok := getValidRoleStrings()[s]; ok {
		return role, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the assignable values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleOwner && r != RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer; safe on any value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// CanManageOrders reports whether the role may drive order status transitions
// for a restaurant it owns. Ownership itself is checked against the order's
// restaurant by the caller.
func (r Role) CanManageOrders() bool {
	return r == RoleOwner
}

// CanReportLocation reports whether the role may publish driver location
// updates for an order.
func (r Role) CanReportLocation() bool {
	return r == RoleDriver || r == RoleOwner
}
