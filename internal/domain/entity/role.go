// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role an account can have in the marketplace.
type Role string

const (
	// RoleCustomer is the baseline role every authenticated account falls back to.
	RoleCustomer Role = "customer"
	// RoleShopOwner indicates an account that runs a storefront.
	RoleShopOwner Role = "shop_owner"
	// RoleAdmin indicates a marketplace administrator. Admin is a superset of every other role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether an account may pick this role at sign-up.
func (r Role) IsSelfAssignable() bool {
	return r == RoleCustomer || r == RoleShopOwner
}

// Satisfies reports whether a caller holding r may act with the required role.
func (r Role) Satisfies(required Role) bool {
	return r == RoleAdmin || r == required
}

// RoleAssignment maps an account to exactly one role.
type RoleAssignment struct {
	UserID    uuid.UUID // The account this role belongs to.
	Role      Role      // The assigned role.
	CreatedAt time.Time
	UpdatedAt time.Time
}
