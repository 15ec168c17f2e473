// Package entity contains the core business objects of chaintrace.
package entity

import "strings"

// Role is the marketplace role a wallet acts under.
type Role string

const (
	// RoleSupplier lists raw materials.
	RoleSupplier Role = "supplier"
	// RoleProducer buys raw materials and lists finished products.
	RoleProducer Role = "producer"
	// RoleCustomer buys finished products.
	RoleCustomer Role = "customer"
	// RoleLogistics is a carrier acting on behalf of a producer. It can update
	// purchase tracking but cannot be chosen at registration.
	RoleLogistics Role = "logistics"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role an account may register with.
func (r Role) IsValid() bool {
	switch r {
	case RoleSupplier, RoleProducer, RoleCustomer:
		return true
	default:
		return false
	}
}

// ParseRole lower-cases s and returns the matching role, or false.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() || role == RoleLogistics {
		return role, true
	}

	return "", false
}

// CanBuyProducts reports whether the role may place finished-goods orders.
func (r Role) CanBuyProducts() bool {
	return r == RoleCustomer || r == RoleProducer
}
