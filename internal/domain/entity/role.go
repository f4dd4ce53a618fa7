// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a profile can have in the community.
// The role is chosen once at profile creation and never changes afterwards.
type Role string

const (
	// RoleShopper indicates a regular community member.
	RoleShopper Role = "shopper"
	// RoleBusiness indicates a business owner.
	RoleBusiness Role = "business"
	// RoleDeliveryDriver indicates a delivery driver.
	RoleDeliveryDriver Role = "delivery_driver"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleShopper, RoleBusiness, RoleDeliveryDriver:
		return true
	default:
		return false
	}
}
