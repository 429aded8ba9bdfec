package entities

import (
	"fmt"
	"strings"
)

// Role is the role of an authenticated user as supplied by the identity
// provider.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

func ParseRole(v string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(v)))
	switch r {
	case RoleCustomer, RoleTechnician, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrUnauthorized, v)
}

// Actor is the already-authenticated user performing an operation.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsCustomer() bool   { return a.Role == RoleCustomer }
func (a Actor) IsTechnician() bool { return a.Role == RoleTechnician }
func (a Actor) IsAdmin() bool      { return a.Role == RoleAdmin }
