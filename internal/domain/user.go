// Package domain contains the core entity types shared across features.
package domain

import "time"

// Role is advisory metadata on a user. It does not grant any bypass of
// tenant scoping.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User is an account record. Exactly one user exists per email.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	TenantID     string
	CreatedAt    time.Time
}
