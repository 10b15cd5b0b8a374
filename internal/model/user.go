package model

import "time"

// Role is the explicit role enumeration attached to an authenticated
// identity.  Authorization decisions are made against these values,
// never against email addresses or other string flags.
type Role string

const (
	RoleClient Role = "CLIENT" // self-service guests
	RoleAgent  Role = "AGENT"  // front-desk staff
	RoleAdmin  Role = "ADMIN"  // back-office administrators
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleClient, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// User represents an account that can authenticate against the API.
// Passwords are stored only as bcrypt hashes.
type User struct {
	ID           string    // users.id
	Name         string    // users.name
	Email        string    // users.email (unique, lower-cased)
	PasswordHash string    // users.password_hash
	Role         Role      // users.role
	CreatedAt    time.Time // users.created_at
}
