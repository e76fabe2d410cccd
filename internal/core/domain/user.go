package domain

import (
	"strings"
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

var roles = []Role{RoleAdmin, RoleUser}

// ParseRole matches name case-insensitively against the known roles.
func ParseRole(name string) (Role, error) {
	normalized := Role(strings.ToUpper(strings.TrimSpace(name)))
	for _, r := range roles {
		if r == normalized {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

func (r Role) String() string { return string(r) }

// User models a registered account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// Caller is the authenticated identity a request acts as. It is built from
// verified token claims and passed explicitly into every service call.
type Caller struct {
	ID    int64
	Email string
	Role  Role
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }
