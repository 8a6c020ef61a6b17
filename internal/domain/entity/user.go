// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing a customer, seller or admin account.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email        string    // The account's unique login email.
	Name         string    // The account's display name.
	PasswordHash string    // The bcrypt hash of the account's password. Never exposed.
	Role         Role      // The account's role: customer, seller or admin.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// IsAdmin reports whether the account has administrator privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
