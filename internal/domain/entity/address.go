// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by a customer account.
// At most one address per owner may be flagged as the default.
type Address struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	OwnerID    uuid.UUID // The ID of the account that owns this address.
	FullName   string    // Recipient name.
	Phone      string    // Contact phone number.
	Street     string    // Street line of the address.
	City       string    // City.
	State      string    // State or province.
	PostalCode string    // Postal / PIN code.
	Country    string    // Country.
	IsDefault  bool      // Indicates if this is the owner's default delivery address.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
