package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for delivery address persistence.
type AddressRepository interface {
	// Create persists a new address for an owner.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByOwner retrieves all addresses of an owner, default first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error)

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearDefault drops the default flag from every address of the owner.
	// Run before promoting another address so at most one default survives.
	ClearDefault(ctx context.Context, ownerID uuid.UUID) error
}
