package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the mutable account fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// AddressInput carries the fields of a delivery address.
type AddressInput struct {
	FullName   string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool
}

// ProfileUsecase defines the interface for account profile and address book
// operations. Every method is scoped to the acting account.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, actor Actor) (*entity.User, error)
	UpdateProfile(ctx context.Context, actor Actor, input UpdateProfileInput) (*entity.User, error)

	ListAddresses(ctx context.Context, actor Actor) ([]*entity.Address, error)
	AddAddress(ctx context.Context, actor Actor, input AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, actor Actor, addressID uuid.UUID, input AddressInput) (*entity.Address, error)
	RemoveAddress(ctx context.Context, actor Actor, addressID uuid.UUID) error
}
